package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sairaj2832-star/DISHANVESHI/internal/api/controllers"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
	"github.com/sairaj2832-star/DISHANVESHI/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
