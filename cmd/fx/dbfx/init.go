package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
