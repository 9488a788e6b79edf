package itineraryfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sairaj2832-star/DISHANVESHI/internal/api/controllers"
	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
	"github.com/sairaj2832-star/DISHANVESHI/internal/services"
	"github.com/sairaj2832-star/DISHANVESHI/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient,
	provideItineraryRepo,
	provideItineraryService,
	provideItineraryController,
)

func provideGenerationClient(cfg *config.Config, logger *zap.Logger) (utils.GenerationClientInterface, error) {
	if cfg.AI.APIKey == "" {
		logger.Warn("no AI API key configured, itinerary text generation disabled")
	}
	return utils.NewGenerationClient(cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	generator utils.GenerationClientInterface,
	enricher services.PlaceEnricherInterface,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, enricher, itineraryRepo, logger)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
