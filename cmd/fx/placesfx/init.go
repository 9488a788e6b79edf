package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/internal/infra/googlemaps"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
	"github.com/sairaj2832-star/DISHANVESHI/internal/services"
)

var Module = fx.Provide(
	provideMapsClient, providePlaceEnricher)

func provideMapsClient(cfg *config.Config, logger *zap.Logger) services.PlacesProvider {
	return googlemaps.NewClient(cfg.Maps, logger)
}

func providePlaceEnricher(
	places services.PlacesProvider,
	geocodeCache repositories.GeocodeCache,
	cfg *config.Config,
	logger *zap.Logger,
) services.PlaceEnricherInterface {
	return services.NewPlaceEnricher(places, geocodeCache, cfg.Places, logger)
}
