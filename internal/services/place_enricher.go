package services

import (
	"context"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/internal/infra/googlemaps"
	"github.com/sairaj2832-star/DISHANVESHI/internal/models/response_models"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
)

// PlacesProvider is the slice of the Google Maps client the enricher needs.
type PlacesProvider interface {
	Geocode(ctx context.Context, placeName string) (googlemaps.LatLng, error)
	SearchWithDetails(ctx context.Context, query string, center googlemaps.LatLng, radiusMeters, maxResults int) ([]googlemaps.Place, error)
}

type PlaceEnricherInterface interface {
	EnrichPlan(ctx context.Context, destination string, plan []response_models.ItineraryDay)
}

type PlaceEnricher struct {
	places       PlacesProvider
	geocodeCache repositories.GeocodeCache
	radiusMeters int
	maxResults   int
	concurrency  int
	logger       *zap.Logger
}

func NewPlaceEnricher(
	places PlacesProvider,
	geocodeCache repositories.GeocodeCache,
	cfg config.PlacesConfig,
	logger *zap.Logger,
) PlaceEnricherInterface {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &PlaceEnricher{
		places:       places,
		geocodeCache: geocodeCache,
		radiusMeters: cfg.RadiusMeters,
		maxResults:   cfg.MaxResults,
		concurrency:  concurrency,
		logger:       logger,
	}
}

var (
	foodKeywordRe    = regexp.MustCompile(`(?i)\b(restaurant|food|dinner|lunch|breakfast|cafe|snack)\b`)
	lodgingKeywordRe = regexp.MustCompile(`(?i)\b(hotel|resort|stay|accommodat)`)
)

// categoryForSummary picks the search category for a day. Lodging keywords
// are checked last so they win over food keywords.
func categoryForSummary(summary string) string {
	query := "tourist attraction"
	if foodKeywordRe.MatchString(summary) {
		query = "restaurant"
	}
	if lodgingKeywordRe.MatchString(summary) {
		query = "hotel"
	}
	return query
}

// EnrichPlan attaches points of interest to every day of the plan. The
// destination is geocoded once; if that fails the whole enrichment step is
// skipped and no per-day lookups are attempted. Per-day lookups run
// concurrently, each goroutine writing only its own day, so result order
// always matches day order.
func (e *PlaceEnricher) EnrichPlan(ctx context.Context, destination string, plan []response_models.ItineraryDay) {
	center, ok := e.resolveDestination(ctx, destination)
	if !ok {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range plan {
		i := i
		g.Go(func() error {
			query := categoryForSummary(plan[i].Summary)
			places, err := e.places.SearchWithDetails(gctx, query, center, e.radiusMeters, e.maxResults)
			if err != nil {
				e.logger.Warn("places lookup failed",
					zap.Int("day", plan[i].Day),
					zap.String("query", query),
					zap.Error(err))
				plan[i].Places = []googlemaps.Place{}
				return nil
			}
			if places == nil {
				places = []googlemaps.Place{}
			}
			plan[i].Places = places
			return nil
		})
	}

	_ = g.Wait()
}

func (e *PlaceEnricher) resolveDestination(ctx context.Context, destination string) (googlemaps.LatLng, bool) {
	if coords, hit := e.geocodeCache.Get(ctx, destination); hit {
		return coords, true
	}

	coords, err := e.places.Geocode(ctx, destination)
	if err != nil {
		e.logger.Warn("geocoding failed, skipping enrichment",
			zap.String("destination", destination),
			zap.Error(err))
		return googlemaps.LatLng{}, false
	}

	e.geocodeCache.Set(ctx, destination, coords)
	return coords, true
}
