package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/models/db_models"
	"github.com/sairaj2832-star/DISHANVESHI/internal/models/request_models"
	"github.com/sairaj2832-star/DISHANVESHI/internal/models/response_models"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
	"github.com/sairaj2832-star/DISHANVESHI/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
	SaveItinerary(ctx context.Context, userId string, req request_models.SaveItineraryRequest) (*response_models.SavedItinerary, error)
	ListItineraries(ctx context.Context, userId string) ([]response_models.SavedItinerary, error)
	RecommendFromMood(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error)
}

type ItineraryService struct {
	generator     utils.GenerationClientInterface
	enricher      PlaceEnricherInterface
	itineraryRepo repositories.ItineraryRepository
	logger        *zap.Logger
}

func NewItineraryService(
	generator utils.GenerationClientInterface,
	enricher PlaceEnricherInterface,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:     generator,
		enricher:      enricher,
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

func buildItineraryPrompt(req request_models.ItineraryRequest) string {
	return fmt.Sprintf(`Generate a %d-day travel itinerary for %s.
The trip style is %s, with a %s budget.
Mood: %s.

Please format the response clearly with headings like:
Day 1: <activities>
Day 2: <activities>

Keep each day's suggestions to 2-4 short activity bullets or sentences.`,
		req.Days, req.Destination, req.TravelType, req.Budget, req.Mood)
}

// GenerateItinerary runs the full pipeline: generate text, parse it into day
// plans, then attach points of interest. Expected upstream failures degrade
// to empty fields; only an unexpected panic yields the day-0 sentinel plan.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (resp *response_models.ItineraryResponse, err error) {
	if strings.TrimSpace(req.Destination) == "" || req.Days < 1 {
		return nil, utils.ErrInvalidInput
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("itinerary pipeline failed unexpectedly", zap.Any("cause", r))
			resp = &response_models.ItineraryResponse{
				Destination: req.Destination,
				Plan: []response_models.ItineraryDay{
					newDayPlan(0, fmt.Sprintf("Error generating itinerary: %v", r)),
				},
			}
			err = nil
		}
	}()

	raw, genErr := s.generator.GenerateText(ctx, buildItineraryPrompt(req))
	if genErr != nil {
		s.logger.Warn("itinerary generation failed, continuing with empty text",
			zap.String("destination", req.Destination),
			zap.Error(genErr))
		raw = ""
	}

	plan := BuildDayPlans(raw, req.Days)

	if req.WantsPlaces() {
		s.enricher.EnrichPlan(ctx, req.Destination, plan)
	}

	return &response_models.ItineraryResponse{
		Destination: req.Destination,
		Plan:        plan,
	}, nil
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, userId string, req request_models.SaveItineraryRequest) (*response_models.SavedItinerary, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !json.Valid(req.Plan) {
		return nil, utils.ErrInvalidInput
	}

	itinerary := &db_models.Itinerary{
		UserID:      userUUID,
		Destination: req.Destination,
		Days:        req.Days,
		Plan:        []byte(req.Plan),
		Tags:        req.Tags,
	}

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return savedItineraryResponse(itinerary), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userId string) ([]response_models.SavedItinerary, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itineraries, err := s.itineraryRepo.ListByUserId(ctx, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedItinerary, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, *savedItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func savedItineraryResponse(itinerary *db_models.Itinerary) *response_models.SavedItinerary {
	return &response_models.SavedItinerary{
		ID:          itinerary.ID.String(),
		Destination: itinerary.Destination,
		Days:        itinerary.Days,
		Plan:        json.RawMessage(itinerary.Plan),
		Tags:        itinerary.Tags,
		CreatedAt:   itinerary.CreatedAt,
	}
}

// RecommendFromMood asks the model to pick one or two places from a list
// that suit the caller's mood. Provider failures return a friendly offline
// message instead of an error.
func (s *ItineraryService) RecommendFromMood(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error) {
	var placesBuf strings.Builder
	for _, p := range req.Places {
		fmt.Fprintf(&placesBuf, "- %s", p.Name)
		if p.Rating != nil {
			fmt.Fprintf(&placesBuf, " (rating %.1f)", *p.Rating)
		}
		if len(p.Types) > 0 {
			fmt.Fprintf(&placesBuf, " [%s]", strings.Join(p.Types, ", "))
		}
		placesBuf.WriteString("\n")
	}

	prompt := fmt.Sprintf(`You are a travel assistant.
The user is feeling: %q.
Here is a list of nearby places found:
%s
Based on the user's mood, recommend ONE or TWO specific places from the list.
Explain WHY in a short, friendly sentence. If the mood is 'tired', prioritize hotels or quiet cafes.`,
		req.Mood, placesBuf.String())

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("mood recommendation failed", zap.Error(err))
		return &response_models.RecommendationResponse{
			Recommendation: "I'm sorry, my AI brain is currently offline.",
		}, nil
	}

	return &response_models.RecommendationResponse{
		Recommendation: strings.TrimSpace(text),
	}, nil
}
