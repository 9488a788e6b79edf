package response_models

import (
	"encoding/json"

	"github.com/sairaj2832-star/DISHANVESHI/internal/infra/googlemaps"
)

type ItineraryDay struct {
	Day     int                `json:"day"`
	Summary string             `json:"summary"`
	Places  []googlemaps.Place `json:"places"`
}

type ItineraryResponse struct {
	Destination string         `json:"destination"`
	Plan        []ItineraryDay `json:"plan"`
}

type SavedItinerary struct {
	ID          string          `json:"id"`
	Destination string          `json:"destination"`
	Days        int             `json:"days"`
	Plan        json.RawMessage `json:"plan"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   int64           `json:"created_at"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
