package request_models

import "encoding/json"

type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	TravelType  string `json:"travel_type"`
	Budget      string `json:"budget"`
	Mood        string `json:"mood"`
	// Defaults to true when omitted, matching the public API contract.
	IncludePlaces *bool `json:"include_pois"`
}

func (r ItineraryRequest) WantsPlaces() bool {
	return r.IncludePlaces == nil || *r.IncludePlaces
}

type SaveItineraryRequest struct {
	Destination string          `json:"destination" binding:"required"`
	Days        int             `json:"days" binding:"required,min=1"`
	Plan        json.RawMessage `json:"plan" binding:"required"`
	Tags        []string        `json:"tags"`
}

type RecommendationRequest struct {
	Mood   string         `json:"mood" binding:"required"`
	Places []PlaceSummary `json:"places" binding:"required,min=1"`
}

type PlaceSummary struct {
	Name   string   `json:"name" binding:"required"`
	Rating *float64 `json:"rating"`
	Types  []string `json:"types"`
}
