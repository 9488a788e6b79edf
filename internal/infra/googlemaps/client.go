package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
)

var (
	ErrMissingAPIKey = errors.New("google maps API key missing")
	ErrNoResults     = errors.New("no results")
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place carries whatever the Places API happened to return. Every field is
// optional: upstream records are partially populated and absence is normal.
type Place struct {
	Name    *string  `json:"name,omitempty"`
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
	Reviews *int     `json:"reviews,omitempty"`
	Website *string  `json:"website,omitempty"`
	Types   []string `json:"types,omitempty"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func NewClient(cfg config.MapsConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves a place name to coordinates via the Geocoding API.
func (c *Client) Geocode(ctx context.Context, placeName string) (LatLng, error) {
	if c.apiKey == "" {
		return LatLng{}, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("address", placeName)
	params.Set("key", c.apiKey)

	var out geocodeResponse
	if err := c.getJSON(ctx, c.baseURL+"/geocode/json", params, &out); err != nil {
		return LatLng{}, err
	}
	if len(out.Results) == 0 {
		return LatLng{}, fmt.Errorf("geocoding %q: %w", placeName, ErrNoResults)
	}

	return out.Results[0].Geometry.Location, nil
}

type textSearchResponse struct {
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
	Status string `json:"status"`
}

// SearchPlaces runs a Places Text Search and returns candidate place ids,
// capped at maxResults.
func (c *Client) SearchPlaces(ctx context.Context, query string, center LatLng, radiusMeters, maxResults int) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("key", c.apiKey)

	var out textSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/place/textsearch/json", params, &out); err != nil {
		return nil, err
	}

	ids := make([]string, 0, maxResults)
	for _, r := range out.Results {
		if r.PlaceID == "" {
			continue
		}
		ids = append(ids, r.PlaceID)
		if len(ids) == maxResults {
			break
		}
	}
	return ids, nil
}

type placeDetailsResponse struct {
	Result struct {
		Name             *string  `json:"name"`
		FormattedAddress *string  `json:"formatted_address"`
		Rating           *float64 `json:"rating"`
		UserRatingsTotal *int     `json:"user_ratings_total"`
		Website          *string  `json:"website"`
		Types            []string `json:"types"`
		Geometry         *struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
	Status string `json:"status"`
}

// PlaceDetails fetches the richer record for one place id.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (Place, error) {
	if c.apiKey == "" {
		return Place{}, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,rating,user_ratings_total,formatted_address,geometry,types,website")
	params.Set("key", c.apiKey)

	var out placeDetailsResponse
	if err := c.getJSON(ctx, c.baseURL+"/place/details/json", params, &out); err != nil {
		return Place{}, err
	}

	place := Place{
		Name:    out.Result.Name,
		Address: out.Result.FormattedAddress,
		Rating:  out.Result.Rating,
		Reviews: out.Result.UserRatingsTotal,
		Website: out.Result.Website,
		Types:   out.Result.Types,
	}
	if out.Result.Geometry != nil {
		lat := out.Result.Geometry.Location.Lat
		lng := out.Result.Geometry.Location.Lng
		place.Lat = &lat
		place.Lng = &lng
	}
	return place, nil
}

// SearchWithDetails runs the two-stage lookup: text search for candidate ids,
// then a details fetch per id. A failing details fetch skips that entry only.
func (c *Client) SearchWithDetails(ctx context.Context, query string, center LatLng, radiusMeters, maxResults int) ([]Place, error) {
	ids, err := c.SearchPlaces(ctx, query, center, radiusMeters, maxResults)
	if err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(ids))
	for _, id := range ids {
		place, err := c.PlaceDetails(ctx, id)
		if err != nil {
			c.logger.Warn("place details fetch failed",
				zap.String("place_id", id),
				zap.Error(err))
			continue
		}
		places = append(places, place)
	}
	return places, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google maps API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("google maps API call",
		zap.String("endpoint", endpoint),
		zap.Duration("took", time.Since(start)))
	return nil
}
