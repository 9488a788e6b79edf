package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
)

func newTestClient(baseURL, apiKey string) *Client {
	return NewClient(config.MapsConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestGeocode(t *testing.T) {
	t.Run("returns first result location", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geocode/json", r.URL.Path)
			assert.Equal(t, "Lisbon", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{"geometry": {"location": {"lat": 38.7169, "lng": -9.1399}}},
					{"geometry": {"location": {"lat": 0, "lng": 0}}}
				]
			}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		coords, err := client.Geocode(context.Background(), "Lisbon")
		require.NoError(t, err)
		assert.InDelta(t, 38.7169, coords.Lat, 1e-6)
		assert.InDelta(t, -9.1399, coords.Lng, 1e-6)
	})

	t.Run("zero results is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		_, err := client.Geocode(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, ErrNoResults)
	})

	t.Run("missing api key fails without a request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		_, err := client.Geocode(context.Background(), "Lisbon")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		_, err := client.Geocode(context.Background(), "Lisbon")
		assert.Error(t, err)
	})
}

func TestSearchPlaces(t *testing.T) {
	t.Run("caps ids at max results and skips empty ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/place/textsearch/json", r.URL.Path)
			assert.Equal(t, "restaurant", r.URL.Query().Get("query"))
			assert.Equal(t, "5000", r.URL.Query().Get("radius"))
			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{"place_id": "a"},
					{"place_id": ""},
					{"place_id": "b"},
					{"place_id": "c"},
					{"place_id": "d"}
				]
			}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		ids, err := client.SearchPlaces(context.Background(), "restaurant", LatLng{Lat: 38.7, Lng: -9.1}, 5000, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})
}

func TestSearchWithDetails(t *testing.T) {
	t.Run("two stage lookup returns detailed places", func(t *testing.T) {
		var detailCalls []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/place/textsearch/json":
				fmt.Fprint(w, `{"status": "OK", "results": [{"place_id": "p1"}, {"place_id": "p2"}]}`)
			case "/place/details/json":
				id := r.URL.Query().Get("place_id")
				detailCalls = append(detailCalls, id)
				fmt.Fprintf(w, `{
					"status": "OK",
					"result": {
						"name": "Place %s",
						"formatted_address": "Somewhere 1",
						"rating": 4.2,
						"user_ratings_total": 120,
						"types": ["restaurant"],
						"geometry": {"location": {"lat": 38.7, "lng": -9.1}}
					}
				}`, id)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		places, err := client.SearchWithDetails(context.Background(), "restaurant", LatLng{Lat: 38.7, Lng: -9.1}, 5000, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, detailCalls)

		require.Len(t, places, 2)
		require.NotNil(t, places[0].Name)
		assert.Equal(t, "Place p1", *places[0].Name)
		require.NotNil(t, places[0].Rating)
		assert.InDelta(t, 4.2, *places[0].Rating, 1e-6)
		require.NotNil(t, places[0].Reviews)
		assert.Equal(t, 120, *places[0].Reviews)
		require.NotNil(t, places[0].Lat)
		assert.InDelta(t, 38.7, *places[0].Lat, 1e-6)
	})

	t.Run("failing details fetch skips that place only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/place/textsearch/json":
				fmt.Fprint(w, `{"status": "OK", "results": [{"place_id": "bad"}, {"place_id": "good"}]}`)
			case "/place/details/json":
				if r.URL.Query().Get("place_id") == "bad" {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				fmt.Fprint(w, `{"status": "OK", "result": {"name": "Survivor"}}`)
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		places, err := client.SearchWithDetails(context.Background(), "hotel", LatLng{}, 5000, 3)
		require.NoError(t, err)
		require.Len(t, places, 1)
		require.NotNil(t, places[0].Name)
		assert.Equal(t, "Survivor", *places[0].Name)

		assert.Nil(t, places[0].Lat)
		assert.Nil(t, places[0].Lng)
	})

	t.Run("search failure aborts the lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		_, err := client.SearchWithDetails(context.Background(), "hotel", LatLng{}, 5000, 3)
		assert.Error(t, err)
	})
}
