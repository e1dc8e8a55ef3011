package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/config"
)

// SearchRadiusMeters is the fixed radius for every nearby search.
const SearchRadiusMeters = 20000

// statusOK is the provider's success sentinel.
const statusOK = "OK"

// LatLng is a coordinate pair as the provider serializes it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry carries the provider's location block for one result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Place is one raw result from the provider's nearby search.
type Place struct {
	PlaceID          string   `json:"place_id,omitempty"`
	Name             string   `json:"name"`
	Geometry         Geometry `json:"geometry"`
	Types            []string `json:"types"`
	Vicinity         string   `json:"vicinity"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
}

// searchResponse is the provider's nearby-search envelope.
type searchResponse struct {
	Status       string  `json:"status"`
	Results      []Place `json:"results"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// Client queries the places-lookup provider. All failure modes degrade to
// an empty result set; FetchNearby never reports an error to its caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a places Client from configuration.
func NewClient(cfg config.PlacesConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// FetchNearby returns places of the given category around the coordinate.
// A missing credential, non-OK provider status, transport failure or
// malformed response all log and return an empty result.
func (c *Client) FetchNearby(ctx context.Context, lat, lng float64, category string) []Place {
	if c.apiKey == "" {
		logrus.Warn("places api key not configured, skipping nearby lookup")
		return nil
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", strconv.Itoa(SearchRadiusMeters))
	q.Set("type", category)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		logrus.WithError(err).WithField("category", category).Error("failed to build nearby search request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("category", category).Error("nearby search request failed")
		return nil
	}
	defer resp.Body.Close()

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logrus.WithError(err).WithField("category", category).Error("failed to decode nearby search response")
		return nil
	}

	if parsed.Status != statusOK {
		logrus.WithFields(logrus.Fields{
			"category": category,
			"status":   parsed.Status,
			"error":    parsed.ErrorMessage,
		}).Warn("nearby search returned non-OK status")
		return nil
	}

	return parsed.Results
}
