package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/app"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/handler"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(finder *MockPlaceFinder, store *MockTripStore) *gin.Engine {
	planner := service.NewTripPlannerService(finder, store, service.NewNotificationService())
	return app.NewRouter(app.RouterDeps{
		TripHandler:   handler.NewTripHandler(planner),
		PlacesHandler: handler.NewPlacesHandler(planner),
	})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanTrip_InvalidJSON(t *testing.T) {
	t.Parallel()

	finder := NewMockPlaceFinder()
	store := NewMockTripStore()
	router := newTestRouter(finder, store)

	w := doRequest(router, http.MethodPost, "/v1/trips", `{not valid json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["message"] != "Invalid JSON format" {
		t.Errorf("expected message 'Invalid JSON format', got %q", body["message"])
	}

	if atomic.LoadInt32(&finder.CallCount) != 0 {
		t.Error("expected no lookups for malformed body")
	}
	if atomic.LoadInt32(&store.SaveCallCount) != 0 {
		t.Error("expected no store writes for malformed body")
	}
}

func TestPlanTrip_MissingCurrentLocation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"no currentLocation", `{"from":"A","to":"B","vehicle":"car","userId":"u1"}`},
		{"null currentLocation", `{"from":"A","currentLocation":null}`},
		{"missing lng", `{"from":"A","currentLocation":{"lat":1.0}}`},
		{"missing lat", `{"from":"A","currentLocation":{"lng":2.0}}`},
		{"null lat", `{"from":"A","currentLocation":{"lat":null,"lng":2.0}}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			finder := NewMockPlaceFinder()
			store := NewMockTripStore()
			router := newTestRouter(finder, store)

			w := doRequest(router, http.MethodPost, "/v1/trips", tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body %s)", w.Code, w.Body.String())
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if body["message"] != "Missing current location." {
				t.Errorf("expected message 'Missing current location.', got %q", body["message"])
			}

			if atomic.LoadInt32(&finder.CallCount) != 0 {
				t.Error("expected no lookups when location is missing")
			}
			if atomic.LoadInt32(&store.SaveCallCount) != 0 {
				t.Error("expected no store writes when location is missing")
			}
		})
	}
}

func TestPlanTrip_EndToEnd(t *testing.T) {
	t.Parallel()

	finder := NewMockPlaceFinder()
	finder.Results["restaurant"] = []places.Place{
		place("Cafe One", 1.01, 2.01, "restaurant", "food"),
		place("Cafe Two", 1.02, 2.02, "restaurant"),
	}
	store := NewMockTripStore()
	router := newTestRouter(finder, store)

	w := doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"A","to":"B","vehicle":"car","userId":"u1","currentLocation":{"lat":1.0,"lng":2.0}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected Access-Control-Allow-Origin '*', got %q", got)
	}

	var body struct {
		Message    string         `json:"message"`
		AIResponse string         `json:"ai_response"`
		POIs       []places.Place `json:"pois"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if body.Message != "Trip processed successfully." {
		t.Errorf("expected message 'Trip processed successfully.', got %q", body.Message)
	}
	want := "Successfully planned trip from A to B by car. Found 2 points of interest near your location."
	if body.AIResponse != want {
		t.Errorf("ai_response = %q, want %q", body.AIResponse, want)
	}
	if len(body.POIs) != 2 {
		t.Fatalf("expected 2 pois, got %d", len(body.POIs))
	}
	if body.POIs[0].Name != "Cafe One" || body.POIs[1].Name != "Cafe Two" {
		t.Errorf("unexpected poi order: %s, %s", body.POIs[0].Name, body.POIs[1].Name)
	}

	if atomic.LoadInt32(&store.SaveCallCount) != 1 {
		t.Errorf("expected 1 store write, got %d", store.SaveCallCount)
	}
}

func TestPlanTrip_EmptyPOIsMarshalAsArray(t *testing.T) {
	t.Parallel()

	router := newTestRouter(NewMockPlaceFinder(), NewMockTripStore())

	w := doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"A","to":"B","vehicle":"car","currentLocation":{"lat":1.0,"lng":2.0}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"pois":[]`) {
		t.Errorf("expected pois to marshal as [], body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Found 0 points of interest") {
		t.Errorf("expected zero-POI summary, body: %s", w.Body.String())
	}
}

func TestPlanTrip_SaveFailureStillReturns200(t *testing.T) {
	t.Parallel()

	store := NewMockTripStore()
	store.SaveError = http.ErrHandlerTimeout // any error will do
	router := newTestRouter(NewMockPlaceFinder(), store)

	w := doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"A","to":"B","vehicle":"car","currentLocation":{"lat":1.0,"lng":2.0}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite save failure, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Trip processed successfully.") {
		t.Errorf("expected success message, body: %s", w.Body.String())
	}
}

func TestZeroCoordinatesAreValid(t *testing.T) {
	t.Parallel()

	finder := NewMockPlaceFinder()
	router := newTestRouter(finder, NewMockTripStore())

	w := doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"A","to":"B","vehicle":"car","currentLocation":{"lat":0,"lng":0}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for (0,0) coordinates, got %d", w.Code)
	}
	if atomic.LoadInt32(&finder.CallCount) != 4 {
		t.Errorf("expected 4 lookups, got %d", finder.CallCount)
	}
}

func TestListTrips_ReturnsSavedTrips(t *testing.T) {
	t.Parallel()

	store := NewMockTripStore()
	router := newTestRouter(NewMockPlaceFinder(), store)

	doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"A","to":"B","vehicle":"car","currentLocation":{"lat":1.0,"lng":2.0}}`)
	doRequest(router, http.MethodPost, "/v1/trips",
		`{"from":"C","to":"D","vehicle":"bus","currentLocation":{"lat":3.0,"lng":4.0}}`)

	w := doRequest(router, http.MethodGet, "/v1/trips", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 trips, got %d", len(records))
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(NewMockPlaceFinder(), NewMockTripStore())

	w := doRequest(router, http.MethodGet, "/v1/trips/no-such-id", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestNearbyPlaces_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	router := newTestRouter(NewMockPlaceFinder(), NewMockTripStore())

	w := doRequest(router, http.MethodGet, "/v1/places/nearby?lat=abc&lng=2.0", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNearbyPlaces_Passthrough(t *testing.T) {
	t.Parallel()

	finder := NewMockPlaceFinder()
	finder.Results["hospital"] = []places.Place{place("H1", 3, 3, "hospital")}
	router := newTestRouter(finder, NewMockTripStore())

	w := doRequest(router, http.MethodGet, "/v1/places/nearby?lat=1.0&lng=2.0&type=hospital", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var body struct {
		Count   int            `json:"count"`
		Results []places.Place `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Count != 1 || len(body.Results) != 1 {
		t.Errorf("expected 1 result, got count=%d len=%d", body.Count, len(body.Results))
	}
}
