package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/repository"
)

// tripCategories are the place categories queried for every planned trip,
// in response concatenation order.
var tripCategories = [...]string{"restaurant", "hospital", "gas_station", "lodging"}

// recentTripsLimit caps the trip listing endpoint.
const recentTripsLimit = 50

// PlaceFinder looks up nearby places for one category. Implementations
// absorb their own failures and return an empty result instead.
type PlaceFinder interface {
	FetchNearby(ctx context.Context, lat, lng float64, category string) []places.Place
}

// TripPlannerService plans trips: it fans out nearby-place lookups around
// the requester's location, persists the resulting trip record best-effort,
// and produces the response summary.
type TripPlannerService struct {
	finder   PlaceFinder
	store    repository.TripStore
	notifier *NotificationService
}

// NewTripPlannerService creates a new TripPlannerService.
func NewTripPlannerService(finder PlaceFinder, store repository.TripStore, notifier *NotificationService) *TripPlannerService {
	return &TripPlannerService{
		finder:   finder,
		store:    store,
		notifier: notifier,
	}
}

// PlanTripResult is the outcome of planning one trip.
type PlanTripResult struct {
	Summary string
	POIs    []places.Place
	Record  *domain.TripRecord
}

// PlanTrip runs the whole planning flow for one validated request.
//
// The lookup fan-out joins on all categories; each lookup degrades to an
// empty result on failure, so the join itself cannot fail. The store write
// is advisory: its error is logged and discarded, never surfaced. PlanTrip
// therefore always produces a result.
func (s *TripPlannerService) PlanTrip(ctx context.Context, req domain.TripRequest) *PlanTripResult {
	results := make([][]places.Place, len(tripCategories))

	var wg sync.WaitGroup
	for i, category := range tripCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()
			results[i] = s.finder.FetchNearby(ctx, req.CurrentLocation.Lat, req.CurrentLocation.Lng, category)
		}(i, category)
	}
	wg.Wait()

	pois := make([]places.Place, 0)
	for _, r := range results {
		pois = append(pois, r...)
	}

	record := &domain.TripRecord{
		ID:              uuid.New().String(),
		From:            req.From,
		To:              req.To,
		Vehicle:         req.Vehicle,
		UserID:          req.UserID,
		CurrentLocation: req.CurrentLocation,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		POIs:            toPlaceRecords(pois),
		Active:          true,
	}

	if err := s.store.Save(ctx, record); err != nil {
		logrus.WithError(err).WithField("trip_id", record.ID).Warn("failed to save trip record")
	} else if s.notifier != nil {
		_ = s.notifier.NotifyTripPlanned(ctx, record)
	}

	summary := fmt.Sprintf(
		"Successfully planned trip from %s to %s by %s. Found %d points of interest near your location.",
		req.From, req.To, req.Vehicle, len(pois),
	)

	return &PlanTripResult{
		Summary: summary,
		POIs:    pois,
		Record:  record,
	}
}

// NearbyPlaces exposes a single-category lookup outside the planning flow.
func (s *TripPlannerService) NearbyPlaces(ctx context.Context, lat, lng float64, category string) ([]places.Place, error) {
	if !isFinite(lat) || !isFinite(lng) {
		return nil, ErrInvalidLocation
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	return s.finder.FetchNearby(ctx, lat, lng, category), nil
}

// GetTrip retrieves a previously planned trip record.
func (s *TripPlannerService) GetTrip(ctx context.Context, id string) (*domain.TripRecord, error) {
	if id == "" {
		return nil, ErrInvalidTripID
	}
	return s.store.GetByID(ctx, id)
}

// ListTrips retrieves recently planned trips, newest first. A disabled
// store yields an empty list rather than an error.
func (s *TripPlannerService) ListTrips(ctx context.Context) ([]*domain.TripRecord, error) {
	records, err := s.store.GetRecent(ctx, recentTripsLimit)
	if err != nil {
		if errors.Is(err, repository.ErrNotInitialized) {
			return []*domain.TripRecord{}, nil
		}
		return nil, err
	}
	if records == nil {
		records = []*domain.TripRecord{}
	}
	return records, nil
}

// toPlaceRecords trims raw provider results down to the stored projection.
// Results missing geometry or type tags get zero-value defaults instead of
// faulting the request.
func toPlaceRecords(results []places.Place) []domain.PlaceRecord {
	records := make([]domain.PlaceRecord, 0, len(results))
	for _, p := range results {
		placeType := "unknown"
		if len(p.Types) > 0 {
			placeType = p.Types[0]
		}
		records = append(records, domain.PlaceRecord{
			Name: p.Name,
			Location: domain.LatLng{
				Lat: p.Geometry.Location.Lat,
				Lng: p.Geometry.Location.Lng,
			},
			Type:     placeType,
			Vicinity: p.Vicinity,
		})
	}
	return records
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
