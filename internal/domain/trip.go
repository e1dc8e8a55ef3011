package domain

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// TripRequest is one trip-planning request after parse/validation.
// From, To, Vehicle and UserID are free-form and may be empty.
type TripRequest struct {
	From            string
	To              string
	Vehicle         string
	UserID          string
	CurrentLocation LatLng
}

// PlaceRecord is the stored projection of one provider place result.
type PlaceRecord struct {
	Name     string `json:"name" bson:"name"`
	Location LatLng `json:"location" bson:"location"`
	Type     string `json:"type" bson:"type"`
	Vicinity string `json:"vicinity" bson:"vicinity"`
}

// TripRecord is the persisted document for one planned trip. It is written
// once at planning time and never updated by this service; a separate
// scheduled notifier consumes Active.
type TripRecord struct {
	ID              string        `json:"id" bson:"_id"`
	From            string        `json:"from,omitempty" bson:"from,omitempty"`
	To              string        `json:"to,omitempty" bson:"to,omitempty"`
	Vehicle         string        `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	UserID          string        `json:"userId,omitempty" bson:"userId,omitempty"`
	CurrentLocation LatLng        `json:"currentLocation" bson:"currentLocation"`
	Timestamp       string        `json:"timestamp" bson:"timestamp"`
	POIs            []PlaceRecord `json:"pois" bson:"pois"`
	Active          bool          `json:"active" bson:"active"`
}
