package mongodb

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/repository"
)

const tripsCollection = "trips"

// TripStore is a MongoDB implementation of repository.TripStore.
//
// The store is wired once at startup. When the MongoDB client could not be
// established, the store stays permanently disabled: every call returns
// repository.ErrNotInitialized instead of touching the network.
type TripStore struct {
	coll     *mongo.Collection
	disabled bool
}

// NewTripStore creates a MongoDB trip store. A nil client produces a
// disabled store.
func NewTripStore(client *mongo.Client, database string) *TripStore {
	if client == nil {
		logrus.Warn("trip store not initialized, trip records will not be persisted")
		return &TripStore{disabled: true}
	}
	return &TripStore{coll: client.Database(database).Collection(tripsCollection)}
}

// Save appends one trip record to the trips collection.
func (s *TripStore) Save(ctx context.Context, record *domain.TripRecord) error {
	if s.disabled {
		return repository.ErrNotInitialized
	}
	_, err := s.coll.InsertOne(ctx, record)
	return err
}

// GetByID retrieves a trip record by ID.
func (s *TripStore) GetByID(ctx context.Context, id string) (*domain.TripRecord, error) {
	if s.disabled {
		return nil, repository.ErrNotInitialized
	}

	var record domain.TripRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetRecent retrieves up to limit trip records, newest first.
func (s *TripStore) GetRecent(ctx context.Context, limit int64) ([]*domain.TripRecord, error) {
	if s.disabled {
		return nil, repository.ErrNotInitialized
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*domain.TripRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
