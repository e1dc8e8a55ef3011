package app

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/config"
)

// NewMongoClient creates a MongoDB client with optional New Relic command
// monitoring. An empty URI is an error; callers treat any failure here as
// "run without persistence" rather than aborting startup.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig, nrApp *newrelic.Application) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI not configured")
	}

	opts := options.Client().ApplyURI(cfg.URI)

	// Instrument MongoDB commands when New Relic is enabled.
	if nrApp != nil {
		opts.SetMonitor(nrmongo.NewCommandMonitor(nil))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
