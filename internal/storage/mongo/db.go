// Package mongo implements the domain repositories against MongoDB.
//
// One client is shared across all in-flight requests; the driver handles
// connection pooling and concurrency internally.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/eventhub/server/internal/metrics"
)

// Connect establishes and verifies a MongoDB connection. The caller owns
// the returned client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMonitor(metrics.MongoCommandMonitor()).
		SetPoolMonitor(metrics.MongoPoolMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// idFilter builds a by-identifier filter from an id already known to be
// 24 hex characters. Handlers validate the format before any store call,
// so a parse failure here means a programming error upstream; it is
// reported as a plain error rather than panicking.
func idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse object id %q: %w", id, err)
	}
	return bson.M{"_id": oid}, nil
}

// matchedByFilter reports whether any document matches filter. Used when a
// partial update supplies no fields at all: the caller still needs the
// matched count to distinguish 204 from 404, and Mongo rejects an empty
// $set document.
func matchedByFilter(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	err := coll.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find by id: %w", err)
	}
	return 1, nil
}
