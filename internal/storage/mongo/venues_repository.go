package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/server/internal/domain/venues"
)

type VenueRepository struct {
	coll *mongo.Collection
}

func (r *VenueRepository) List(ctx context.Context) ([]venues.Venue, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find venues: %w", err)
	}

	out := []venues.Venue{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode venues: %w", err)
	}
	return out, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*venues.Venue, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var venue venues.Venue
	if err := r.coll.FindOne(ctx, filter).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, venues.ErrNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return &venue, nil
}

func (r *VenueRepository) Insert(ctx context.Context, venue venues.Venue) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, venue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert venue: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (r *VenueRepository) UpdateByID(ctx context.Context, id string, params venues.UpdateVenueParams) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Address != nil {
		set["address"] = *params.Address
	}
	if params.City != nil {
		set["city"] = *params.City
	}
	if params.State != nil {
		set["state"] = *params.State
	}
	if params.Postal != nil {
		set["postal"] = *params.Postal
	}
	if params.Capacity != nil {
		set["capacity"] = *params.Capacity
	}

	if len(set) == 0 {
		return matchedByFilter(ctx, r.coll, filter)
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update venue: %w", err)
	}
	return result.MatchedCount, nil
}

func (r *VenueRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete venue: %w", err)
	}
	return result.DeletedCount, nil
}
