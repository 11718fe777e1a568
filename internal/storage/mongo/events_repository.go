package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/server/internal/domain/events"
)

type EventRepository struct {
	coll *mongo.Collection
}

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	out := []events.Event{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var event events.Event
	if err := r.coll.FindOne(ctx, filter).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Insert(ctx context.Context, event events.Event) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert event: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (r *EventRepository) UpdateByID(ctx context.Context, id string, params events.UpdateEventParams) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Location != nil {
		set["location"] = *params.Location
	}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.Time != nil {
		set["time"] = *params.Time
	}
	if params.Venue != nil {
		set["venue"] = *params.Venue
	}

	if len(set) == 0 {
		return matchedByFilter(ctx, r.coll, filter)
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	return result.MatchedCount, nil
}

func (r *EventRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return result.DeletedCount, nil
}
