package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/server/internal/domain/speakers"
)

type SpeakerRepository struct {
	coll *mongo.Collection
}

func (r *SpeakerRepository) List(ctx context.Context) ([]speakers.Speaker, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find speakers: %w", err)
	}

	out := []speakers.Speaker{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode speakers: %w", err)
	}
	return out, nil
}

func (r *SpeakerRepository) GetByID(ctx context.Context, id string) (*speakers.Speaker, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var speaker speakers.Speaker
	if err := r.coll.FindOne(ctx, filter).Decode(&speaker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, speakers.ErrNotFound
		}
		return nil, fmt.Errorf("find speaker: %w", err)
	}
	return &speaker, nil
}

func (r *SpeakerRepository) Insert(ctx context.Context, speaker speakers.Speaker) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, speaker)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert speaker: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (r *SpeakerRepository) UpdateByID(ctx context.Context, id string, params speakers.UpdateSpeakerParams) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Bio != nil {
		set["bio"] = *params.Bio
	}
	if params.PhotoURL != nil {
		set["photo_url"] = *params.PhotoURL
	}
	if params.Email != nil {
		set["email"] = *params.Email
	}
	if params.EventID != nil {
		set["event"] = *params.EventID
	}
	if params.Specialization != nil {
		set["specialization"] = *params.Specialization
	}
	if params.Availability != nil {
		set["availability"] = *params.Availability
	}
	if params.Location != nil {
		set["location"] = *params.Location
	}

	if len(set) == 0 {
		return matchedByFilter(ctx, r.coll, filter)
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update speaker: %w", err)
	}
	return result.MatchedCount, nil
}

func (r *SpeakerRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete speaker: %w", err)
	}
	return result.DeletedCount, nil
}
