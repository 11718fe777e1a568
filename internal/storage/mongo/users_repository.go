package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/server/internal/domain/users"
)

type UserRepository struct {
	coll *mongo.Collection
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	out := []users.User{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var user users.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user users.User) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, params users.UpdateUserParams) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if params.FirstName != nil {
		set["fname"] = *params.FirstName
	}
	if params.LastName != nil {
		set["lname"] = *params.LastName
	}
	if params.Email != nil {
		set["email"] = *params.Email
	}
	if params.Password != nil {
		set["password"] = *params.Password
	}
	if params.Role != nil {
		set["role"] = *params.Role
	}
	if params.Status != nil {
		set["status"] = *params.Status
	}
	if params.DOB != nil {
		set["dob"] = *params.DOB
	}
	if params.Location != nil {
		set["location"] = *params.Location
	}

	if len(set) == 0 {
		return matchedByFilter(ctx, r.coll, filter)
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	return result.MatchedCount, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return result.DeletedCount, nil
}
