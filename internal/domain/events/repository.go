package events

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("event not found")

// UpdateEventParams carries the fields of a partial update; nil fields are
// left untouched.
type UpdateEventParams struct {
	Name     *string
	Location *string
	Date     *time.Time
	Time     *string
	Venue    *string
}

// Repository is the store gateway for the events collection.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Insert(ctx context.Context, event Event) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, params UpdateEventParams) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
