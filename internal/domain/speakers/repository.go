package speakers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("speaker not found")

type UpdateSpeakerParams struct {
	Name           *string
	Bio            *string
	PhotoURL       *string
	Email          *string
	EventID        *primitive.ObjectID
	Specialization *string
	Availability   *bool
	Location       *string
}

// Repository is the store gateway for the speakers collection.
type Repository interface {
	List(ctx context.Context) ([]Speaker, error)
	GetByID(ctx context.Context, id string) (*Speaker, error)
	Insert(ctx context.Context, speaker Speaker) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, params UpdateSpeakerParams) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
