package venues

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("venue not found")

type UpdateVenueParams struct {
	Name     *string
	Address  *string
	City     *string
	State    *string
	Postal   *string
	Capacity *int
}

// Repository is the store gateway for the venues collection.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	Insert(ctx context.Context, venue Venue) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, params UpdateVenueParams) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
