package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a user lookup matches no record.
var ErrNotFound = errors.New("user not found")

// UpdateUserParams carries the fields of a partial update. Nil fields are
// left untouched in the stored record. Password, when set, is already hashed.
type UpdateUserParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Role      *string
	Status    *string
	DOB       *time.Time
	Location  *string
}

// Repository is the store gateway for the users collection.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Insert(ctx context.Context, user User) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, params UpdateUserParams) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
