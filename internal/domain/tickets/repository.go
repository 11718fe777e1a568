package tickets

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("ticket not found")

type UpdateTicketParams struct {
	EventID      *primitive.ObjectID
	UserID       *primitive.ObjectID
	TicketNumber *string
	Price        *float64
	Date         *time.Time
	Status       *string
}

// Repository is the store gateway for the tickets collection.
type Repository interface {
	List(ctx context.Context) ([]Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	Insert(ctx context.Context, ticket Ticket) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, params UpdateTicketParams) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
