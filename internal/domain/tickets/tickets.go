// Package tickets manages ticket records. A ticket references an event and
// a user by identifier; references are format-checked only, never resolved.
package tickets

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

type Ticket struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID      primitive.ObjectID `bson:"event_id" json:"event_id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	TicketNumber string             `bson:"ticket_number" json:"ticket_number"`
	Price        float64            `bson:"price" json:"price"`
	Date         time.Time          `bson:"date" json:"date"`
	Status       string             `bson:"status" json:"status"`
}

type CreateTicketInput struct {
	EventID      string  `json:"event_id" validate:"required,objectid"`
	UserID       string  `json:"user_id" validate:"required,objectid"`
	TicketNumber string  `json:"ticket_number" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Date         string  `json:"date" validate:"required,isodate"`
	Status       string  `json:"status" validate:"required"`
}

type UpdateTicketInput struct {
	EventID      *string  `json:"event_id" validate:"omitempty,objectid"`
	UserID       *string  `json:"user_id" validate:"omitempty,objectid"`
	TicketNumber *string  `json:"ticket_number" validate:"omitempty,min=1"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	Date         *string  `json:"date" validate:"omitempty,isodate"`
	Status       *string  `json:"status" validate:"omitempty,min=1"`
}

var Messages = map[string]string{
	"event_id":      "Event ID must be a valid ID",
	"user_id":       "User ID must be a valid ID",
	"ticket_number": "Ticket number is required",
	"price":         "Price must be a positive number",
	"date":          "Date must be a valid ISO 8601 date",
	"status":        "Status is required",
}

func ValidateCreate(in CreateTicketInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}

func ValidateUpdate(in UpdateTicketInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}
