// Package venues manages venue records.
package venues

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

type Venue struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Postal    string             `bson:"postal" json:"postal"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type CreateVenueInput struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Postal   string `json:"postal" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type UpdateVenueInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
	City     *string `json:"city" validate:"omitempty,min=1"`
	State    *string `json:"state" validate:"omitempty,min=1"`
	Postal   *string `json:"postal" validate:"omitempty,min=1"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
}

var Messages = map[string]string{
	"name":     "Venue name is required",
	"address":  "Address is required",
	"city":     "City is required",
	"state":    "State is required",
	"postal":   "Postal code is required",
	"capacity": "Capacity must be a positive number",
}

func ValidateCreate(in CreateVenueInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}

func ValidateUpdate(in UpdateVenueInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}
