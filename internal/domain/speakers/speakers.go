// Package speakers manages speaker records. A speaker references the event
// it is attached to by identifier; the reference is format-checked only.
package speakers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

type Speaker struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Bio            string             `bson:"bio" json:"bio"`
	PhotoURL       string             `bson:"photo_url" json:"photo_url"`
	Email          string             `bson:"email" json:"email"`
	EventID        primitive.ObjectID `bson:"event" json:"event"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Availability   bool               `bson:"availability" json:"availability"`
	Location       string             `bson:"location" json:"location"`
}

type CreateSpeakerInput struct {
	Name           string `json:"name" validate:"required"`
	Bio            string `json:"bio" validate:"required"`
	PhotoURL       string `json:"photo_url" validate:"required,url"`
	Email          string `json:"email" validate:"required,email"`
	EventID        string `json:"event" validate:"required,objectid"`
	Specialization string `json:"specialization" validate:"required"`
	Availability   *bool  `json:"availability" validate:"required"`
	Location       string `json:"location" validate:"required"`
}

type UpdateSpeakerInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Bio            *string `json:"bio" validate:"omitempty,min=1"`
	PhotoURL       *string `json:"photo_url" validate:"omitempty,url"`
	Email          *string `json:"email" validate:"omitempty,email"`
	EventID        *string `json:"event" validate:"omitempty,objectid"`
	Specialization *string `json:"specialization" validate:"omitempty,min=1"`
	Availability   *bool   `json:"availability"`
	Location       *string `json:"location" validate:"omitempty,min=1"`
}

var Messages = map[string]string{
	"name":           "Name is required",
	"bio":            "Bio is required",
	"photo_url":      "Photo URL must be a valid URL",
	"email":          "Must be a valid email address",
	"event":          "Event ID must be a valid ID",
	"specialization": "Specialization is required",
	"availability":   "Availability is required",
	"location":       "Location is required",
}

func ValidateCreate(in CreateSpeakerInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}

func ValidateUpdate(in UpdateSpeakerInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}
