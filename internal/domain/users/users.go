// Package users manages user records: validation, password hashing, and
// the CRUD operations over the users collection.
package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

// User is a stored user record. Password always holds a bcrypt hash; the
// plaintext never reaches the repository.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"fname" json:"fname"`
	LastName  string             `bson:"lname" json:"lname"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"`
	DOB       time.Time          `bson:"dob" json:"dob"`
	Location  string             `bson:"location" json:"location"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CreateUserInput is the request body for creating a user.
type CreateUserInput struct {
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=5"`
	Role      string `json:"role" validate:"required"`
	Status    string `json:"status" validate:"required"`
	DOB       string `json:"dob" validate:"required,isodate"`
	Location  string `json:"location" validate:"required"`
}

// UpdateUserInput is the request body for a partial update. Absent fields
// are not checked and not touched.
type UpdateUserInput struct {
	FirstName *string `json:"fname" validate:"omitempty,min=1"`
	LastName  *string `json:"lname" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=5"`
	Role      *string `json:"role" validate:"omitempty,min=1"`
	Status    *string `json:"status" validate:"omitempty,min=1"`
	DOB       *string `json:"dob" validate:"omitempty,isodate"`
	Location  *string `json:"location" validate:"omitempty,min=1"`
}

// Messages maps body fields to their validation failure messages.
var Messages = map[string]string{
	"fname":    "First name is required",
	"lname":    "Last name is required",
	"email":    "Must be a valid email address",
	"password": "Password must be at least 5 characters long",
	"role":     "Role is required",
	"status":   "Status is required",
	"dob":      "Date of birth must be a valid date",
	"location": "Location is required",
}

func ValidateCreate(in CreateUserInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}

func ValidateUpdate(in UpdateUserInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}
