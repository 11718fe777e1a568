package users

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/server/internal/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create hashes the password, persists the record, and returns it with the
// store-assigned identifier. Input must already have passed ValidateCreate.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dob, err := validation.ParseDate(in.DOB)
	if err != nil {
		return nil, fmt.Errorf("parse dob: %w", err)
	}

	user := User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hash),
		Role:      in.Role,
		Status:    in.Status,
		DOB:       dob,
		Location:  in.Location,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// Update applies the supplied fields and returns the matched count. A count
// of zero means no record carries the id. A supplied password is re-hashed.
func (s *Service) Update(ctx context.Context, id string, in UpdateUserInput) (int64, error) {
	params := UpdateUserParams{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
		Status:    in.Status,
		Location:  in.Location,
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		params.Password = &hashed
	}

	if in.DOB != nil {
		dob, err := validation.ParseDate(*in.DOB)
		if err != nil {
			return 0, fmt.Errorf("parse dob: %w", err)
		}
		params.DOB = &dob
	}

	return s.repo.UpdateByID(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
