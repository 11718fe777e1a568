package speakers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Speaker, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Speaker, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateSpeakerInput) (*Speaker, error) {
	eventID, err := primitive.ObjectIDFromHex(in.EventID)
	if err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}

	speaker := Speaker{
		Name:           in.Name,
		Bio:            in.Bio,
		PhotoURL:       in.PhotoURL,
		Email:          in.Email,
		EventID:        eventID,
		Specialization: in.Specialization,
		Location:       in.Location,
	}
	if in.Availability != nil {
		speaker.Availability = *in.Availability
	}

	id, err := s.repo.Insert(ctx, speaker)
	if err != nil {
		return nil, err
	}
	speaker.ID = id
	return &speaker, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateSpeakerInput) (int64, error) {
	params := UpdateSpeakerParams{
		Name:           in.Name,
		Bio:            in.Bio,
		PhotoURL:       in.PhotoURL,
		Email:          in.Email,
		Specialization: in.Specialization,
		Availability:   in.Availability,
		Location:       in.Location,
	}

	if in.EventID != nil {
		eventID, err := primitive.ObjectIDFromHex(*in.EventID)
		if err != nil {
			return 0, fmt.Errorf("parse event: %w", err)
		}
		params.EventID = &eventID
	}

	return s.repo.UpdateByID(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
