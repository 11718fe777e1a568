package events

import (
	"context"
	"fmt"

	"github.com/eventhub/server/internal/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateEventInput) (*Event, error) {
	date, err := validation.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	event := Event{
		Name:     in.Name,
		Location: in.Location,
		Date:     date,
		Time:     in.Time,
		Venue:    in.Venue,
	}

	id, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	return &event, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateEventInput) (int64, error) {
	params := UpdateEventParams{
		Name:     in.Name,
		Location: in.Location,
		Time:     in.Time,
		Venue:    in.Venue,
	}

	if in.Date != nil {
		date, err := validation.ParseDate(*in.Date)
		if err != nil {
			return 0, fmt.Errorf("parse date: %w", err)
		}
		params.Date = &date
	}

	return s.repo.UpdateByID(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
