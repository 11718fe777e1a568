package venues

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Venue, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateVenueInput) (*Venue, error) {
	venue := Venue{
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Postal:    in.Postal,
		Capacity:  in.Capacity,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, venue)
	if err != nil {
		return nil, err
	}
	venue.ID = id
	return &venue, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateVenueInput) (int64, error) {
	params := UpdateVenueParams{
		Name:     in.Name,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		Postal:   in.Postal,
		Capacity: in.Capacity,
	}
	return s.repo.UpdateByID(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
