package tickets

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Ticket, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateTicketInput) (*Ticket, error) {
	eventID, err := primitive.ObjectIDFromHex(in.EventID)
	if err != nil {
		return nil, fmt.Errorf("parse event_id: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}
	date, err := validation.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	ticket := Ticket{
		EventID:      eventID,
		UserID:       userID,
		TicketNumber: in.TicketNumber,
		Price:        in.Price,
		Date:         date,
		Status:       in.Status,
	}

	id, err := s.repo.Insert(ctx, ticket)
	if err != nil {
		return nil, err
	}
	ticket.ID = id
	return &ticket, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateTicketInput) (int64, error) {
	params := UpdateTicketParams{
		TicketNumber: in.TicketNumber,
		Price:        in.Price,
		Status:       in.Status,
	}

	if in.EventID != nil {
		eventID, err := primitive.ObjectIDFromHex(*in.EventID)
		if err != nil {
			return 0, fmt.Errorf("parse event_id: %w", err)
		}
		params.EventID = &eventID
	}
	if in.UserID != nil {
		userID, err := primitive.ObjectIDFromHex(*in.UserID)
		if err != nil {
			return 0, fmt.Errorf("parse user_id: %w", err)
		}
		params.UserID = &userID
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
