package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/server/internal/domain/tickets"
)

type TicketRepository struct {
	coll *mongo.Collection
}

func (r *TicketRepository) List(ctx context.Context) ([]tickets.Ticket, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find tickets: %w", err)
	}

	out := []tickets.Ticket{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return out, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*tickets.Ticket, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var ticket tickets.Ticket
	if err := r.coll.FindOne(ctx, filter).Decode(&ticket); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, tickets.ErrNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &ticket, nil
}

func (r *TicketRepository) Insert(ctx context.Context, ticket tickets.Ticket) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, ticket)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert ticket: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (r *TicketRepository) UpdateByID(ctx context.Context, id string, params tickets.UpdateTicketParams) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if params.EventID != nil {
		set["event_id"] = *params.EventID
	}
	if params.UserID != nil {
		set["user_id"] = *params.UserID
	}
	if params.TicketNumber != nil {
		set["ticket_number"] = *params.TicketNumber
	}
	if params.Price != nil {
		set["price"] = *params.Price
	}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.Status != nil {
		set["status"] = *params.Status
	}

	if len(set) == 0 {
		return matchedByFilter(ctx, r.coll, filter)
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update ticket: %w", err)
	}
	return result.MatchedCount, nil
}

func (r *TicketRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete ticket: %w", err)
	}
	return result.DeletedCount, nil
}
