package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/eventhub/server/internal/domain/events"
	"github.com/eventhub/server/internal/domain/speakers"
	"github.com/eventhub/server/internal/domain/tickets"
	"github.com/eventhub/server/internal/domain/users"
	"github.com/eventhub/server/internal/domain/venues"
)

// Repository bundles the per-collection repositories over one database
// handle.
type Repository struct {
	db *mongo.Database

	users    *UserRepository
	events   *EventRepository
	tickets  *TicketRepository
	speakers *SpeakerRepository
	venues   *VenueRepository
}

func NewRepository(db *mongo.Database) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle cannot be nil")
	}

	return &Repository{
		db:       db,
		users:    &UserRepository{coll: db.Collection("users")},
		events:   &EventRepository{coll: db.Collection("events")},
		tickets:  &TicketRepository{coll: db.Collection("tickets")},
		speakers: &SpeakerRepository{coll: db.Collection("speakers")},
		venues:   &VenueRepository{coll: db.Collection("venues")},
	}, nil
}

// Ping verifies the database is reachable, for readiness probes.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *Repository) Users() users.Repository {
	return r.users
}

func (r *Repository) Events() events.Repository {
	return r.events
}

func (r *Repository) Tickets() tickets.Repository {
	return r.tickets
}

func (r *Repository) Speakers() speakers.Repository {
	return r.speakers
}

func (r *Repository) Venues() venues.Repository {
	return r.venues
}
