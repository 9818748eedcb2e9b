package eventRepo

import (
	"context"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EventRepository defines data access for events.
// GetByID returns (nil, nil) when the event does not exist.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Event, error)
	// GetByOrganizer lists the organizer's events, newest date first.
	GetByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
	IDsByOrganizer(ctx context.Context, organizerID string) ([]string, error)
	UpdateSetDocument(ctx context.Context, id string, fields bson.M) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	DeleteByOrganizer(ctx context.Context, organizerID string) (int64, error)
}
