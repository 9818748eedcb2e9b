package event

import (
	"context"
	"fmt"
	"strings"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const msgEventNotFound = "Event not found"

func (s *DefaultEventService) CreateEvent(ctx context.Context, organizerID string, req models.EventRequest) (*models.Event, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, utils.NewBadRequestError(err.Error())
	}
	if req.GuestCount < 1 {
		return nil, utils.NewBadRequestError("guestCount must be at least 1")
	}
	if req.Budget < 0 {
		return nil, utils.NewBadRequestError("budget cannot be negative")
	}

	ev := &models.Event{
		ID:          uuid.New().String(),
		Organizer:   organizerID,
		Title:       strings.TrimSpace(req.Title),
		Type:        strings.TrimSpace(req.Type),
		Date:        date,
		Location:    strings.TrimSpace(req.Location),
		GuestCount:  req.GuestCount,
		Budget:      req.Budget,
		Description: req.Description,
	}
	if ev.Title == "" || ev.Type == "" || ev.Location == "" {
		return nil, utils.NewBadRequestError("title, type and location are required")
	}
	if err := s.Events.Create(ctx, ev); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Event created", zap.String("eventID", ev.ID), zap.String("organizer", organizerID))
	return ev, nil
}

func (s *DefaultEventService) GetMyEvents(ctx context.Context, organizerID string) ([]models.Event, error) {
	return s.Events.GetByOrganizer(ctx, organizerID)
}

func (s *DefaultEventService) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	ev, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, utils.NewNotFoundError(msgEventNotFound)
	}
	return ev, nil
}

// ownedEvent loads the event and checks that organizerID owns it.
func (s *DefaultEventService) ownedEvent(ctx context.Context, organizerID, eventID string) (*models.Event, error) {
	ev, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != organizerID {
		return nil, utils.NewForbiddenError("Not authorized to manage this event")
	}
	return ev, nil
}

func (s *DefaultEventService) UpdateEvent(ctx context.Context, organizerID, eventID string, req models.EventUpdateRequest) (*models.Event, error) {
	ev, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	setText := func(key string, v *string) error {
		if v == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" && key != "description" {
			return utils.NewBadRequestError(fmt.Sprintf("%s cannot be empty", key))
		}
		fields[key] = trimmed
		return nil
	}
	for key, v := range map[string]*string{
		"title":       req.Title,
		"type":        req.Type,
		"location":    req.Location,
		"description": req.Description,
	} {
		if err := setText(key, v); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return nil, utils.NewBadRequestError(err.Error())
		}
		fields["date"] = date
	}
	if req.GuestCount != nil {
		if *req.GuestCount < 1 {
			return nil, utils.NewBadRequestError("guestCount must be at least 1")
		}
		fields["guestCount"] = *req.GuestCount
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return nil, utils.NewBadRequestError("budget cannot be negative")
		}
		fields["budget"] = *req.Budget
	}
	if len(fields) == 0 {
		return ev, nil
	}

	updated, err := s.Events.UpdateSetDocument(ctx, eventID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFoundError(msgEventNotFound)
	}
	return updated, nil
}

// DeleteEvent removes the event together with its bookings and its chat.
func (s *DefaultEventService) DeleteEvent(ctx context.Context, organizerID, eventID string) error {
	if _, err := s.ownedEvent(ctx, organizerID, eventID); err != nil {
		return err
	}
	ids := []string{eventID}
	if _, err := s.Bookings.DeleteByEvents(ctx, ids); err != nil {
		return fmt.Errorf("delete event bookings: %w", err)
	}
	if _, err := s.Chats.DeleteByEvents(ctx, ids); err != nil {
		return fmt.Errorf("delete event chat: %w", err)
	}
	if err := s.Events.Delete(ctx, eventID); err != nil {
		return err
	}
	utils.GetLogger().Info("Event deleted", zap.String("eventID", eventID))
	return nil
}
