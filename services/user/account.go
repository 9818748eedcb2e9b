package user

import (
	"context"
	"fmt"

	"eventra/models"
	"eventra/utils"

	"go.uber.org/zap"
)

// DeleteAccount removes every document that depends on the user, then the
// user itself. The steps run in order without a transaction; a failure stops
// the cascade and leaves the remaining documents in place.
//
//	provider:  profile, bookings where they are the provider
//	organizer: bookings of their events, chats bound to those events, the events
//	both:      chats they take part in, the user document
func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	logger := utils.GetLogger()

	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	switch u.Role {
	case models.RoleProvider:
		if _, err := s.Repos.Providers.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete provider profile: %w", err)
		}
		if _, err := s.Repos.Bookings.DeleteByProvider(ctx, userID); err != nil {
			return fmt.Errorf("delete provider bookings: %w", err)
		}
	case models.RoleOrganizer:
		eventIDs, err := s.Repos.Events.IDsByOrganizer(ctx, userID)
		if err != nil {
			return fmt.Errorf("list organizer events: %w", err)
		}
		if _, err := s.Repos.Bookings.DeleteByEvents(ctx, eventIDs); err != nil {
			return fmt.Errorf("delete event bookings: %w", err)
		}
		if _, err := s.Repos.Chats.DeleteByEvents(ctx, eventIDs); err != nil {
			return fmt.Errorf("delete event chats: %w", err)
		}
		if _, err := s.Repos.Events.DeleteByOrganizer(ctx, userID); err != nil {
			return fmt.Errorf("delete organizer events: %w", err)
		}
	}

	if _, err := s.Repos.Chats.DeleteByParticipant(ctx, userID); err != nil {
		return fmt.Errorf("delete chats: %w", err)
	}
	if err := s.Repos.Users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.clearAuthCache(ctx, userID)

	logger.Info("Account deleted", zap.String("userID", userID), zap.String("role", u.Role))
	return nil
}
