package service

import (
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// NotificationService exposes read access to a user's notification
// inbox.  Records are only ever created by the Coordinator.
type NotificationService interface {
	GetForUser(userID string) []model.Notification
	// MarkRead stamps the read-at timestamp.  Only the addressee may
	// mark a notification; the stamp is written at most once and
	// marking an already-read notification returns it unchanged.
	MarkRead(actor *model.User, notificationID string) (model.Notification, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) GetForUser(userID string) []model.Notification {
	return s.notifications.FindByUserID(userID)
}

func (s *notificationService) MarkRead(actor *model.User, notificationID string) (model.Notification, error) {
	if actor == nil {
		return model.Notification{}, accessDenied("missing actor")
	}
	n, err := s.notifications.FindByID(notificationID)
	if err != nil {
		return model.Notification{}, lookupErr(err, "notification")
	}
	if n.UserID != actor.ID {
		return model.Notification{}, accessDenied("not your notification")
	}
	if n.ReadAt != nil {
		return n, nil
	}
	now := time.Now().UTC()
	n.ReadAt = &now
	return s.notifications.Save(n)
}
