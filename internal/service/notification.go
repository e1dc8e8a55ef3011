package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationTripPlanned NotificationType = "TRIP_PLANNED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService delivers user notifications. The scheduled reminder
// flow that consumes TripRecord.Active lives in a separate system; this
// service only announces freshly planned trips.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyTripPlanned notifies the user that their trip record was stored.
func (s *NotificationService) NotifyTripPlanned(ctx context.Context, record *domain.TripRecord) error {
	if record.UserID == "" {
		return nil // No one to notify
	}

	notification := Notification{
		Type:        NotificationTripPlanned,
		RecipientID: record.UserID,
		Title:       "Trip Planned",
		Message:     fmt.Sprintf("Your trip from %s to %s is saved with %d points of interest", record.From, record.To, len(record.POIs)),
		Data: map[string]interface{}{
			"trip_id":   record.ID,
			"poi_count": len(record.POIs),
			"active":    record.Active,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	logrus.WithFields(logrus.Fields{
		"type":      notification.Type,
		"recipient": notification.RecipientID,
		"title":     notification.Title,
	}).Info(notification.Message)
	return nil
}
