package model

import "time"

// Notification types emitted by the coordinator.
const (
	NotificationTripRequested      = "TRIP_REQUESTED"
	NotificationTripCancelled      = "TRIP_CANCELLED"
	NotificationTicketsSoldSummary = "TICKETS_SOLD_SUMMARY"
	NotificationUpcomingTripUnsold = "UPCOMING_TRIP_UNSOLD"
)

// Notification is an addressed record produced by the notification
// coordinator when a state transition is accepted.  Engines never read
// notifications back; data flows one way.  ReadAt is set at most once.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Payload   string
	CreatedAt time.Time
	ReadAt    *time.Time
}
