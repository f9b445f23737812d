// Package queue defines the message payloads exchanged over the broker
// and the best-effort publisher/consumer pair around them.  The broker
// is an observer of the system: losing it degrades to in-store
// notifications only and never fails a domain operation.
package queue

// NotificationQueueName is the durable queue carrying notification
// events.
const NotificationQueueName = "notification.created"

// NotificationEvent mirrors a stored notification record.  Downstream
// consumers can log, forward or aggregate without querying the store.
type NotificationEvent struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	Type           string `json:"type"`
	Payload        string `json:"payload"`
	CreatedAt      string `json:"created_at"`
}
