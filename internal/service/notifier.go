package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/queue"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// Notifier receives accepted state transitions and fans them out into
// addressed notification records.  It evaluates no business rules; the
// engines decide, the notifier only addresses and records.  Engines
// take a Notifier at construction time; callers that do not care pass
// NopNotifier instead of nil.
type Notifier interface {
	// TripRequestSubmitted notifies the organizer company's owner that
	// a distributor asked for selling rights.
	TripRequestSubmitted(req model.TripRequest, companyOwnerUserID string)
	// TripCancelled notifies every approved distributor's owner and
	// every cashier under each such distributor.
	TripCancelled(trip model.Trip)
	// TicketsSoldSummary notifies the organizer company's owner with a
	// sold-count summary recomputed from the ticket store.
	TicketsSoldSummary(trip model.Trip, companyOwnerUserID string)
	// SweepUpcoming scans for trips departing within the horizon that
	// still have unsold seats and notifies the organizer company and
	// every approved distributor.  Pull-based: callers invoke it
	// explicitly, there is no background timer.  Returns the number of
	// trips flagged.
	SweepUpcoming(horizon time.Duration) int
}

// NopNotifier is the explicit do-nothing Notifier.
type NopNotifier struct{}

func (NopNotifier) TripRequestSubmitted(model.TripRequest, string)  {}
func (NopNotifier) TripCancelled(model.Trip)                        {}
func (NopNotifier) TicketsSoldSummary(model.Trip, string)           {}
func (NopNotifier) SweepUpcoming(time.Duration) int                 { return 0 }

// Coordinator is the production Notifier.  Every record it creates is
// also published as a best-effort event to the message queue; publish
// failures are logged and never surface to the triggering operation.
type Coordinator struct {
	notifications repository.NotificationRepository
	distributors  repository.DistributorRepository
	cashiers      repository.CashierRepository
	tickets       repository.TicketRepository
	companies     repository.CompanyRepository
	trips         repository.TripRepository
	publisher     queue.Publisher
}

// NewCoordinator wires the coordinator to the stores it fans out over.
func NewCoordinator(
	notifications repository.NotificationRepository,
	distributors repository.DistributorRepository,
	cashiers repository.CashierRepository,
	tickets repository.TicketRepository,
	companies repository.CompanyRepository,
	trips repository.TripRepository,
	publisher queue.Publisher,
) *Coordinator {
	return &Coordinator{
		notifications: notifications,
		distributors:  distributors,
		cashiers:      cashiers,
		tickets:       tickets,
		companies:     companies,
		trips:         trips,
		publisher:     publisher,
	}
}

// record persists one notification and mirrors it onto the queue.
func (c *Coordinator) record(userID, kind, payload string) {
	n, err := c.notifications.Create(model.Notification{
		UserID:  userID,
		Type:    kind,
		Payload: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("notifier: store record failed")
		return
	}
	ev := queue.NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           n.Type,
		Payload:        n.Payload,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339),
	}
	if err := c.publisher.PublishNotificationCreated(context.Background(), ev); err != nil {
		log.Warn().Err(err).Str("notification_id", n.ID).Msg("notifier: event publish failed")
	}
}

func (c *Coordinator) TripRequestSubmitted(req model.TripRequest, companyOwnerUserID string) {
	c.record(companyOwnerUserID, model.NotificationTripRequested,
		fmt.Sprintf("Trip request submitted by distributor %s", req.DistributorID))
}

func (c *Coordinator) TripCancelled(trip model.Trip) {
	msg := fmt.Sprintf("Trip %s cancelled", trip.ID)
	for _, distributorID := range trip.ApprovedDistributorIDs {
		d, err := c.distributors.FindByID(distributorID)
		if err != nil {
			continue
		}
		c.record(d.OwnerUserID, model.NotificationTripCancelled, msg)
		for _, cashier := range c.cashiers.FindByDistributorID(d.ID) {
			c.record(cashier.UserID, model.NotificationTripCancelled, msg)
		}
	}
}

func (c *Coordinator) TicketsSoldSummary(trip model.Trip, companyOwnerUserID string) {
	// Recomputed fresh on every sale rather than cached, so the summary
	// cannot drift from the ticket store.
	sold := len(c.tickets.FindByTripID(trip.ID))
	c.record(companyOwnerUserID, model.NotificationTicketsSoldSummary,
		fmt.Sprintf("Trip %s sold %d of %d seats", trip.ID, sold, trip.SeatsTotal))
}

func (c *Coordinator) SweepUpcoming(horizon time.Duration) int {
	now := time.Now().UTC()
	upcoming := c.trips.FindDepartingWithin(now, now.Add(horizon),
		model.TripStatusActive, model.TripStatusApproved)
	flagged := 0
	for _, trip := range upcoming {
		sold := len(c.tickets.FindByTripID(trip.ID))
		if sold >= trip.SeatsTotal {
			continue
		}
		flagged++
		msg := fmt.Sprintf("Trip %s departing soon has %d unsold seats", trip.ID, trip.SeatsTotal-sold)
		if company, err := c.companies.FindByID(trip.CompanyID); err == nil {
			c.record(company.OwnerUserID, model.NotificationUpcomingTripUnsold, msg)
		}
		for _, distributorID := range trip.ApprovedDistributorIDs {
			if d, err := c.distributors.FindByID(distributorID); err == nil {
				c.record(d.OwnerUserID, model.NotificationUpcomingTripUnsold, msg)
			}
		}
	}
	return flagged
}
