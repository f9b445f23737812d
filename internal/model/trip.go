package model

import "time"

// Trip status values.  A trip is created as DRAFT, activated by its
// organizer on creation, advanced to APPROVED when the first distributor
// request is approved, and terminated by CANCELLED or COMPLETED.
// CANCELLED is reachable from any non-terminal status.
const (
	TripStatusDraft     = "DRAFT"
	TripStatusActive    = "ACTIVE"
	TripStatusRequested = "REQUESTED"
	TripStatusApproved  = "APPROVED"
	TripStatusCancelled = "CANCELLED"
	TripStatusCompleted = "COMPLETED"
)

// TripRequest status values.  A request is terminal once approved or
// rejected.
const (
	RequestStatusRequested = "REQUESTED"
	RequestStatusApproved  = "APPROVED"
	RequestStatusRejected  = "REJECTED"
)

// Trip is a published journey with a fixed seat inventory.
//
// The approved-distributor set only grows; cancelling a trip freezes the
// set rather than clearing it, so sale eligibility is always re-derived
// from membership and never from the coarse trip status.  Insertion
// order of the set carries no meaning.
//
// Fields:
//  ID                     – opaque identifier assigned by the repository.
//  CompanyID              – organizer company.
//  Type                   – trip category (e.g. "EXCURSION", "TRANSFER").
//  Destination            – free-form destination description.
//  Departure / Arrival    – scheduled timestamps (UTC).
//  SeatsTotal             – seat inventory, strictly positive.
//  PerPersonLimit         – max tickets per buyer name, strictly positive.
//  Status                 – one of the TripStatus* constants.
//  TransportTypes         – transport legs involved (bus, ferry, ...).
//  ApprovedDistributorIDs – distributors cleared to sell seats.
type Trip struct {
	ID                     string
	CompanyID              string
	Type                   string
	Destination            string
	Departure              time.Time
	Arrival                time.Time
	SeatsTotal             int
	PerPersonLimit         int
	Status                 string
	TransportTypes         []string
	ApprovedDistributorIDs []string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsSellable reports whether ticket sales are permitted in the trip's
// current status.
func (t Trip) IsSellable() bool {
	return t.Status == TripStatusActive || t.Status == TripStatusApproved
}

// IsTerminal reports whether the trip has reached a final status.
func (t Trip) IsTerminal() bool {
	return t.Status == TripStatusCancelled || t.Status == TripStatusCompleted
}

// IsDistributorApproved reports whether the distributor is in the
// approved set.
func (t Trip) IsDistributorApproved(distributorID string) bool {
	for _, id := range t.ApprovedDistributorIDs {
		if id == distributorID {
			return true
		}
	}
	return false
}

// ApproveDistributor adds the distributor to the approved set.  Adding a
// member twice is a no-op, which makes request approval idempotent with
// respect to set membership.
func (t *Trip) ApproveDistributor(distributorID string) {
	if t.IsDistributorApproved(distributorID) {
		return
	}
	t.ApprovedDistributorIDs = append(t.ApprovedDistributorIDs, distributorID)
}

// Clone returns a deep copy so that callers holding the value cannot
// alias the slices of a stored trip.
func (t Trip) Clone() Trip {
	c := t
	c.TransportTypes = append([]string(nil), t.TransportTypes...)
	c.ApprovedDistributorIDs = append([]string(nil), t.ApprovedDistributorIDs...)
	return c
}

// TripRequest is one distributor's ask for selling rights on one trip.
// Multiple requests per trip are allowed and repeat requests are not
// de-duplicated.
type TripRequest struct {
	ID            string
	TripID        string
	DistributorID string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
