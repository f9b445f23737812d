package service

import (
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// AddTripInput carries the parameters for publishing a new trip.
type AddTripInput struct {
	CompanyID      string
	Type           string
	Destination    string
	Departure      time.Time
	Arrival        time.Time
	SeatsTotal     int
	PerPersonLimit int
	TransportTypes []string
}

// TripService owns the Trip and TripRequest state machines and the
// seat/approval invariants around them.
type TripService interface {
	// AddTrip publishes a trip for the identified organizer company.
	// Only the company's owning user may create it; the trip is
	// immediately activated, there is no separate approval step for the
	// organizer's own sales.
	AddTrip(actor *model.User, in AddTripInput) (model.Trip, error)
	// RequestTrip submits a distributor's ask for selling rights.
	// Repeat requests are not de-duplicated.
	RequestTrip(actor *model.User, distributorID, tripID string) (model.TripRequest, error)
	// DecideRequest approves or rejects a pending request.  Approval
	// adds the distributor to the trip's approved set (idempotently)
	// and, if the trip has not advanced past its initial activation,
	// moves the trip to APPROVED.  Rejection has no trip-level effect.
	DecideRequest(actor *model.User, requestID string, approve bool) (model.Trip, error)
	// CancelTrip cancels from any non-terminal handling; admins and the
	// owning company may cancel.  Sold tickets stay untouched; the
	// approved set freezes rather than clearing.
	CancelTrip(actor *model.User, tripID string) (model.Trip, error)
	GetTrip(tripID string) (model.Trip, error)
	// ListSellable returns trips currently open for sale, for public
	// browsing.
	ListSellable() []model.Trip
}

type tripService struct {
	trips        repository.TripRepository
	requests     repository.TripRequestRepository
	companies    repository.CompanyRepository
	distributors repository.DistributorRepository
	notifier     Notifier
}

// NewTripService builds the trip lifecycle engine.  notifier is
// required; pass NopNotifier to discard fan-out.
func NewTripService(
	trips repository.TripRepository,
	requests repository.TripRequestRepository,
	companies repository.CompanyRepository,
	distributors repository.DistributorRepository,
	notifier Notifier,
) TripService {
	return &tripService{
		trips:        trips,
		requests:     requests,
		companies:    companies,
		distributors: distributors,
		notifier:     notifier,
	}
}

func (s *tripService) AddTrip(actor *model.User, in AddTripInput) (model.Trip, error) {
	if err := RequireRole(actor, model.RoleCompany); err != nil {
		return model.Trip{}, err
	}
	company, err := s.companies.FindByID(in.CompanyID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "company")
	}
	if company.OwnerUserID != actor.ID {
		return model.Trip{}, accessDenied("company not owned by actor")
	}
	if in.SeatsTotal <= 0 || in.PerPersonLimit <= 0 {
		return model.Trip{}, invalid("seats total and per-person limit must be positive")
	}
	trip := model.Trip{
		CompanyID:      company.ID,
		Type:           in.Type,
		Destination:    in.Destination,
		Departure:      in.Departure,
		Arrival:        in.Arrival,
		SeatsTotal:     in.SeatsTotal,
		PerPersonLimit: in.PerPersonLimit,
		TransportTypes: in.TransportTypes,
		Status:         model.TripStatusActive,
	}
	return s.trips.Create(trip)
}

func (s *tripService) RequestTrip(actor *model.User, distributorID, tripID string) (model.TripRequest, error) {
	if err := RequireRole(actor, model.RoleDistributor); err != nil {
		return model.TripRequest{}, err
	}
	distributor, err := s.distributors.FindByID(distributorID)
	if err != nil {
		return model.TripRequest{}, lookupErr(err, "distributor")
	}
	if distributor.OwnerUserID != actor.ID {
		return model.TripRequest{}, accessDenied("distributor not owned by actor")
	}
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return model.TripRequest{}, lookupErr(err, "trip")
	}
	if trip.IsTerminal() {
		return model.TripRequest{}, invalid("cannot request %s trip", trip.Status)
	}
	req, err := s.requests.Create(model.TripRequest{
		TripID:        trip.ID,
		DistributorID: distributor.ID,
		Status:        model.RequestStatusRequested,
	})
	if err != nil {
		return model.TripRequest{}, err
	}
	if company, cerr := s.companies.FindByID(trip.CompanyID); cerr == nil {
		s.notifier.TripRequestSubmitted(req, company.OwnerUserID)
	}
	return req, nil
}

func (s *tripService) DecideRequest(actor *model.User, requestID string, approve bool) (model.Trip, error) {
	if err := RequireRole(actor, model.RoleCompany); err != nil {
		return model.Trip{}, err
	}
	req, err := s.requests.FindByID(requestID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "request")
	}
	trip, err := s.trips.FindByID(req.TripID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "trip")
	}
	company, err := s.companies.FindByID(trip.CompanyID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "company")
	}
	if company.OwnerUserID != actor.ID {
		return model.Trip{}, accessDenied("company not owned by actor")
	}
	if req.Status != model.RequestStatusRequested {
		return model.Trip{}, invalid("request already %s", req.Status)
	}
	if approve {
		req.Status = model.RequestStatusApproved
		trip.ApproveDistributor(req.DistributorID)
		// The coarse status advances opportunistically on the first
		// approval and is never re-derived afterwards; eligibility to
		// sell comes from set membership alone.
		if trip.Status == model.TripStatusActive || trip.Status == model.TripStatusRequested {
			trip.Status = model.TripStatusApproved
		}
	} else {
		req.Status = model.RequestStatusRejected
	}
	if _, err := s.requests.Save(req); err != nil {
		return model.Trip{}, err
	}
	return s.trips.Save(trip)
}

func (s *tripService) CancelTrip(actor *model.User, tripID string) (model.Trip, error) {
	if err := RequireRole(actor, model.RoleAdmin, model.RoleCompany); err != nil {
		return model.Trip{}, err
	}
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "trip")
	}
	company, err := s.companies.FindByID(trip.CompanyID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "company")
	}
	isAdmin := actor.Role == model.RoleAdmin
	isOwner := actor.Role == model.RoleCompany && company.OwnerUserID == actor.ID
	if !isAdmin && !isOwner {
		return model.Trip{}, accessDenied("not permitted to cancel")
	}
	trip.Status = model.TripStatusCancelled
	saved, err := s.trips.Save(trip)
	if err != nil {
		return model.Trip{}, err
	}
	s.notifier.TripCancelled(saved)
	return saved, nil
}

func (s *tripService) GetTrip(tripID string) (model.Trip, error) {
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return model.Trip{}, lookupErr(err, "trip")
	}
	return trip, nil
}

func (s *tripService) ListSellable() []model.Trip {
	var out []model.Trip
	for _, t := range s.trips.FindAll() {
		if t.IsSellable() {
			out = append(out, t)
		}
	}
	return out
}
