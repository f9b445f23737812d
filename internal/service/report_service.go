package service

import (
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// ReportService produces role-scoped listings.  Reports are read-only
// and never mutate state; visibility rules differ per report.
type ReportService interface {
	// CompaniesWithAvailableTrips lists companies organizing sellable
	// trips departing inside the window (distributor only).
	CompaniesWithAvailableTrips(actor *model.User, from, to *time.Time) ([]model.Company, error)
	// Distributors lists all distributors for admins and a company's
	// own distributors for companies.
	Distributors(actor *model.User) ([]model.Distributor, error)
	// Cashiers lists all cashiers for admins and a distributor's
	// cashiers for distributors.
	Cashiers(actor *model.User, distributorID string) ([]model.Cashier, error)
	// Tickets lists a trip's tickets sold inside the window.  Company
	// actors must own the trip; other roles see all of them.
	Tickets(actor *model.User, tripID string, from, to *time.Time) ([]model.Ticket, error)
	// Trips lists trips departing inside the window, filtered by
	// per-role visibility.
	Trips(actor *model.User, from, to *time.Time) ([]model.Trip, error)
}

type reportService struct {
	companies    repository.CompanyRepository
	distributors repository.DistributorRepository
	cashiers     repository.CashierRepository
	trips        repository.TripRepository
	tickets      repository.TicketRepository
}

func NewReportService(
	companies repository.CompanyRepository,
	distributors repository.DistributorRepository,
	cashiers repository.CashierRepository,
	trips repository.TripRepository,
	tickets repository.TicketRepository,
) ReportService {
	return &reportService{
		companies:    companies,
		distributors: distributors,
		cashiers:     cashiers,
		trips:        trips,
		tickets:      tickets,
	}
}

func within(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (s *reportService) CompaniesWithAvailableTrips(actor *model.User, from, to *time.Time) ([]model.Company, error) {
	if err := RequireRole(actor, model.RoleDistributor); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	out := make([]model.Company, 0)
	for _, trip := range s.trips.FindAll() {
		if !trip.IsSellable() || !within(trip.Departure, from, to) {
			continue
		}
		if seen[trip.CompanyID] {
			continue
		}
		if company, err := s.companies.FindByID(trip.CompanyID); err == nil {
			seen[trip.CompanyID] = true
			out = append(out, company)
		}
	}
	return out, nil
}

func (s *reportService) Distributors(actor *model.User) ([]model.Distributor, error) {
	if actor == nil {
		return nil, accessDenied("missing actor")
	}
	switch actor.Role {
	case model.RoleAdmin:
		return s.distributors.FindAll(), nil
	case model.RoleCompany:
		company, err := s.companies.FindByOwnerUserID(actor.ID)
		if err != nil {
			return []model.Distributor{}, nil
		}
		return s.distributors.FindByCompanyID(company.ID), nil
	default:
		return nil, accessDenied("not permitted")
	}
}

func (s *reportService) Cashiers(actor *model.User, distributorID string) ([]model.Cashier, error) {
	if actor == nil {
		return nil, accessDenied("missing actor")
	}
	switch actor.Role {
	case model.RoleAdmin:
		return s.cashiers.FindAll(), nil
	case model.RoleDistributor:
		return s.cashiers.FindByDistributorID(distributorID), nil
	default:
		return nil, accessDenied("not permitted")
	}
}

func (s *reportService) Tickets(actor *model.User, tripID string, from, to *time.Time) ([]model.Ticket, error) {
	if actor == nil {
		return nil, accessDenied("missing actor")
	}
	scoped := make([]model.Ticket, 0)
	for _, t := range s.tickets.FindByTripID(tripID) {
		if within(t.SoldAt, from, to) {
			scoped = append(scoped, t)
		}
	}
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return scoped, nil
	}
	switch actor.Role {
	case model.RoleCompany:
		company, cerr := s.companies.FindByID(trip.CompanyID)
		if cerr == nil && company.OwnerUserID == actor.ID {
			return scoped, nil
		}
		return nil, accessDenied("not permitted")
	case model.RoleDistributor, model.RoleCashier, model.RoleAdmin:
		return scoped, nil
	default:
		return nil, accessDenied("not permitted")
	}
}

func (s *reportService) Trips(actor *model.User, from, to *time.Time) ([]model.Trip, error) {
	if actor == nil {
		return nil, accessDenied("missing actor")
	}
	out := make([]model.Trip, 0)
	for _, trip := range s.trips.FindAll() {
		if !within(trip.Departure, from, to) {
			continue
		}
		if s.tripVisible(actor, trip) {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (s *reportService) tripVisible(actor *model.User, trip model.Trip) bool {
	switch actor.Role {
	case model.RoleAdmin, model.RoleDistributor, model.RoleCashier:
		return true
	case model.RoleCompany:
		company, err := s.companies.FindByID(trip.CompanyID)
		return err == nil && company.OwnerUserID == actor.ID
	default:
		return false
	}
}
