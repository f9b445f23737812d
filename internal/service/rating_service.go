package service

import (
	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// Rating bounds.  Values outside the closed interval fail validation.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// RatingService decides whether an actor may rate a target and applies
// the rating.  Ratings are scalar last-write-wins fields; no history is
// kept.  Admins rate unconditionally; everyone else must prove a
// qualifying relationship.
type RatingService interface {
	RateCompany(actor *model.User, companyID string, rating float64) (model.Company, error)
	RateDistributor(actor *model.User, distributorID string, rating float64) (model.Distributor, error)
	RateCashier(actor *model.User, cashierID string, rating float64) (model.Cashier, error)
}

type targetKind string

const (
	targetCompany     targetKind = "company"
	targetDistributor targetKind = "distributor"
	targetCashier     targetKind = "cashier"
)

type policyKey struct {
	role   string
	target targetKind
}

// eligibility proves the qualifying relationship between the actor and
// the rating target.  A nil return means the actor may rate.
type eligibility func(actor *model.User, targetID string) error

type ratingService struct {
	companies    repository.CompanyRepository
	distributors repository.DistributorRepository
	cashiers     repository.CashierRepository
	trips        repository.TripRepository
	requests     repository.TripRequestRepository

	// policy is the authorization matrix (actor role, target kind) →
	// eligibility predicate.  Pairs absent from the table are denied.
	policy map[policyKey]eligibility
}

// NewRatingService builds the rating eligibility engine and its policy
// table.
func NewRatingService(
	companies repository.CompanyRepository,
	distributors repository.DistributorRepository,
	cashiers repository.CashierRepository,
	trips repository.TripRepository,
	requests repository.TripRequestRepository,
) RatingService {
	s := &ratingService{
		companies:    companies,
		distributors: distributors,
		cashiers:     cashiers,
		trips:        trips,
		requests:     requests,
	}
	always := func(*model.User, string) error { return nil }
	s.policy = map[policyKey]eligibility{
		{model.RoleAdmin, targetCompany}:           always,
		{model.RoleAdmin, targetDistributor}:       always,
		{model.RoleAdmin, targetCashier}:           always,
		{model.RoleDistributor, targetCompany}:     s.distributorWorkedWithCompany,
		{model.RoleCompany, targetDistributor}:     s.companyApprovedDistributor,
		{model.RoleDistributor, targetCashier}:     s.distributorOwnsCashier,
	}
	return s
}

func validateRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return invalid("rating must be between %.1f and %.1f", MinRating, MaxRating)
	}
	return nil
}

// checkEligible runs the policy table for the (actor, target) pair.
func (s *ratingService) checkEligible(actor *model.User, target targetKind, targetID string) error {
	if actor == nil {
		return accessDenied("missing actor")
	}
	pred, ok := s.policy[policyKey{actor.Role, target}]
	if !ok {
		return accessDenied("role %s may not rate %s", actor.Role, target)
	}
	return pred(actor, targetID)
}

// distributorWorkedWithCompany requires at least one trip organized by
// the company with the actor's distributor in its approved set.
func (s *ratingService) distributorWorkedWithCompany(actor *model.User, companyID string) error {
	distributor, err := s.distributors.FindByOwnerUserID(actor.ID)
	if err != nil {
		return lookupErr(err, "distributor for user")
	}
	for _, trip := range s.trips.FindAll() {
		if trip.CompanyID == companyID && trip.IsDistributorApproved(distributor.ID) {
			return nil
		}
	}
	return accessDenied("can only rate companies with approved trips")
}

// companyApprovedDistributor requires at least one approved request
// from the distributor on a trip the actor's company organizes.
func (s *ratingService) companyApprovedDistributor(actor *model.User, distributorID string) error {
	company, err := s.companies.FindByOwnerUserID(actor.ID)
	if err != nil {
		return lookupErr(err, "company for user")
	}
	for _, req := range s.requests.FindAll() {
		if req.DistributorID != distributorID || req.Status != model.RequestStatusApproved {
			continue
		}
		if trip, terr := s.trips.FindByID(req.TripID); terr == nil && trip.CompanyID == company.ID {
			return nil
		}
	}
	return accessDenied("can only rate distributors whose requests you approved")
}

// distributorOwnsCashier is an ownership check, not a transaction
// check: the actor must own the distributor the cashier belongs to.
func (s *ratingService) distributorOwnsCashier(actor *model.User, cashierID string) error {
	cashier, err := s.cashiers.FindByID(cashierID)
	if err != nil {
		return lookupErr(err, "cashier")
	}
	distributor, err := s.distributors.FindByID(cashier.DistributorID)
	if err != nil {
		return lookupErr(err, "distributor")
	}
	if distributor.OwnerUserID != actor.ID {
		return accessDenied("can only rate your own cashiers")
	}
	return nil
}

func (s *ratingService) RateCompany(actor *model.User, companyID string, rating float64) (model.Company, error) {
	if err := RequireRole(actor, model.RoleDistributor, model.RoleAdmin); err != nil {
		return model.Company{}, err
	}
	company, err := s.companies.FindByID(companyID)
	if err != nil {
		return model.Company{}, lookupErr(err, "company")
	}
	if err := validateRating(rating); err != nil {
		return model.Company{}, err
	}
	if err := s.checkEligible(actor, targetCompany, companyID); err != nil {
		return model.Company{}, err
	}
	company.Rating = rating
	return s.companies.Save(company)
}

func (s *ratingService) RateDistributor(actor *model.User, distributorID string, rating float64) (model.Distributor, error) {
	if err := RequireRole(actor, model.RoleCompany, model.RoleAdmin); err != nil {
		return model.Distributor{}, err
	}
	distributor, err := s.distributors.FindByID(distributorID)
	if err != nil {
		return model.Distributor{}, lookupErr(err, "distributor")
	}
	if err := validateRating(rating); err != nil {
		return model.Distributor{}, err
	}
	if err := s.checkEligible(actor, targetDistributor, distributorID); err != nil {
		return model.Distributor{}, err
	}
	distributor.Rating = rating
	return s.distributors.Save(distributor)
}

func (s *ratingService) RateCashier(actor *model.User, cashierID string, rating float64) (model.Cashier, error) {
	if err := RequireRole(actor, model.RoleDistributor, model.RoleAdmin); err != nil {
		return model.Cashier{}, err
	}
	cashier, err := s.cashiers.FindByID(cashierID)
	if err != nil {
		return model.Cashier{}, lookupErr(err, "cashier")
	}
	if err := validateRating(rating); err != nil {
		return model.Cashier{}, err
	}
	if err := s.checkEligible(actor, targetCashier, cashierID); err != nil {
		return model.Cashier{}, err
	}
	cashier.Rating = rating
	return s.cashiers.Save(cashier)
}
