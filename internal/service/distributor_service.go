package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// DistributorService manages distributors and their cashiers.
type DistributorService interface {
	// CreateDistributor registers a distributor under a company (admin
	// only).
	CreateDistributor(actor *model.User, companyID, ownerUserID, name string, commission decimal.Decimal, contact string) (model.Distributor, error)
	// CreateCashier registers a cashier under the actor's own
	// distributor.
	CreateCashier(actor *model.User, distributorID, cashierUserID, name string, commission decimal.Decimal, contact string) (model.Cashier, error)
	GetDistributor(id string) (model.Distributor, error)
	GetCashier(id string) (model.Cashier, error)
	// UpdateDistributor patches profile fields; the owner, the parent
	// company's owner, or an admin may update.
	UpdateDistributor(actor *model.User, distributorID string, name *string, commission *decimal.Decimal, contact *string) (model.Distributor, error)
	// UpdateCashier patches profile fields; the owning distributor or
	// an admin may update.
	UpdateCashier(actor *model.User, cashierID string, name *string, commission *decimal.Decimal, contact *string) (model.Cashier, error)
}

type distributorService struct {
	distributors repository.DistributorRepository
	cashiers     repository.CashierRepository
	companies    repository.CompanyRepository
}

func NewDistributorService(
	distributors repository.DistributorRepository,
	cashiers repository.CashierRepository,
	companies repository.CompanyRepository,
) DistributorService {
	return &distributorService{
		distributors: distributors,
		cashiers:     cashiers,
		companies:    companies,
	}
}

func (s *distributorService) CreateDistributor(actor *model.User, companyID, ownerUserID, name string, commission decimal.Decimal, contact string) (model.Distributor, error) {
	if err := RequireRole(actor, model.RoleAdmin); err != nil {
		return model.Distributor{}, err
	}
	company, err := s.companies.FindByID(companyID)
	if err != nil {
		return model.Distributor{}, lookupErr(err, "company")
	}
	if commission.IsNegative() {
		return model.Distributor{}, invalid("commission cannot be negative")
	}
	return s.distributors.Create(model.Distributor{
		CompanyID:   company.ID,
		OwnerUserID: ownerUserID,
		Name:        name,
		Commission:  commission,
		Rating:      model.RatingUnset,
		Contact:     contact,
	})
}

func (s *distributorService) CreateCashier(actor *model.User, distributorID, cashierUserID, name string, commission decimal.Decimal, contact string) (model.Cashier, error) {
	if err := RequireRole(actor, model.RoleDistributor); err != nil {
		return model.Cashier{}, err
	}
	distributor, err := s.distributors.FindByID(distributorID)
	if err != nil {
		return model.Cashier{}, lookupErr(err, "distributor")
	}
	if distributor.OwnerUserID != actor.ID {
		return model.Cashier{}, accessDenied("distributor not owned by actor")
	}
	if commission.IsNegative() {
		return model.Cashier{}, invalid("commission cannot be negative")
	}
	return s.cashiers.Create(model.Cashier{
		DistributorID: distributor.ID,
		UserID:        cashierUserID,
		Name:          name,
		Commission:    commission,
		Rating:        model.RatingUnset,
		Contact:       contact,
	})
}

func (s *distributorService) GetDistributor(id string) (model.Distributor, error) {
	d, err := s.distributors.FindByID(id)
	if err != nil {
		return model.Distributor{}, lookupErr(err, "distributor")
	}
	return d, nil
}

func (s *distributorService) GetCashier(id string) (model.Cashier, error) {
	c, err := s.cashiers.FindByID(id)
	if err != nil {
		return model.Cashier{}, lookupErr(err, "cashier")
	}
	return c, nil
}

func (s *distributorService) UpdateDistributor(actor *model.User, distributorID string, name *string, commission *decimal.Decimal, contact *string) (model.Distributor, error) {
	if err := RequireRole(actor, model.RoleAdmin, model.RoleCompany, model.RoleDistributor); err != nil {
		return model.Distributor{}, err
	}
	distributor, err := s.distributors.FindByID(distributorID)
	if err != nil {
		return model.Distributor{}, lookupErr(err, "distributor")
	}
	isOwner := distributor.OwnerUserID == actor.ID
	isAdmin := actor.Role == model.RoleAdmin
	isCompanyOwner := false
	if actor.Role == model.RoleCompany {
		if company, cerr := s.companies.FindByID(distributor.CompanyID); cerr == nil && company.OwnerUserID == actor.ID {
			isCompanyOwner = true
		}
	}
	if !isOwner && !isAdmin && !isCompanyOwner {
		return model.Distributor{}, accessDenied("not permitted to update distributor")
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		distributor.Name = strings.TrimSpace(*name)
	}
	if commission != nil {
		if commission.IsNegative() {
			return model.Distributor{}, invalid("commission cannot be negative")
		}
		distributor.Commission = *commission
	}
	if contact != nil && strings.TrimSpace(*contact) != "" {
		distributor.Contact = strings.TrimSpace(*contact)
	}
	return s.distributors.Save(distributor)
}

func (s *distributorService) UpdateCashier(actor *model.User, cashierID string, name *string, commission *decimal.Decimal, contact *string) (model.Cashier, error) {
	if err := RequireRole(actor, model.RoleAdmin, model.RoleDistributor); err != nil {
		return model.Cashier{}, err
	}
	cashier, err := s.cashiers.FindByID(cashierID)
	if err != nil {
		return model.Cashier{}, lookupErr(err, "cashier")
	}
	isAdmin := actor.Role == model.RoleAdmin
	isDistributorOwner := false
	if actor.Role == model.RoleDistributor {
		if distributor, derr := s.distributors.FindByID(cashier.DistributorID); derr == nil && distributor.OwnerUserID == actor.ID {
			isDistributorOwner = true
		}
	}
	if !isAdmin && !isDistributorOwner {
		return model.Cashier{}, accessDenied("not permitted to update cashier")
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		cashier.Name = strings.TrimSpace(*name)
	}
	if commission != nil {
		if commission.IsNegative() {
			return model.Cashier{}, invalid("commission cannot be negative")
		}
		cashier.Commission = *commission
	}
	if contact != nil && strings.TrimSpace(*contact) != "" {
		cashier.Contact = strings.TrimSpace(*contact)
	}
	return s.cashiers.Save(cashier)
}
