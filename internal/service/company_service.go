package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// CompanyService manages organizer companies.
type CompanyService interface {
	// CreateCompany registers a company for an owner user (admin only).
	CreateCompany(actor *model.User, name string, commission decimal.Decimal, contact, ownerUserID string) (model.Company, error)
	GetCompany(companyID string) (model.Company, error)
	// UpdateCompany patches profile fields.  Nil pointers skip the
	// field; admins and the owning company may update.
	UpdateCompany(actor *model.User, companyID string, name *string, commission *decimal.Decimal, contact *string) (model.Company, error)
}

type companyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) CreateCompany(actor *model.User, name string, commission decimal.Decimal, contact, ownerUserID string) (model.Company, error) {
	if err := RequireRole(actor, model.RoleAdmin); err != nil {
		return model.Company{}, err
	}
	if commission.IsNegative() {
		return model.Company{}, invalid("commission cannot be negative")
	}
	return s.companies.Create(model.Company{
		OwnerUserID: ownerUserID,
		Name:        name,
		Commission:  commission,
		Rating:      model.RatingUnset,
		Contact:     contact,
	})
}

func (s *companyService) GetCompany(companyID string) (model.Company, error) {
	c, err := s.companies.FindByID(companyID)
	if err != nil {
		return model.Company{}, lookupErr(err, "company")
	}
	return c, nil
}

func (s *companyService) UpdateCompany(actor *model.User, companyID string, name *string, commission *decimal.Decimal, contact *string) (model.Company, error) {
	if err := RequireRole(actor, model.RoleAdmin, model.RoleCompany); err != nil {
		return model.Company{}, err
	}
	company, err := s.companies.FindByID(companyID)
	if err != nil {
		return model.Company{}, lookupErr(err, "company")
	}
	if actor.Role == model.RoleCompany && company.OwnerUserID != actor.ID {
		return model.Company{}, accessDenied("company not owned by actor")
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		company.Name = strings.TrimSpace(*name)
	}
	if commission != nil {
		if commission.IsNegative() {
			return model.Company{}, invalid("commission cannot be negative")
		}
		company.Commission = *commission
	}
	if contact != nil && strings.TrimSpace(*contact) != "" {
		company.Contact = strings.TrimSpace(*contact)
	}
	return s.companies.Save(company)
}
