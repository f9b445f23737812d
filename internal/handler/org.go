package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// OrgHandler manages companies, distributors and cashiers.
type OrgHandler struct {
	Companies    service.CompanyService
	Distributors service.DistributorService
	Accounts     service.UserService
	Users        repository.UserRepository
}

func NewOrgHandler(companies service.CompanyService, distributors service.DistributorService, accounts service.UserService, users repository.UserRepository) *OrgHandler {
	return &OrgHandler{Companies: companies, Distributors: distributors, Accounts: accounts, Users: users}
}

type createCompanyReq struct {
	Name        string          `json:"name"`
	Commission  decimal.Decimal `json:"commission"`
	Contact     string          `json:"contact"`
	OwnerUserID string          `json:"owner_user_id"`
}

type createDistributorReq struct {
	CompanyID   string          `json:"company_id"`
	OwnerUserID string          `json:"owner_user_id"`
	Name        string          `json:"name"`
	Commission  decimal.Decimal `json:"commission"`
	Contact     string          `json:"contact"`
}

type createCashierReq struct {
	DistributorID string          `json:"distributor_id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Commission    decimal.Decimal `json:"commission"`
	Contact       string          `json:"contact"`
}

// patchReq carries optional profile fields; nil pointers leave the
// field untouched.
type patchReq struct {
	Name       *string          `json:"name"`
	Commission *decimal.Decimal `json:"commission"`
	Contact    *string          `json:"contact"`
}

func (h *OrgHandler) CreateCompany(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req createCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	company, err := h.Companies.CreateCompany(actor, req.Name, req.Commission, req.Contact, req.OwnerUserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *OrgHandler) GetCompany(c echo.Context) error {
	company, err := h.Companies.GetCompany(c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *OrgHandler) UpdateCompany(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	company, err := h.Companies.UpdateCompany(actor, c.Param("id"), req.Name, req.Commission, req.Contact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *OrgHandler) CreateDistributor(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req createDistributorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	d, err := h.Distributors.CreateDistributor(actor, req.CompanyID, req.OwnerUserID, req.Name, req.Commission, req.Contact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *OrgHandler) GetDistributor(c echo.Context) error {
	d, err := h.Distributors.GetDistributor(c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *OrgHandler) UpdateDistributor(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	d, err := h.Distributors.UpdateDistributor(actor, c.Param("id"), req.Name, req.Commission, req.Contact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *OrgHandler) CreateCashier(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req createCashierReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cashier, err := h.Distributors.CreateCashier(actor, req.DistributorID, req.UserID, req.Name, req.Commission, req.Contact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, cashier)
}

func (h *OrgHandler) GetCashier(c echo.Context) error {
	cashier, err := h.Distributors.GetCashier(c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cashier)
}

func (h *OrgHandler) UpdateCashier(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cashier, err := h.Distributors.UpdateCashier(actor, c.Param("id"), req.Name, req.Commission, req.Contact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cashier)
}

// DeactivateUser disables an account (admin only).
func (h *OrgHandler) DeactivateUser(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	u, err := h.Accounts.Deactivate(actor, c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, userPart{
		ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role,
	})
}
