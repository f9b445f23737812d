package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatingUnset marks an entity that has never been rated.  Actual ratings
// live in the closed interval [1.0, 5.0] and are last-write-wins; no
// history of past ratings is kept.
const RatingUnset = 0.0

// Company organizes trips and decides which distributors may sell seats
// on them.  Exactly one user owns a company; the service layer assumes
// that mapping when checking ownership.
//
// Fields:
//  ID          – opaque identifier assigned by the repository.
//  OwnerUserID – the user acting on behalf of this company.
//  Name        – display name.
//  Commission  – non-negative commission percentage.
//  Rating      – last rating in [1,5], or RatingUnset.
//  Contact     – free-form contact details.
type Company struct {
	ID          string
	OwnerUserID string
	Name        string
	Commission  decimal.Decimal
	Rating      float64
	Contact     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Distributor sells seats on behalf of exactly one company, once that
// company has approved its request for a given trip.
type Distributor struct {
	ID          string
	CompanyID   string
	OwnerUserID string
	Name        string
	Commission  decimal.Decimal
	Rating      float64
	Contact     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cashier performs the actual seat sales.  A cashier belongs to exactly
// one distributor and is linked to the user account that operates it.
type Cashier struct {
	ID            string
	DistributorID string
	UserID        string
	Name          string
	Commission    decimal.Decimal
	Rating        float64
	Contact       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
