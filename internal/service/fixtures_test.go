package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/queue"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// env wires the full engine stack over fresh in-memory stores with
// deterministic ids.  The coordinator runs with a discarding publisher
// so notification records land in the store without a broker.
type env struct {
	users         repository.UserRepository
	companies     repository.CompanyRepository
	distributors  repository.DistributorRepository
	cashiers      repository.CashierRepository
	trips         repository.TripRepository
	requests      repository.TripRequestRepository
	tickets       repository.TicketRepository
	notifications repository.NotificationRepository

	notifier      *Coordinator
	userSvc       UserService
	companySvc    CompanyService
	orgSvc        DistributorService
	tripSvc       TripService
	ticketSvc     TicketService
	ratingSvc     RatingService
	inboxSvc      NotificationService
	reportSvc     ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gen := repository.NewSequenceGenerator()
	e := &env{
		users:         repository.NewUserRepository(gen),
		companies:     repository.NewCompanyRepository(gen),
		distributors:  repository.NewDistributorRepository(gen),
		cashiers:      repository.NewCashierRepository(gen),
		trips:         repository.NewTripRepository(gen),
		requests:      repository.NewTripRequestRepository(gen),
		tickets:       repository.NewTicketRepository(gen),
		notifications: repository.NewNotificationRepository(gen),
	}
	e.notifier = NewCoordinator(e.notifications, e.distributors, e.cashiers, e.tickets, e.companies, e.trips, queue.NopPublisher{})
	e.userSvc = NewUserService(e.users)
	e.companySvc = NewCompanyService(e.companies)
	e.orgSvc = NewDistributorService(e.distributors, e.cashiers, e.companies)
	e.tripSvc = NewTripService(e.trips, e.requests, e.companies, e.distributors, e.notifier)
	e.ticketSvc = NewTicketService(e.tickets, e.trips, e.cashiers, e.distributors, e.companies, e.notifier)
	e.ratingSvc = NewRatingService(e.companies, e.distributors, e.cashiers, e.trips, e.requests)
	e.inboxSvc = NewNotificationService(e.notifications)
	e.reportSvc = NewReportService(e.companies, e.distributors, e.cashiers, e.trips, e.tickets)
	return e
}

var emailSeq atomic.Uint64

func (e *env) user(t *testing.T, role string) *model.User {
	t.Helper()
	u, err := e.users.Create(model.User{
		Email:    fmt.Sprintf("%s-%d@example.com", role, emailSeq.Add(1)),
		Role:     role,
		IsActive: true,
	})
	require.NoError(t, err)
	return &u
}

func (e *env) admin(t *testing.T) *model.User { return e.user(t, model.RoleAdmin) }

// companyPair creates a company owner user and their company.
func (e *env) companyPair(t *testing.T) (*model.User, model.Company) {
	t.Helper()
	owner := e.user(t, model.RoleCompany)
	c, err := e.companies.Create(model.Company{
		OwnerUserID: owner.ID,
		Name:        "Aegean Tours",
		Commission:  decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return owner, c
}

// distributorPair creates a distributor owner user and their
// distributor under the given company.
func (e *env) distributorPair(t *testing.T, companyID string) (*model.User, model.Distributor) {
	t.Helper()
	owner := e.user(t, model.RoleDistributor)
	d, err := e.distributors.Create(model.Distributor{
		CompanyID:   companyID,
		OwnerUserID: owner.ID,
		Name:        "Island Desk",
		Commission:  decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	return owner, d
}

// cashierPair creates a cashier user and their cashier record under the
// given distributor.
func (e *env) cashierPair(t *testing.T, distributorID string) (*model.User, model.Cashier) {
	t.Helper()
	u := e.user(t, model.RoleCashier)
	c, err := e.cashiers.Create(model.Cashier{
		DistributorID: distributorID,
		UserID:        u.ID,
		Name:          "Front Desk",
		Commission:    decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	return u, c
}

// publishTrip adds a trip through the engine as the owning company.
func (e *env) publishTrip(t *testing.T, owner *model.User, companyID string, seats, limit int) model.Trip {
	t.Helper()
	trip, err := e.tripSvc.AddTrip(owner, AddTripInput{
		CompanyID:      companyID,
		Type:           "EXCURSION",
		Destination:    "Santorini",
		Departure:      time.Now().UTC().Add(12 * time.Hour),
		Arrival:        time.Now().UTC().Add(20 * time.Hour),
		SeatsTotal:     seats,
		PerPersonLimit: limit,
		TransportTypes: []string{"bus", "ferry"},
	})
	require.NoError(t, err)
	return trip
}

// approveDistributor runs the request/decision flow end to end and
// returns the refreshed trip.
func (e *env) approveDistributor(t *testing.T, companyOwner, distOwner *model.User, distributorID, tripID string) model.Trip {
	t.Helper()
	req, err := e.tripSvc.RequestTrip(distOwner, distributorID, tripID)
	require.NoError(t, err)
	trip, err := e.tripSvc.DecideRequest(companyOwner, req.ID, true)
	require.NoError(t, err)
	return trip
}
