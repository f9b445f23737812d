package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/transport-ticketing/internal/config"
	"github.com/iliyamo/transport-ticketing/internal/handler"
	"github.com/iliyamo/transport-ticketing/internal/middleware"
	"github.com/iliyamo/transport-ticketing/internal/queue"
	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/router"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

func main() {
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.Env != "prod" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// In-memory stores; state lives for the process lifetime.
	gen := repository.UUIDGenerator{}
	users := repository.NewUserRepository(gen)
	tokens := repository.NewRefreshTokenRepository(gen)
	companies := repository.NewCompanyRepository(gen)
	distributors := repository.NewDistributorRepository(gen)
	cashiers := repository.NewCashierRepository(gen)
	trips := repository.NewTripRepository(gen)
	requests := repository.NewTripRequestRepository(gen)
	tickets := repository.NewTicketRepository(gen)
	notifications := repository.NewNotificationRepository(gen)

	publisher := queue.NewAMQPPublisher()
	notifier := service.NewCoordinator(notifications, distributors, cashiers, tickets, companies, trips, publisher)
	go queue.StartNotificationConsumer()

	userSvc := service.NewUserService(users)
	companySvc := service.NewCompanyService(companies)
	distributorSvc := service.NewDistributorService(distributors, cashiers, companies)
	tripSvc := service.NewTripService(trips, requests, companies, distributors, notifier)
	ticketSvc := service.NewTicketService(tickets, trips, cashiers, distributors, companies, notifier)
	ratingSvc := service.NewRatingService(companies, distributors, cashiers, trips, requests)
	notificationSvc := service.NewNotificationService(notifications)
	reportSvc := service.NewReportService(companies, distributors, cashiers, trips, tickets)

	e := echo.New()
	e.HideBanner = true

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting and response caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	authMW := middleware.JWTAuth(cfg.JWTSecret)

	tripHandler := handler.NewTripHandler(tripSvc, users)
	router.RegisterRoutes(e, tripHandler, cacheMW)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userSvc, users, tokens), authMW)
	router.RegisterAPI(e, router.API{
		Trips:         tripHandler,
		Tickets:       handler.NewTicketHandler(ticketSvc, users),
		Ratings:       handler.NewRatingHandler(ratingSvc, users),
		Org:           handler.NewOrgHandler(companySvc, distributorSvc, userSvc, users),
		Reports:       handler.NewReportHandler(reportSvc, users),
		Notifications: handler.NewNotificationHandler(notificationSvc, notifier, users),
	}, authMW)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
