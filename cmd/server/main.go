package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
	"github.com/iliyamo/bus-booking-gateway/internal/booking"
	"github.com/iliyamo/bus-booking-gateway/internal/config"
	"github.com/iliyamo/bus-booking-gateway/internal/database"
	"github.com/iliyamo/bus-booking-gateway/internal/handler"
	"github.com/iliyamo/bus-booking-gateway/internal/middleware"
	"github.com/iliyamo/bus-booking-gateway/internal/queue"
	"github.com/iliyamo/bus-booking-gateway/internal/repository"
	"github.com/iliyamo/bus-booking-gateway/internal/router"
	queuepublisher "github.com/iliyamo/bus-booking-gateway/internal/service"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	api := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	submitter := &booking.Submitter{
		API:           api,
		PaymentMethod: cfg.PaymentMethod,
		GatewayTag:    cfg.PaymentGatewayTag,
		PublishEvent:  queuepublisher.PublishTicketIssued,
	}

	auth := handler.NewAuthHandler(cfg, users, tokens)
	trips := handler.NewTripHandler(api)
	buses := handler.NewBusHandler(api)
	bookings := handler.NewBookingHandler(api, submitter)
	history := handler.NewHistoryHandler(api)
	admin := handler.NewAdminHandler(api)

	e := echo.New()
	e.HideBanner = true

	// Global token-bucket rate limit; the response cache applies only
	// to the public browsing group.
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled && rdb != nil {
		e.Use(middleware.NewTokenBucket(rlCfg, rdb))
	}
	var cache echo.MiddlewareFunc
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled && rdb != nil {
		cache = middleware.NewRedisCache(cacheCfg, rdb)
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterPublic(e, trips, buses, cache)
	router.RegisterCustomer(e, bookings, history, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	// Ticket consumer writes issued-ticket events to the local ledger.
	// It reconnects on its own; a missing broker only disables events.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendBaseURL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
