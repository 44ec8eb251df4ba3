package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tourguard/tourguard-backend/internal/config"
	"github.com/tourguard/tourguard-backend/internal/es"
	"github.com/tourguard/tourguard-backend/internal/events"
	"github.com/tourguard/tourguard-backend/internal/handlers"
	"github.com/tourguard/tourguard-backend/internal/logging"
	authmw "github.com/tourguard/tourguard-backend/internal/middleware/auth"
	loggingmw "github.com/tourguard/tourguard-backend/internal/middleware/logging"
	"github.com/tourguard/tourguard-backend/internal/repo"
	httpserver "github.com/tourguard/tourguard-backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	store := &repo.GormRepo{DB: db}

	var producer *events.Producer
	if len(configuration.KAFKA_ADDRESS) > 0 {
		producer = events.NewProducer(configuration.KAFKA_ADDRESS)
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	searchHandler := &handlers.SearchHandler{}
	seedHandler := &handlers.SeedHandler{Repo: store, Index: configuration.ES_INDEX}
	if configuration.ES_URL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = handlers.NewSearchHandler(client, configuration.ES_INDEX)
		seedHandler.ES = client
	} else {
		logger.Warn("ES_URL not set, tourist search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     configuration.CORS_ORIGINS,
		AllowCredentials: true,
	}))
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{
			Repo:      store,
			JWTSecret: jwtSecret,
			TokenTTL:  configuration.TOKEN_TTL,
			Producer:  producer,
		},
		TouristHandler:   &handlers.TouristHandler{Repo: store},
		IncidentHandler:  &handlers.IncidentHandler{Repo: store, Producer: producer},
		DashboardHandler: &handlers.DashboardHandler{Repo: store},
		SearchHandler:    searchHandler,
		SeedHandler:      seedHandler,
		Resolver:         authmw.NewResolver(store, jwtSecret),
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
