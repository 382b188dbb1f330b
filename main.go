package main

import (
	"context"
	"crypto/tls"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mailguard-live/mailguard-backend/config"
	"github.com/mailguard-live/mailguard-backend/db"
	"github.com/mailguard-live/mailguard-backend/handlers"
	"github.com/mailguard-live/mailguard-backend/internal/store"
	"github.com/mailguard-live/mailguard-backend/internal/store/memory"
	"github.com/mailguard-live/mailguard-backend/internal/store/postgres"
	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/mailguard-live/mailguard-backend/router"
	"github.com/mailguard-live/mailguard-backend/services"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Select the message store: Postgres when configured, in-memory otherwise
	// (e.g. demo deployments with no database).
	var messageStore store.MessageStore
	if cfg.Database.Configured() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL())
		if err != nil {
			log.Fatalf("Failed to parse database config: %v", err)
		}
		if cfg.IsProduction() {
			poolConfig.ConnConfig.TLSConfig = &tls.Config{
				ServerName: cfg.Database.Host,
				MinVersion: tls.VersionTLS12,
			}
		}

		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := db.RunMigrations(cfg.Database.URL()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		messageStore = postgres.NewMessageStore(pool)
	} else {
		log.Infow("No database configured, using in-memory message store")
		messageStore = memory.NewMessageStore()
	}

	// Email relay: a no-op unless MAIL_HOST is set.
	emailService := services.NewEmailService(&cfg.Mail)
	if cfg.Mail.Enabled() {
		log.Infow("Feedback email relay configured",
			"host", cfg.Mail.Host,
			"port", cfg.Mail.Port,
			"to", cfg.Mail.To)
	} else {
		log.Infow("MAIL_HOST not set, feedback email relay disabled")
	}

	// Handlers and router
	messageHandler := handlers.NewMessageHandler(messageStore, emailService)
	healthHandler := handlers.NewHealthHandler(messageStore)

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		MessageHandler: messageHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
