package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/permitwatch/lead-portal/internal/auth"
	"github.com/permitwatch/lead-portal/internal/config"
	"github.com/permitwatch/lead-portal/internal/infra/database"
	"github.com/permitwatch/lead-portal/internal/infra/http/handlers"
	"github.com/permitwatch/lead-portal/internal/infra/mail"
	"github.com/permitwatch/lead-portal/internal/infra/queue"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("[DB] DATABASE_URL is not set. Refusing to start.")
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[DB] connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("[DB] %v", err)
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	lookupRepo := database.NewLookupRepository(db)
	savedRepo := database.NewSavedLeadRepository(db)
	prospectionRepo := database.NewProspectionLeadRepository(db)
	contactRepo := database.NewContactRepository(db)
	notificationRepo := database.NewNotificationRepository(db)
	userRepo := database.NewAdminUserRepository(db)

	// Auth
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(userRepo, tokens)
	if err := authService.SeedAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("[AUTH] seed admin: %v", err)
	}

	// Optional SMTP delivery
	var mailer handlers.MailSender
	if cfg.MailHost != "" {
		mailer = mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
		log.Printf("[MAIL] SMTP delivery enabled via %s:%d", cfg.MailHost, cfg.MailPort)
	}

	// Optional queued delivery; needs both a broker and an SMTP backend for
	// the worker.
	deps := handlers.Deps{
		Auth:          authService,
		Leads:         leadRepo,
		Lookups:       lookupRepo,
		SavedLeads:    savedRepo,
		Prospections:  prospectionRepo,
		Contacts:      contactRepo,
		Notifications: notificationRepo,
		Mailer:        mailer,
		DB:            db,
		MailHost:      cfg.MailHost,
	}

	if cfg.AMQPURL != "" && mailer != nil {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("[QUEUE] %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		deps.Producer = queue.NewProducer(rabbitMQ.Ch)
		deps.RabbitMQ = rabbitMQ.Conn

		worker := queue.NewWorker(rabbitMQ.Ch, mailer)
		go worker.Start(queue.QueueName)
		log.Printf("[QUEUE] outbound email queue enabled")
	}

	r := handlers.NewRouter(deps)

	log.Printf("Lead Management Portal API listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
