package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/permitwatch/lead-portal/internal/auth"
	"github.com/permitwatch/lead-portal/internal/entity"
	"github.com/permitwatch/lead-portal/internal/infra/http/middleware"
	"github.com/permitwatch/lead-portal/internal/infra/queue"
)

// Deps carries everything the router needs. Repository fields are
// interfaces so tests can mount the full route table over mocks; DB,
// RabbitMQ and Mailer may be nil.
type Deps struct {
	Auth          *auth.Service
	Leads         entity.LeadRepositoryInterface
	Lookups       entity.LookupRepositoryInterface
	SavedLeads    entity.EngagementRepositoryInterface
	Prospections  entity.EngagementRepositoryInterface
	Contacts      entity.ContactRepositoryInterface
	Notifications entity.NotificationRepositoryInterface
	Producer      queue.ProducerInterface
	Mailer        MailSender

	DB       *sql.DB
	RabbitMQ *amqp091.Connection
	MailHost string
}

// NewRouter builds the complete route table. Every response, including 404s
// for unmatched routes and methods, carries the open CORS headers.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	authHandler := NewAuthHandler(deps.Auth)
	leadHandler := NewLeadHandler(deps.Leads)
	savedHandler := NewSavedLeadHandler(deps.SavedLeads)
	prospectionHandler := NewProspectionLeadHandler(deps.Prospections)
	contactHandler := NewContactHandler(deps.Contacts)
	notifyHandler := NewNotifyHandler(deps.Notifications, deps.Producer, deps.Mailer)
	healthHandler := NewHealthHandler(deps.DB, deps.RabbitMQ, deps.MailHost)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Lead Management Portal API"})
	})

	r.Post("/auth/login", authHandler.Login)
	r.Get("/auth/verify", authHandler.Verify)

	r.Get("/leads", leadHandler.List)
	r.Post("/leads", leadHandler.Create)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	savedHandler.Mount(r)
	prospectionHandler.Mount(r)

	r.Get("/contact-history", contactHandler.List)
	r.Post("/contact-history", contactHandler.Create)
	r.Post("/send-email", notifyHandler.SendEmail)
	r.Post("/send-mail", notifyHandler.SendPostal)

	for _, kind := range entity.LookupKinds {
		NewLookupHandler(deps.Lookups, kind).Mount(r)
	}

	r.Get("/health", healthHandler.Handle)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// An unmatched (method, path) pair is a plain 404 naming the path, never
	// a 405.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route "+r.URL.Path+" not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
