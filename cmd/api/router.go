package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
)

type Routes struct {
	Leads       *handlers.LeadHandler
	Contact     *handlers.ContactFormHandler
	Newsletter  *handlers.NewsletterHandler
	Analytics   *handlers.AnalyticsHandler
	Health      *handlers.HealthHandler
	Logger      *zap.Logger
	CORSOrigins []string
}

func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(rt.Logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Post("/createLead", rt.Leads.CreateLead)
	r.Get("/getLeads", rt.Leads.GetLeads)
	r.Post("/updateLeadStatus", rt.Leads.UpdateLeadStatus)
	r.Post("/createContactForm", rt.Contact.Handle)
	r.Post("/createNewsletterSubscription", rt.Newsletter.Subscribe)
	r.Post("/unsubscribeNewsletter", rt.Newsletter.Unsubscribe)
	r.Get("/getNewsletterSubscriptions", rt.Newsletter.List)
	r.Post("/createAnalyticsEvent", rt.Analytics.Handle)
	r.Get("/healthcheck", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
