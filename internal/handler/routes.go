// internal/handler/routes.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every API handler so the router can be built in one place.
type Handlers struct {
	Onboarding   *OnboardingHandler
	Organization *OrganizationHandler
	Billing      *BillingHandler
	Webhook      *WebhookHandler
	Departments  *DepartmentHandler
	JobFamilies  *JobFamilyHandler
	Levels       *LevelHandler
	Avantages    *AvantageHandler
	GrilleExtras *GrilleExtraHandler
}

// Mount registers the /api routes. requireSession must reject anonymous
// requests; tenant must put the resolved organization in the context.
func (h *Handlers) Mount(r chi.Router, requireSession, tenant func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		// Stripe signs the raw body; no session and no content-type filter.
		r.Post("/webhooks/stripe", h.Webhook.Stripe)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Use(chmw.AllowContentType("application/json"))

			r.Get("/onboarding/check", h.Onboarding.Check)
			r.Post("/onboarding/organization", h.Onboarding.CreateOrganization)

			r.Group(func(r chi.Router) {
				r.Use(tenant)

				r.Get("/organization", h.Organization.Get)
				r.Put("/organization", h.Organization.Update)

				r.Post("/stripe/checkout", h.Billing.Checkout)
				r.Post("/stripe/verify-session", h.Billing.VerifySession)
				r.Post("/stripe/portal", h.Billing.Portal)

				r.Route("/departments", func(r chi.Router) {
					r.Get("/", h.Departments.List)
					r.Post("/", h.Departments.Create)
					r.Put("/{id}", h.Departments.Update)
					r.Delete("/{id}", h.Departments.Delete)
				})
				r.Route("/job-families", func(r chi.Router) {
					r.Get("/", h.JobFamilies.List)
					r.Post("/", h.JobFamilies.Create)
					r.Put("/{id}", h.JobFamilies.Update)
					r.Delete("/{id}", h.JobFamilies.Delete)
				})
				r.Route("/levels", func(r chi.Router) {
					r.Get("/", h.Levels.List)
					r.Post("/", h.Levels.Create)
					r.Put("/{id}", h.Levels.Update)
					r.Delete("/{id}", h.Levels.Delete)
				})
				r.Route("/avantages", func(r chi.Router) {
					r.Get("/", h.Avantages.List)
					r.Post("/", h.Avantages.Create)
					r.Put("/{id}", h.Avantages.Update)
					r.Delete("/{id}", h.Avantages.Delete)
				})
				r.Route("/grille-extras", func(r chi.Router) {
					r.Get("/", h.GrilleExtras.List)
					r.Post("/", h.GrilleExtras.Create)
					r.Put("/{id}", h.GrilleExtras.Update)
					r.Delete("/{id}", h.GrilleExtras.Delete)
				})
			})
		})
	})
}
