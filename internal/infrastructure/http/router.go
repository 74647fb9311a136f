package http

import (
	"net/http"

	"fairgrounds-admin/internal/domain/repository"
	jwtutil "fairgrounds-admin/pkg/jwt"
	"fairgrounds-admin/pkg/middleware"
	"fairgrounds-admin/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	JWTManager *jwtutil.JWTManager
	Admins     repository.AdminRepository
	Settings   *SettingsController
	Overview   *OverviewController
	Events     *EventController
	Vendors    *VendorController
}

// NewRouter builds the chi router with the full middleware chain and all
// API routes. Admin-only routes sit behind both the token verifier and the
// super admin check.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		response.SendOK(w)
	})
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(deps.JWTManager))

		// Any verified caller may read settings.
		r.Get("/system-settings", deps.Settings.GetSystemSettings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSuperAdmin(deps.Admins))

			r.Put("/system-settings", deps.Settings.UpdateSystemSettings)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/overview", deps.Overview.GetOverview)
				r.Put("/event-status", deps.Events.UpdateEventStatus)
				r.Put("/vendor-status", deps.Vendors.UpdateVendorStatus)
			})
		})
	})

	return r
}
