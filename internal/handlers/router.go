package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ecokosova-dashboard/internal/api"
	"ecokosova-dashboard/internal/middleware"
	"ecokosova-dashboard/internal/notifications"
	"ecokosova-dashboard/internal/refresh"
	"ecokosova-dashboard/internal/routes"
	"ecokosova-dashboard/internal/session"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/internal/websocket"
)

// Deps are the long-lived objects created in main and shared by the handlers
type Deps struct {
	Gateway       *api.Client
	Sessions      *session.Store
	Tokens        *session.TokenIssuer
	DemoAuth      bool
	Settings      *settings.Manager
	Notifications *notifications.Store
	Toasts        *toast.Queue
	Refresher     *refresh.Refresher
	Routes        *routes.Service
	Hub           *websocket.Hub
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// WebSocket endpoint (authentication handled in handler via query param)
	if d.Hub != nil {
		r.Get("/ws", websocket.HandleWebSocket(d.Hub, d.Tokens))
	}

	r.Route("/api", func(r chi.Router) {
		// Session routes (no auth required)
		r.Get("/session", GetSession(d.Sessions, d.Tokens, d.DemoAuth))
		r.Post("/session/login", Login(d.Sessions, d.Tokens))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Tokens))

			r.Post("/session/logout", Logout(d.Sessions))
			r.Get("/session/me", GetMe(d.Sessions))
			r.Patch("/session/me", UpdateMe(d.Sessions))

			r.Get("/dashboard", GetDashboard(d.Refresher, d.Settings))
			r.Put("/containers/{id}/fill-level", UpdateFillLevel(d.Refresher, d.Routes, d.Toasts))

			RegisterContainerRoutes(r, d.Gateway, d.Toasts, d.Routes)
			RegisterZoneRoutes(r, d.Gateway, d.Toasts, d.Routes)
			RegisterTruckRoutes(r, d.Gateway, d.Toasts)
			RegisterCitizenRoutes(r, d.Gateway, d.Toasts)
			RegisterCycleRoutes(r, d.Gateway, d.Toasts)

			r.Get("/notifications", GetNotifications(d.Notifications))
			r.Post("/notifications/read-all", MarkAllNotificationsRead(d.Notifications))
			r.Post("/notifications/{id}/read", MarkNotificationRead(d.Notifications))
			r.Delete("/notifications", ClearNotifications(d.Notifications))

			r.Get("/toasts", GetToasts(d.Toasts))
			r.Delete("/toasts/{id}", DismissToast(d.Toasts))

			r.Get("/settings", GetSettings(d.Settings))
			r.Put("/settings", SaveSettings(d.Settings, d.Toasts))

			r.Get("/reports/{type}", GetReport(d.Gateway))
			r.Get("/routes/zone/{zoneId}", GetZoneRoute(d.Routes))
			r.With(middleware.RequireRole("admin")).Get("/routes/cache-stats", GetRouteCacheStats(d.Routes))
			r.With(middleware.RequireRole("admin")).Get("/status", GetStatus(d.Hub, d.Routes, d.Notifications))
		})
	})

	return r
}
