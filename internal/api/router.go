package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/homeservices/directory/internal/api/handler"
	"github.com/homeservices/directory/internal/api/middleware"
	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	_ "github.com/homeservices/directory/internal/docs"
	"github.com/homeservices/directory/internal/metrics"
)

// ToastHub is the notification hub the router exposes.
type ToastHub interface {
	Active() []domain.Toast
	Dismiss(id string) bool
	Subscribe() ([]domain.Toast, <-chan domain.Toast, func())
}

// ConnectivityMonitor is the online signal the router exposes.
type ConnectivityMonitor interface {
	Set(online bool) bool
	Status() domain.ConnectivityStatus
}

// Dependencies are the services and infrastructure the routes are wired to.
type Dependencies struct {
	State        ports.StateStore
	Directory    ports.DirectoryService
	Reminders    ports.ReminderService
	Sessions     ports.SessionService
	Favorites    ports.FavoriteService
	Contact      ports.ContactService
	Dashboard    ports.DashboardService
	Toasts       ToastHub
	Connectivity ConnectivityMonitor
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness   map[string]handler.Pinger
	CORSOrigins []string
	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) (*echo.Echo, error) {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	requestMetrics, err := echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.Namespace,
		Registerer: d.Registerer,
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("request metrics: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(middleware.CORS(d.CORSOrigins))
	e.Use(requestMetrics)

	// --- Handlers ---
	directoryHandler := handler.NewDirectoryHandler(d.Directory, d.State)
	reminderHandler := handler.NewReminderHandler(d.Reminders)
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	favoriteHandler := handler.NewFavoriteHandler(d.Favorites)
	connectivityHandler := handler.NewConnectivityHandler(d.Connectivity)
	toastHandler := handler.NewToastHandler(d.Toasts, d.CORSOrigins, d.Log)
	siteHandler := handler.NewSiteHandler(d.Contact)
	requireSession := middleware.Session(d.Sessions)

	// --- Health probes, metrics and docs (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is storage reachable?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Directory ---
	v1.GET("/catalog", directoryHandler.Catalog)
	v1.GET("/services", directoryHandler.Services)
	v1.GET("/services/:category/providers", directoryHandler.ListProviders)
	v1.GET("/cities", directoryHandler.Cities)
	v1.GET("/providers/:id", directoryHandler.GetProvider)
	v1.POST("/providers", directoryHandler.Register)
	v1.POST("/providers/:id/reviews", directoryHandler.AddReview)

	// --- Reminders ---
	v1.GET("/reminders", reminderHandler.List)
	v1.POST("/reminders", reminderHandler.Create)
	v1.DELETE("/reminders/:id", reminderHandler.Delete)

	// --- Session ---
	v1.POST("/auth/login", sessionHandler.Login)
	v1.POST("/auth/logout", sessionHandler.Logout, requireSession)
	v1.GET("/auth/session", sessionHandler.Session, requireSession)
	v1.GET("/dashboard", dashboardHandler.Summary, requireSession)

	// --- Favorites ---
	v1.GET("/favorites", favoriteHandler.List)
	v1.GET("/favorites/:id", favoriteHandler.Status)
	v1.POST("/favorites/:id/toggle", favoriteHandler.Toggle)

	// --- Connectivity and toasts ---
	v1.GET("/connectivity", connectivityHandler.Get)
	v1.PUT("/connectivity", connectivityHandler.Put)
	v1.GET("/toasts", toastHandler.List)
	v1.DELETE("/toasts/:id", toastHandler.Dismiss)
	v1.GET("/toasts/stream", toastHandler.Stream)

	// --- Static pages ---
	v1.GET("/about", siteHandler.About)
	v1.GET("/contact", siteHandler.ContactInfo)
	v1.POST("/contact", siteHandler.SendContact)

	return e, nil
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
