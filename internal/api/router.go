package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/cogip/cogip-api/docs"
	"github.com/cogip/cogip-api/internal/api/handler"
	"github.com/cogip/cogip-api/internal/api/metrics"
	"github.com/cogip/cogip-api/internal/api/middleware"
	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
)

// Allow-lists per endpoint.
var (
	rolesAll          = []domain.Role{domain.RoleAdmin, domain.RoleAccountant, domain.RoleIntern}
	rolesAdminAccount = []domain.Role{domain.RoleAdmin, domain.RoleAccountant}
	rolesAdmin        = []domain.Role{domain.RoleAdmin}
)

// Deps groups everything the router needs.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Companies ports.CompanyService
	Contacts  ports.ContactService
	Invoices  ports.InvoiceService

	Tokens ports.TokenVerifier
	Roles  ports.RoleResolver

	// Checks are run by the readiness check.
	Checks []handler.DependencyCheck
	// Registry serves /metrics. Nil disables Prometheus.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))

	if d.Registry != nil {
		metrics.MustRegister(d.Registry)
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "cogip",
			Registerer: d.Registry,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: d.Registry,
		}))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	companyHandler := handler.NewCompanyHandler(d.Companies)
	contactHandler := handler.NewContactHandler(d.Contacts)
	invoiceHandler := handler.NewInvoiceHandler(d.Invoices)
	userHandler := handler.NewUserHandler(d.Users)

	allow := func(roles ...domain.Role) echo.MiddlewareFunc {
		return middleware.Authorize(d.Tokens, d.Roles, d.Logger, roles...)
	}

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/login", authHandler.Login)

	g.POST("/company", companyHandler.Create, allow(rolesAdminAccount...))
	g.GET("/companies", companyHandler.List, allow(rolesAll...))

	g.POST("/contact", contactHandler.Create, allow(rolesAll...))
	g.GET("/contacts", contactHandler.List, allow(rolesAll...))

	g.POST("/invoice", invoiceHandler.Create, allow(rolesAdminAccount...))
	g.GET("/invoices", invoiceHandler.List, allow(rolesAll...))

	g.POST("/user", userHandler.Create, allow(rolesAdmin...))
	g.GET("/users", userHandler.List, allow(rolesAdminAccount...))

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
