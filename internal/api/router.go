package api

import (
	"net/http"

	"debt-portal/internal/config"
	"debt-portal/internal/handlers"
	"debt-portal/internal/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted under /api
type Handlers struct {
	Account *handlers.AccountHandler
	Debt    *handlers.DebtHandler
	Health  *handlers.HealthCheckHandler
}

// SetupRoutes builds the echo instance with the middleware chain, the /api
// routes and the Prometheus scrape endpoint.
func SetupRoutes(cfg *config.Config, h Handlers, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.Security.BodyLimit))

	api := e.Group("/api", middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	api.GET("/health", h.Health.HealthCheck)
	api.GET("/account/:accountId", h.Account.GetAccount)
	api.PUT("/account/:accountId", h.Account.UpdateAccount)
	api.GET("/debts/:accountId", h.Debt.GetDebts)
	api.GET("/debt/:debtId", h.Debt.GetDebt)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return e
}
