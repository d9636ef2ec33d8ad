package api

import (
	"net"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hotelhub/account-service/docs"
	"github.com/hotelhub/account-service/internal/api/handler"
	"github.com/hotelhub/account-service/internal/api/metrics"
	"github.com/hotelhub/account-service/internal/api/middleware"
	"github.com/hotelhub/account-service/internal/core/ports"
)

// Dependencies groups everything the router needs to serve requests.
type Dependencies struct {
	Auth   ports.AuthService
	Hotels ports.HotelService
	Tokens ports.TokenService

	// LoginLimiter throttles POST /api/auth/login. Nil disables the limit.
	LoginLimiter echomiddleware.RateLimiterStore
	// HealthChecks are probed by GET /health/ready.
	HealthChecks map[string]handler.Check
	// Registry receives the HTTP and business metrics. Nil means the default registry.
	Registry *prometheus.Registry
	// TrustedProxies lists the CIDR ranges whose X-Forwarded-For header is
	// honoured. Empty means the client IP is the TCP peer address.
	TrustedProxies []string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.IPExtractor = ipExtractor(d.TrustedProxies, d.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	if err := metrics.Register(registerer); err != nil {
		d.Log.Error().Err(err).Msg("register business metrics")
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		ExposeHeaders: []string{middleware.HeaderNewToken},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hotelhub",
		Registerer: registerer,
	}))
	e.Use(middleware.Refresh(d.Tokens, d.Log))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	if d.LoginLimiter != nil {
		auth.POST("/login", authHandler.Login, middleware.LoginRateLimit(d.LoginLimiter))
	} else {
		auth.POST("/login", authHandler.Login)
	}
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Profile routes (bearer token required) ---
	hotelHandler := handler.NewHotelHandler(d.Hotels)
	profiles := e.Group("/api/profiles", middleware.Auth(d.Tokens))
	profiles.POST("/hotels", hotelHandler.Create)
	profiles.GET("/hotels/:id", hotelHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.HealthChecks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// ipExtractor resolves the client IP used by the login rate limit. Forwarded
// headers are only read when the peer is one of the trusted proxies.
func ipExtractor(cidrs []string, log zerolog.Logger) echo.IPExtractor {
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn().Err(err).Str("cidr", cidr).Msg("ignoring invalid trusted proxy range")
			continue
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	if len(opts) == 3 {
		return echo.ExtractIPDirect()
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
