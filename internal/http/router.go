package http

import (
	"log/slog"

	"github.com/calverts/userhub/internal/auth"
	"github.com/calverts/userhub/internal/config"
	"github.com/calverts/userhub/internal/http/handlers"
	"github.com/calverts/userhub/internal/http/middlewares"
	"github.com/calverts/userhub/internal/observability"
	"github.com/calverts/userhub/internal/security"
	"github.com/calverts/userhub/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Paths the request gate lets through without a token: login, docs,
// health and metrics.
var exemptPaths = []string{"/login", "/docs", "/healthz", "/readyz", "/metrics"}

const maxBodyBytes = 1 << 20 // 1 MiB

func NewRouter(
	log *slog.Logger,
	cfg config.Config,
	st *store.FileStore,
	prom *observability.Prom,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(otelgin.Middleware("userhub"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	// The gate runs before every handler; exempt paths pass through.
	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiration)
	gate := middlewares.NewGate(jwtManager, exemptPaths)
	r.Use(gate.RequireAuth())

	// health
	ping := func() error {
		if st == nil {
			return nil
		}
		_, err := st.Load()
		return err
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	r.GET("/docs", handlers.DocsUI)
	r.GET("/docs/openapi.yaml", handlers.OpenAPISpec)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// login, rate limited by client IP
	authHandler := handlers.NewAuthHandler(security.NewVerifier(cfg.APIKeyHash), jwtManager)
	limiter := middlewares.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	r.POST("/login", limiter.Middleware(middlewares.KeyByIP), authHandler.Login)

	// users CRUD
	usersHandler := handlers.NewUsersHandler(st)

	r.GET("/users", usersHandler.ListUsers)
	r.POST("/users", usersHandler.CreateUser)
	r.GET("/users/:id", usersHandler.GetUserByID)
	r.PUT("/users/:id", usersHandler.UpdateUser)
	r.DELETE("/users/:id", usersHandler.DeleteUser)

	return r
}
