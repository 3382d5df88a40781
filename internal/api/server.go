package api

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/sportsagg/internal/aggregator"
	"github.com/albapepper/sportsagg/internal/api/handler"
	"github.com/albapepper/sportsagg/internal/api/respond"
	"github.com/albapepper/sportsagg/internal/config"
	"github.com/albapepper/sportsagg/internal/metrics"
	"github.com/albapepper/sportsagg/internal/web"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. m may be nil, in which case /metrics is not mounted.
func NewRouter(svc *aggregator.Service, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS — open by default, the landing page may be hosted elsewhere.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Request-Id"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed")
	})

	// --- Handler dependencies ---
	h := handler.New(svc, cfg)

	// --- Routes ---

	// Landing page
	r.Get("/", templ.Handler(web.Index(config.Sports())).ServeHTTP)
	r.Handle("/static/*", web.Assets())

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Root)
		r.Get("/health", h.HealthCheck)
		r.Get("/sports", h.GetSports)
		r.Get("/tournaments/{sport}", h.GetTournaments)
	})

	return r
}
