package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"scriptviral/internal/http/handlers"
	"scriptviral/internal/infra"
	"scriptviral/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Log),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.I18N(cfg.DefaultLocale),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/scripts", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/generate", app.GenerateScripts)
		r.Post("/export", app.ExportDocx)
		r.Post("/copytext", app.CopyText)
	})

	return r
}
