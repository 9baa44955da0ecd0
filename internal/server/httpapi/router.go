// Package httpapi is the REST surface of the Linkfo server, mounted under
// /api on a chi router.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/dmitrijs2005/linkfo/internal/server/metrics"
	"github.com/dmitrijs2005/linkfo/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Storage is what the health endpoint needs to know about the backend.
type Storage interface {
	Ping(ctx context.Context) error
	Backend() string
}

type Services struct {
	Users    *services.UserService
	Links    *services.LinkService
	Personas *services.PersonaService
	Chat     *services.ChatService
	Profiles *services.ProfileService
	Avatars  *services.AvatarService
}

type Options struct {
	Services       Services
	Tokens         *auth.Codec
	Storage        Storage
	Metrics        *metrics.Collector
	Logger         logging.Logger
	Environment    string
	AllowedOrigins []string
}

type handler struct {
	Services
	storage     Storage
	metrics     *metrics.Collector
	logger      logging.Logger
	environment string
	now         func() time.Time
}

// NewRouter wires middleware and every route.
func NewRouter(o Options) http.Handler {
	h := &handler{
		Services:    o.Services,
		storage:     o.Storage,
		metrics:     o.Metrics,
		logger:      o.Logger.With("module", "http_api"),
		environment: o.Environment,
		now:         time.Now,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))
	r.Use(o.Metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.root)
	r.Method(http.MethodGet, "/metrics", o.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/profiles/{userID}", h.publicProfile)
		r.Post("/profiles/{userID}/links/{linkID}/click", h.clickLink)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(o.Tokens, h.logger))

			r.Get("/auth/me", h.me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.me)
				r.Put("/profile", h.updateProfile)
				r.Get("/stats", h.stats)
				r.Post("/avatar", h.avatar)
			})

			r.Route("/links", func(r chi.Router) {
				r.Get("/", h.listLinks)
				r.Post("/", h.addLink)
				r.Put("/{linkID}", h.updateLink)
				r.Delete("/{linkID}", h.removeLink)
			})

			r.Route("/persona", func(r chi.Router) {
				r.Get("/", h.getPersona)
				r.Post("/update", h.updatePersona)
				r.Get("/sources", h.listSources)
				r.Post("/sources", h.addSource)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/history", h.chatHistory)
				r.Post("/message", h.chatMessage)
			})
		})
	})

	return r
}
