// Package rest exposes the rental services over HTTP with a chi router.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/logging"
	"github.com/dmitrijs2005/videoclub/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services bundles the business services the facade dispatches to.
type Services struct {
	Users   *services.UserService
	Rentals *services.RentalService
	Billing *services.BillingService
	Catalog *services.CatalogService
}

type Server struct {
	address     string
	logger      logging.Logger
	db          Pinger
	users       *services.UserService
	rentals     *services.RentalService
	billing     *services.BillingService
	catalog     *services.CatalogService
	corsOrigins []string
	now         services.Clock
}

func NewServer(a string, l logging.Logger, db Pinger, svc Services, corsOrigins []string) *Server {
	return &Server{
		address:     a,
		logger:      l.With("module", "http_server"),
		db:          db,
		users:       svc.Users,
		rentals:     svc.Rentals,
		billing:     svc.Billing,
		catalog:     svc.Catalog,
		corsOrigins: corsOrigins,
		now:         time.Now,
	}
}

// WithClock replaces the time source used to price open rentals.
func (s *Server) WithClock(c services.Clock) *Server {
	s.now = c
	return s
}

// Handler builds the router. Protected routes are wrapped with withUser.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", common.AccessTokenHeaderName},
		ExposedHeaders: []string{common.RequestIDHeaderName},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.health)

	r.Post("/create_user", s.createUser)
	r.Post("/login", s.login)

	r.Get("/get_all_users", s.withUser(s.getAllUsers))
	r.Get("/get_all_movie_titles", s.withUser(s.getAllMovieTitles))
	r.Get("/get_movies_by_category", s.withUser(s.getMoviesByCategory))
	r.Get("/navigate", s.withUser(s.navigate))
	r.Post("/rent", s.withUser(s.rent))
	r.Post("/return_movie", s.withUser(s.returnMovie))
	r.Get("/get_rentals", s.withUser(s.getRentals))
	r.Get("/get_charge", s.withUser(s.getCharge))

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
