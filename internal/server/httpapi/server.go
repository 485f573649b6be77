// Package httpapi exposes the HTTP surface: public contract event queries
// and the bearer-authenticated public key registry.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inkwatch/inkwatch/internal/logging"
	"github.com/inkwatch/inkwatch/internal/server/services"
)

type Server struct {
	address  string
	logger   logging.Logger
	identity *services.IdentityService
	keys     *services.KeyService
	events   *services.EventService
}

func NewServer(address string, logger logging.Logger, identity *services.IdentityService, keys *services.KeyService, events *services.EventService) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "httpapi"),
		identity: identity,
		keys:     keys,
		events:   events,
	}
}

// Router assembles the chi router. Identity-scoped routes go through
// withIdentity so handlers receive the resolved user id explicitly.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/contracts/events/{account}", s.contractEvents)

	r.Get("/keys", s.withIdentity(s.listKeys))
	r.Delete("/keys", s.withIdentity(s.deleteKey))

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
