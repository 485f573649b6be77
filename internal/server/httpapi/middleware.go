package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwatch/inkwatch/internal/common"
)

// identityHandler is a handler for identity-scoped routes. The resolved user
// id arrives as an explicit argument; handlers never do ambient lookups.
type identityHandler func(w http.ResponseWriter, r *http.Request, userID int64)

// withIdentity resolves the bearer credential once per request and passes the
// user id to the wrapped handler. Missing or invalid credentials short-circuit
// with 401 before any registry logic runs.
func (s *Server) withIdentity(next identityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := s.identity.Resolve(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			s.logger.Error(r.Context(), err.Error())
			writeInternalError(w)
			return
		}

		next(w, r, userID)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
