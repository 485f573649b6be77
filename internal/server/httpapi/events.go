package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwatch/inkwatch/internal/ss58"
)

// contractEvents returns the recent activity of one chain account. An account
// with no recorded events is a normal empty result, not an error.
func (s *Server) contractEvents(w http.ResponseWriter, r *http.Request) {

	account, err := ss58.Decode(chi.URLParam(r, "account"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account")
		return
	}

	events, err := s.events.Events(r.Context(), account)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
