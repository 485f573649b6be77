package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/inkwatch/inkwatch/internal/ss58"
)

// linkedKey is one linked public key in the list response; the address is
// rendered in its SS58 form.
type linkedKey struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

type deleteKeyRequest struct {
	Account string `json:"account"`
}

func (s *Server) listKeys(w http.ResponseWriter, r *http.Request, userID int64) {

	keys, err := s.keys.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeInternalError(w)
		return
	}

	out := make([]linkedKey, 0, len(keys))
	for _, key := range keys {
		var addr ss58.Address
		copy(addr[:], key.Address)
		out = append(out, linkedKey{ID: key.ID, Address: ss58.Encode(addr)})
	}

	writeJSON(w, http.StatusOK, out)
}

// deleteKey responds 200 with an empty body whether or not the address was
// linked, so deletion cannot be used to probe other accounts.
func (s *Server) deleteKey(w http.ResponseWriter, r *http.Request, userID int64) {

	var req deleteKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	addr, err := ss58.Decode(req.Account)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account")
		return
	}

	if err := s.keys.Delete(r.Context(), userID, addr); err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeInternalError(w)
		return
	}

	w.WriteHeader(http.StatusOK)
}
