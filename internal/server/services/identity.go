package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkwatch/inkwatch/internal/common"
	"github.com/inkwatch/inkwatch/internal/server/auth"
	"github.com/inkwatch/inkwatch/internal/server/repositories/repomanager"
)

// IdentityService turns a bearer credential into a numeric user identity.
// A token is accepted only if its signature verifies and it is registered
// for the same user in the tokens table, so issued tokens stay revocable.
type IdentityService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	secret []byte
}

func NewIdentityService(db *sql.DB, repos repomanager.RepositoryManager, secret []byte) *IdentityService {
	return &IdentityService{db: db, repos: repos, secret: secret}
}

// Resolve validates the bearer token and returns the user it is bound to.
// Invalid, unregistered and mismatched tokens all map to
// common.ErrorUnauthorized; storage failures are surfaced as-is so the
// caller can report a server-side error instead.
func (s *IdentityService) Resolve(ctx context.Context, bearer string) (int64, error) {

	userID, err := auth.GetUserIDFromToken(bearer, s.secret)
	if err != nil {
		return 0, common.ErrorUnauthorized
	}

	owner, err := s.repos.Tokens(s.db).GetUserID(ctx, bearer)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorUnauthorized
		}
		return 0, fmt.Errorf("resolving bearer token: %w", err)
	}

	if owner != userID {
		return 0, common.ErrorUnauthorized
	}

	return userID, nil
}
