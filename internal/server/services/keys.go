// Package services holds the domain operations behind the HTTP handlers:
// the public key registry, the contract event query service and the
// bearer identity resolver.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inkwatch/inkwatch/internal/dbx"
	"github.com/inkwatch/inkwatch/internal/server/models"
	"github.com/inkwatch/inkwatch/internal/server/repositories/repomanager"
	"github.com/inkwatch/inkwatch/internal/ss58"
)

// KeyService is the public key registry: it lists and unlinks the chain
// account addresses attached to a user, always scoped to that user.
type KeyService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewKeyService(db *sql.DB, repos repomanager.RepositoryManager) *KeyService {
	return &KeyService{db: db, repos: repos}
}

// List returns the user's linked public keys ordered by row id.
// The result is never nil.
func (s *KeyService) List(ctx context.Context, userID int64) ([]models.PublicKey, error) {

	keys, err := s.repos.PublicKeys(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing public keys: %w", err)
	}

	return keys, nil
}

// Delete unlinks the address from the user inside a single transaction.
// It succeeds whether or not the address was linked, so the operation cannot
// be used to probe which addresses other users have registered.
func (s *KeyService) Delete(ctx context.Context, userID int64, address ss58.Address) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.PublicKeys(tx).DeleteByUserAndAddress(ctx, userID, address.Bytes())
	})
	if err != nil {
		return fmt.Errorf("deleting public key: %w", err)
	}

	return nil
}
