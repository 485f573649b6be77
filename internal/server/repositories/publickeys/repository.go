// Package publickeys persists the chain account addresses linked to users.
package publickeys

import (
	"context"

	"github.com/inkwatch/inkwatch/internal/server/models"
)

type Repository interface {
	// ListByUser returns the public keys linked to the given user,
	// ordered by row id.
	ListByUser(ctx context.Context, userID int64) ([]models.PublicKey, error)

	// DeleteByUserAndAddress removes the linkage between the user and the
	// address. Deleting a linkage that does not exist is not an error.
	DeleteByUserAndAddress(ctx context.Context, userID int64, address []byte) error
}
