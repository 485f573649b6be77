// Package events reads the contract activity records written by the indexer.
// The table is append-only from this server's point of view.
package events

import (
	"context"

	"github.com/inkwatch/inkwatch/internal/server/models"
)

// RecentLimit caps how many events a single account query returns. It is a
// hard design limit, not a page size; there is no pagination cursor.
const RecentLimit = 25

type Repository interface {
	// ListRecentByAccount returns up to RecentLimit events recorded against
	// the given 32-byte account, newest first. Ties on block_timestamp break
	// by row id descending. Only Body and BlockTimestamp are populated.
	ListRecentByAccount(ctx context.Context, account []byte) ([]models.Event, error)
}
