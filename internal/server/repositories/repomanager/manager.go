package repomanager

import (
	"context"
	"database/sql"

	"github.com/inkwatch/inkwatch/internal/dbx"
	"github.com/inkwatch/inkwatch/internal/server/repositories/events"
	"github.com/inkwatch/inkwatch/internal/server/repositories/publickeys"
	"github.com/inkwatch/inkwatch/internal/server/repositories/tokens"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// implementation serves both plain reads and transactional work.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	PublicKeys(db dbx.DBTX) publickeys.Repository
	Events(db dbx.DBTX) events.Repository
	Tokens(db dbx.DBTX) tokens.Repository
}
