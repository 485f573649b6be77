package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkwatch/inkwatch/internal/common"
	"github.com/inkwatch/inkwatch/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserID(ctx context.Context, token string) (int64, error) {

	query :=
		`SELECT user_id FROM tokens
		 WHERE token = $1
		 `

	var userID int64
	err := r.db.QueryRowContext(ctx, query, token).Scan(&userID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return userID, nil
}
