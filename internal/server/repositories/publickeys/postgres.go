package publickeys

import (
	"context"
	"fmt"

	"github.com/inkwatch/inkwatch/internal/dbx"
	"github.com/inkwatch/inkwatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.PublicKey, error) {

	query :=
		`SELECT id, user_id, address FROM public_keys
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	keys := make([]models.PublicKey, 0)
	for rows.Next() {
		var key models.PublicKey
		if err := rows.Scan(&key.ID, &key.UserID, &key.Address); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return keys, nil
}

// DeleteByUserAndAddress conjoins the user filter with the address filter in
// a single statement, so one user can never unlink another user's address.
func (r *PostgresRepository) DeleteByUserAndAddress(ctx context.Context, userID int64, address []byte) error {

	query :=
		`DELETE FROM public_keys
		 WHERE user_id = $1 AND address = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, address); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
