package events

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

func (r *PostgresRepository) ListRecentByAccount(ctx context.Context, account []byte) ([]models.Event, error) {

	query :=
		`SELECT body, block_timestamp FROM events
		 WHERE account = $1
		 ORDER BY block_timestamp DESC, id DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, account, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, RecentLimit)
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.Body, &event.BlockTimestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return events, nil
}
