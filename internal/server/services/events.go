package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inkwatch/inkwatch/internal/server/repositories/repomanager"
	"github.com/inkwatch/inkwatch/internal/ss58"
)

// ContractEvent is one entry of an account's recent activity. Body is the
// serialized payload exactly as the indexer stored it; Timestamp is the
// block timestamp in Unix-epoch seconds, UTC.
type ContractEvent struct {
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// EventService answers bounded, newest-first activity queries for a single
// chain account.
type EventService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, repos repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repos: repos}
}

// Events returns up to the 25 most recent events recorded against the
// account. An account with no recorded events yields an empty slice,
// never an error.
func (s *EventService) Events(ctx context.Context, account ss58.Address) ([]ContractEvent, error) {

	rows, err := s.repos.Events(s.db).ListRecentByAccount(ctx, account.Bytes())
	if err != nil {
		return nil, fmt.Errorf("listing contract events: %w", err)
	}

	events := make([]ContractEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, ContractEvent{
			Body:      row.Body,
			Timestamp: row.BlockTimestamp.UTC().Unix(),
		})
	}

	return events, nil
}
