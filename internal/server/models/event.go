package models

import "time"

// Event is an immutable contract activity record written by the indexer.
// Body is an opaque serialized payload; the server never interprets it.
type Event struct {
	ID             int64     `db:"id"`
	NodeID         int64     `db:"node_id"`
	Account        []byte    `db:"account"`
	EventType      string    `db:"event_type"`
	Body           string    `db:"body"`
	BlockTimestamp time.Time `db:"block_timestamp"`
}
