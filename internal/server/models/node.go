package models

// Node is a tracked chain endpoint. Rows are maintained by the indexer;
// read-only here.
type Node struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	URL            string `db:"url"`
	ConfirmedBlock int64  `db:"confirmed_block"`
}
