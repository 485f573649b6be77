package models

// Contract is a deployed contract instance: code hash plus 32-byte address,
// optionally owned by an account.
type Contract struct {
	ID       int64  `db:"id"`
	NodeID   int64  `db:"node_id"`
	CodeHash []byte `db:"code_hash"`
	Address  []byte `db:"address"`
	Owner    []byte `db:"owner"`
}
