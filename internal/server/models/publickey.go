package models

// PublicKey links a raw 32-byte chain account address to a user.
// (user_id, address) is unique.
type PublicKey struct {
	ID      int64  `db:"id"`
	UserID  int64  `db:"user_id"`
	Address []byte `db:"address"`
}
