package models

import "time"

// User is an opaque identity. Accounts are created by the registration flow;
// this server only resolves and scopes against them.
type User struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
