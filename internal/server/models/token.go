package models

import "time"

// Token is a bearer credential bound to a user. Tokens are issued externally;
// the identity resolver only looks them up.
type Token struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
}
