// Package tokens resolves bearer credentials to user identities. Token rows
// are written by the external issuance flow; this server only reads them.
package tokens

import "context"

type Repository interface {
	// GetUserID returns the id of the user the token is bound to, or
	// common.ErrorNotFound when the token is not registered.
	GetUserID(ctx context.Context, token string) (int64, error)
}
