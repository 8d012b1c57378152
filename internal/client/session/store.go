// Package session persists the client's sole piece of durable state: the
// bearer token obtained on login.
package session

import "context"

// Store is the durable token store.
//
// Contract:
//   - Get returns the persisted token, or an empty string when absent or on
//     any read failure. It never reports an error.
//   - Set persists the token, overwriting any prior value. Callers must wait
//     for it to return before issuing authenticated calls.
//   - Clear removes the token and is idempotent.
type Store interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
