package domain

import "context"

// TxManager runs fn inside a single storage transaction. Repositories called
// with the ctx passed to fn join that transaction; any error rolls back every
// write made inside it.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
