package ports

import "context"

// TxRunner scopes a function to a single store transaction: committed when fn
// returns nil, rolled back otherwise. Repository calls made with the ctx
// passed to fn join the transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
