// Package tx defines the transaction manager contract used by domain services.
// The concrete implementation lives in the postgres infrastructure layer; the
// domain depends only on this interface.
package tx

import "context"

// Manager runs functions inside a database transaction.
type Manager interface {
	// RunInTransaction executes fn within a transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise. Nested calls
	// reuse the outer transaction through savepoints.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// RunInTransactionWithRetry behaves like RunInTransaction but retries the
	// whole function on serialization and deadlock failures, up to the
	// implementation's retry budget. fn must therefore be safe to re-execute.
	RunInTransactionWithRetry(ctx context.Context, fn func(ctx context.Context) error) error
}
