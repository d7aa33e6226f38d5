package interfaces

import (
	"context"

	"lumalens/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// GetByID returns a zero-value Transaction (empty ID) when no row exists.
//
// Upsert is the single mutation path: it creates the row when absent,
// otherwise applies the status change and stamps updated_at — atomically,
// via a conditional write. A transition out of a terminal status must be
// rejected by the storage layer itself (not by a read-then-write in the
// caller), and the rejection is not an error: Upsert returns the stored
// row as it is, so provider retries converge.

type ITransactionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	Upsert(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
}
