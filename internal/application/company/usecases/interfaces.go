package usecases

import (
	"context"

	"smartincident/internal/infrastructure/cascade"
)

// TxManager runs a function inside a single database transaction.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CascadeDeleter removes an entity and all its descendants atomically.
type CascadeDeleter interface {
	Delete(ctx context.Context, kind cascade.Kind, id uint) error
}
