package company

import "context"

// Repository persists companies. Deletion is intentionally absent: removing a
// company goes through the cascade deletion engine, never a bare row delete.
type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	FindByID(ctx context.Context, id uint) (*Company, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Company, error)
	List(ctx context.Context) ([]*Company, error)
}
