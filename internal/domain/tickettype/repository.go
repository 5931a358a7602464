package tickettype

import "context"

type Repository interface {
	Save(ctx context.Context, tt *TicketType) error
	Update(ctx context.Context, tt *TicketType) error
	FindByID(ctx context.Context, id uint) (*TicketType, error)
	FindByName(ctx context.Context, name string) (*TicketType, error)
	List(ctx context.Context) ([]*TicketType, error)
}
