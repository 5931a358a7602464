package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/tickettype"
	"smartincident/internal/infrastructure/cascade"
)

type mockTicketTypeRepository struct {
	SaveFunc       func(ctx context.Context, tt *tickettype.TicketType) error
	UpdateFunc     func(ctx context.Context, tt *tickettype.TicketType) error
	FindByIDFunc   func(ctx context.Context, id uint) (*tickettype.TicketType, error)
	FindByNameFunc func(ctx context.Context, name string) (*tickettype.TicketType, error)
	ListFunc       func(ctx context.Context) ([]*tickettype.TicketType, error)
}

func (m *mockTicketTypeRepository) Save(ctx context.Context, tt *tickettype.TicketType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tt)
	}
	return tt.SetID(1)
}

func (m *mockTicketTypeRepository) Update(ctx context.Context, tt *tickettype.TicketType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tt)
	}
	return nil
}

func (m *mockTicketTypeRepository) FindByID(ctx context.Context, id uint) (*tickettype.TicketType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketTypeRepository) FindByName(ctx context.Context, name string) (*tickettype.TicketType, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTicketTypeRepository) List(ctx context.Context) ([]*tickettype.TicketType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockIncidentRepository struct {
	CountByTypeIDFunc func(ctx context.Context, typeID uint) (int64, error)
}

func (m *mockIncidentRepository) Save(ctx context.Context, inc *incident.Incident) error   { return nil }
func (m *mockIncidentRepository) Update(ctx context.Context, inc *incident.Incident) error { return nil }

func (m *mockIncidentRepository) FindByID(ctx context.Context, id uint) (*incident.Incident, error) {
	return nil, nil
}

func (m *mockIncidentRepository) List(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error) {
	return nil, 0, nil
}

func (m *mockIncidentRepository) Stats(ctx context.Context, filter incident.Filter) (*incident.Stats, error) {
	return &incident.Stats{}, nil
}

func (m *mockIncidentRepository) CountByTypeID(ctx context.Context, typeID uint) (int64, error) {
	if m.CountByTypeIDFunc != nil {
		return m.CountByTypeIDFunc(ctx, typeID)
	}
	return 0, nil
}

type mockCascadeDeleter struct {
	DeleteFunc func(ctx context.Context, kind cascade.Kind, id uint) error
	Deleted    []uint
}

func (m *mockCascadeDeleter) Delete(ctx context.Context, kind cascade.Kind, id uint) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, id)
	}
	return nil
}
