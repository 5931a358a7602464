package tickettype

import (
	"fmt"
	"time"
)

// TicketType is a category incidents are filed under, carrying the SLA
// targets applied to incidents of that category.
type TicketType struct {
	id                uint
	name              string
	description       string
	slaResponseMins   int
	slaResolutionMins int
	global            bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTicketType(name, description string, slaResponseMins, slaResolutionMins int, global bool) (*TicketType, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if slaResponseMins < 0 || slaResolutionMins < 0 {
		return nil, fmt.Errorf("SLA targets cannot be negative")
	}

	now := time.Now()
	return &TicketType{
		name:              name,
		description:       description,
		slaResponseMins:   slaResponseMins,
		slaResolutionMins: slaResolutionMins,
		global:            global,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructTicketType(
	id uint,
	name, description string,
	slaResponseMins, slaResolutionMins int,
	global bool,
	createdAt, updatedAt time.Time,
) (*TicketType, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket type ID cannot be zero")
	}
	return &TicketType{
		id:                id,
		name:              name,
		description:       description,
		slaResponseMins:   slaResponseMins,
		slaResolutionMins: slaResolutionMins,
		global:            global,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *TicketType) ID() uint               { return t.id }
func (t *TicketType) Name() string           { return t.name }
func (t *TicketType) Description() string    { return t.description }
func (t *TicketType) SLAResponseMins() int   { return t.slaResponseMins }
func (t *TicketType) SLAResolutionMins() int { return t.slaResolutionMins }
func (t *TicketType) Global() bool           { return t.global }
func (t *TicketType) CreatedAt() time.Time   { return t.createdAt }
func (t *TicketType) UpdatedAt() time.Time   { return t.updatedAt }

func (t *TicketType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket type ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *TicketType) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	t.name = name
	t.updatedAt = time.Now()
	return nil
}

func (t *TicketType) ChangeDescription(description string) {
	t.description = description
	t.updatedAt = time.Now()
}

func (t *TicketType) ChangeSLA(responseMins, resolutionMins int) error {
	if responseMins < 0 || resolutionMins < 0 {
		return fmt.Errorf("SLA targets cannot be negative")
	}
	t.slaResponseMins = responseMins
	t.slaResolutionMins = resolutionMins
	t.updatedAt = time.Now()
	return nil
}

func (t *TicketType) SetGlobal(global bool) {
	t.global = global
	t.updatedAt = time.Now()
}
