package company

import (
	"fmt"
	"time"
)

// Status is the company lifecycle status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// Company is a tenant: the unit of data isolation for client users.
type Company struct {
	id           uint
	name         string
	status       Status
	address      string
	contactEmail string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCompany(name, address, contactEmail string) (*Company, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Company{
		name:         name,
		status:       StatusActive,
		address:      address,
		contactEmail: contactEmail,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCompany(
	id uint,
	name string,
	status Status,
	address string,
	contactEmail string,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Company{
		id:           id,
		name:         name,
		status:       status,
		address:      address,
		contactEmail: contactEmail,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Company) ID() uint              { return c.id }
func (c *Company) Name() string          { return c.name }
func (c *Company) Status() Status        { return c.status }
func (c *Company) Address() string       { return c.address }
func (c *Company) ContactEmail() string  { return c.contactEmail }
func (c *Company) CreatedAt() time.Time  { return c.createdAt }
func (c *Company) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Company) IsActive() bool {
	return c.status == StatusActive
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Company) UpdateContact(address, contactEmail string) {
	c.address = address
	c.contactEmail = contactEmail
	c.updatedAt = time.Now()
}

// ChangeStatus transitions the company status. It returns true when the
// transition is a deactivation, which is the only status change that
// propagates to the company's users.
func (c *Company) ChangeStatus(newStatus Status) (deactivated bool, err error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}
	if c.status == newStatus {
		return false, nil
	}
	deactivated = newStatus == StatusInactive
	c.status = newStatus
	c.updatedAt = time.Now()
	return deactivated, nil
}
