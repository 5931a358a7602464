package incident

import (
	"fmt"
	"time"
)

// Status is the incident workflow status.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusOverdue    Status = "overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed, StatusOverdue:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the incident no longer counts as active work.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Priority is the incident priority.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// IsCritical reports whether the priority counts toward the critical
// dashboard metric.
func (p Priority) IsCritical() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// Incident is a support ticket. companyID 0 means the incident is unscoped
// (reported by a global account); it is fixed at creation and never changes.
type Incident struct {
	id          uint
	ticketCode  *string
	title       string
	description string
	status      Status
	priority    Priority
	reporterID  uint
	assigneeID  *uint
	companyID   uint
	typeID      uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewIncident(
	title string,
	description string,
	priority Priority,
	reporterID uint,
	companyID uint,
	typeID uint,
) (*Incident, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if typeID == 0 {
		return nil, fmt.Errorf("incident type is required")
	}

	now := time.Now()
	return &Incident{
		title:       title,
		description: description,
		status:      StatusOpen,
		priority:    priority,
		reporterID:  reporterID,
		companyID:   companyID,
		typeID:      typeID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIncident(
	id uint,
	ticketCode *string,
	title string,
	description string,
	status Status,
	priority Priority,
	reporterID uint,
	assigneeID *uint,
	companyID uint,
	typeID uint,
	createdAt, updatedAt time.Time,
) (*Incident, error) {
	if id == 0 {
		return nil, fmt.Errorf("incident ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Incident{
		id:          id,
		ticketCode:  ticketCode,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		companyID:   companyID,
		typeID:      typeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Incident) ID() uint            { return i.id }
func (i *Incident) TicketCode() *string { return i.ticketCode }
func (i *Incident) Title() string       { return i.title }
func (i *Incident) Description() string { return i.description }
func (i *Incident) Status() Status      { return i.status }
func (i *Incident) Priority() Priority  { return i.priority }
func (i *Incident) ReporterID() uint    { return i.reporterID }
func (i *Incident) AssigneeID() *uint   { return i.assigneeID }
func (i *Incident) CompanyID() uint     { return i.companyID }
func (i *Incident) TypeID() uint        { return i.typeID }
func (i *Incident) CreatedAt() time.Time { return i.createdAt }
func (i *Incident) UpdatedAt() time.Time { return i.updatedAt }

func (i *Incident) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("incident ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("incident ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Incident) SetTicketCode(code string) error {
	if i.ticketCode != nil {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	i.ticketCode = &code
	return nil
}

func (i *Incident) ChangeTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	i.title = title
	i.updatedAt = time.Now()
	return nil
}

func (i *Incident) ChangeDescription(description string) {
	i.description = description
	i.updatedAt = time.Now()
}

func (i *Incident) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	i.status = status
	i.updatedAt = time.Now()
	return nil
}

func (i *Incident) ChangePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	i.priority = priority
	i.updatedAt = time.Now()
	return nil
}

func (i *Incident) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	i.assigneeID = &assigneeID
	i.updatedAt = time.Now()
	return nil
}

func (i *Incident) Unassign() {
	i.assigneeID = nil
	i.updatedAt = time.Now()
}
