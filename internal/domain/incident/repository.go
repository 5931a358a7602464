package incident

import (
	"context"
	"time"
)

// Filter narrows incident queries. Pointer fields are ignored when nil;
// CompanyID and ReporterID set together are combined with OR (a
// company-bound user sees company incidents plus their own reports).
type Filter struct {
	CompanyID  *uint
	ReporterID *uint
	AssigneeID *uint
	Statuses   []Status
	Priority   *Priority
	Search     string
	// CreatedFrom is inclusive, CreatedTo exclusive.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// Stats is the aggregate incident breakdown behind the dashboard.
type Stats struct {
	Total      int64
	ByStatus   map[Status]int64
	ByPriority map[Priority]int64
	Critical   int64
}

type Repository interface {
	Save(ctx context.Context, inc *Incident) error
	Update(ctx context.Context, inc *Incident) error
	FindByID(ctx context.Context, id uint) (*Incident, error)
	List(ctx context.Context, filter Filter) ([]*Incident, int64, error)
	Stats(ctx context.Context, filter Filter) (*Stats, error)
	CountByTypeID(ctx context.Context, typeID uint) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	ListByIncident(ctx context.Context, incidentID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, att *Attachment) error
	ListByIncident(ctx context.Context, incidentID uint) ([]*Attachment, error)
	ListByComment(ctx context.Context, commentID uint) ([]*Attachment, error)
}
