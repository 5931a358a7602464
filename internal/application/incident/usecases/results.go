package usecases

import (
	"time"

	"github.com/microcosm-cc/bluemonday"

	"smartincident/internal/domain/incident"
)

// htmlPolicy strips dangerous markup from user-authored descriptions and
// comments before they are stored.
var htmlPolicy = bluemonday.UGCPolicy()

func sanitizeContent(s string) string {
	return htmlPolicy.Sanitize(s)
}

type IncidentResult struct {
	IncidentID  uint
	TicketCode  string
	Title       string
	Description string
	Status      string
	Priority    string
	ReporterID  uint
	AssigneeID  *uint
	CompanyID   uint
	TypeID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated on list reads so clients do not chase ids.
	Reporter *PersonSummary
	Assignee *PersonSummary
	Company  *CompanySummary
}

// PersonSummary is the embedded user reference on a list row.
type PersonSummary struct {
	UserID uint
	Name   string
	Email  string
}

// CompanySummary is the embedded tenant reference on a list row.
type CompanySummary struct {
	CompanyID uint
	Name      string
}

type CommentResult struct {
	CommentID   uint
	IncidentID  uint
	AuthorID    uint
	Content     string
	Attachments []*AttachmentResult
	CreatedAt   time.Time
}

type AttachmentResult struct {
	AttachmentID uint
	FileName     string
	FilePath     string
	MimeType     string
	SizeBytes    int64
	CreatedAt    time.Time
}

func toIncidentResult(inc *incident.Incident) *IncidentResult {
	code := ""
	if inc.TicketCode() != nil {
		code = *inc.TicketCode()
	}
	return &IncidentResult{
		IncidentID:  inc.ID(),
		TicketCode:  code,
		Title:       inc.Title(),
		Description: inc.Description(),
		Status:      inc.Status().String(),
		Priority:    inc.Priority().String(),
		ReporterID:  inc.ReporterID(),
		AssigneeID:  inc.AssigneeID(),
		CompanyID:   inc.CompanyID(),
		TypeID:      inc.TypeID(),
		CreatedAt:   inc.CreatedAt(),
		UpdatedAt:   inc.UpdatedAt(),
	}
}

func toCommentResult(c *incident.Comment, attachments []*incident.Attachment) *CommentResult {
	result := &CommentResult{
		CommentID:  c.ID(),
		IncidentID: c.IncidentID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt(),
	}
	for _, a := range attachments {
		result.Attachments = append(result.Attachments, toAttachmentResult(a))
	}
	return result
}

func toAttachmentResult(a *incident.Attachment) *AttachmentResult {
	return &AttachmentResult{
		AttachmentID: a.ID(),
		FileName:     a.FileName(),
		FilePath:     a.FilePath(),
		MimeType:     a.MimeType(),
		SizeBytes:    a.SizeBytes(),
		CreatedAt:    a.CreatedAt(),
	}
}
