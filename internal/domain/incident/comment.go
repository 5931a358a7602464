package incident

import (
	"fmt"
	"time"
)

// Comment is a message posted on an incident by a user.
type Comment struct {
	id         uint
	incidentID uint
	authorID   uint
	content    string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewComment builds an unsaved comment. Content may be empty: a comment can
// consist of an attachment alone, and the caller enforces that at least one
// of the two is present.
func NewComment(incidentID, authorID uint, content string) (*Comment, error) {
	if incidentID == 0 {
		return nil, fmt.Errorf("incident ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Comment{
		incidentID: incidentID,
		authorID:   authorID,
		content:    content,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(id, incidentID, authorID uint, content string, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:         id,
		incidentID: incidentID,
		authorID:   authorID,
		content:    content,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) IncidentID() uint     { return c.incidentID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
