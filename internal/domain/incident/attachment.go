package incident

import (
	"fmt"
	"time"
)

// Attachment is a stored file linked to exactly one parent: either an
// incident or a comment, never both.
type Attachment struct {
	id         uint
	incidentID *uint
	commentID  *uint
	fileName   string
	filePath   string
	mimeType   string
	sizeBytes  int64
	createdAt  time.Time
}

func NewIncidentAttachment(incidentID uint, fileName, filePath, mimeType string, sizeBytes int64) (*Attachment, error) {
	if incidentID == 0 {
		return nil, fmt.Errorf("incident ID is required")
	}
	return newAttachment(&incidentID, nil, fileName, filePath, mimeType, sizeBytes)
}

func NewCommentAttachment(commentID uint, fileName, filePath, mimeType string, sizeBytes int64) (*Attachment, error) {
	if commentID == 0 {
		return nil, fmt.Errorf("comment ID is required")
	}
	return newAttachment(nil, &commentID, fileName, filePath, mimeType, sizeBytes)
}

func newAttachment(incidentID, commentID *uint, fileName, filePath, mimeType string, sizeBytes int64) (*Attachment, error) {
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	return &Attachment{
		incidentID: incidentID,
		commentID:  commentID,
		fileName:   fileName,
		filePath:   filePath,
		mimeType:   mimeType,
		sizeBytes:  sizeBytes,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	incidentID, commentID *uint,
	fileName, filePath, mimeType string,
	sizeBytes int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	return &Attachment{
		id:         id,
		incidentID: incidentID,
		commentID:  commentID,
		fileName:   fileName,
		filePath:   filePath,
		mimeType:   mimeType,
		sizeBytes:  sizeBytes,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) IncidentID() *uint    { return a.incidentID }
func (a *Attachment) CommentID() *uint     { return a.commentID }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) FilePath() string     { return a.filePath }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) SizeBytes() int64     { return a.sizeBytes }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
