package usecases

import (
	"context"
	"io"

	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/infrastructure/notification"
	"smartincident/internal/infrastructure/storage"
)

// FileStorage persists uploaded attachment content.
type FileStorage interface {
	Save(originalName string, r io.Reader) (*storage.StoredFile, error)
}

type EmailSender interface {
	SendIncidentCreatedEmail(ctx context.Context, to, ticketCode, title, description string) error
	SendCommentAddedEmail(ctx context.Context, to, ticketCode, author, content string) error
}

// Dispatcher hands side-effect tasks to the background notification queue.
type Dispatcher interface {
	Enqueue(name string, task notification.Task)
}

// CascadeDeleter removes an entity and all its descendants atomically.
type CascadeDeleter interface {
	Delete(ctx context.Context, kind cascade.Kind, id uint) error
}

// Upload is attachment content received from the transport layer.
type Upload struct {
	FileName string
	MimeType string
	Content  io.Reader
}
