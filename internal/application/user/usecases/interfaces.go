package usecases

import (
	"context"

	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/infrastructure/notification"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
}

// Dispatcher hands side-effect tasks to the background notification queue.
type Dispatcher interface {
	Enqueue(name string, task notification.Task)
}

// CascadeDeleter removes an entity and all its descendants atomically.
type CascadeDeleter interface {
	Delete(ctx context.Context, kind cascade.Kind, id uint) error
}
