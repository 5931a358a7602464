package usecases

import (
	"context"

	"smartincident/internal/infrastructure/notification"
)

// TokenIssuer signs the bearer token returned on login.
type TokenIssuer interface {
	Generate(userID uint) (string, error)
}

// PasswordHasher verifies and creates password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// ResetTokenGenerator produces single-use password-reset tokens.
type ResetTokenGenerator func() (string, error)

// EmailSender is the outbound mail boundary used by auth flows.
type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// Dispatcher enqueues fire-and-forget background work.
type Dispatcher interface {
	Enqueue(name string, task notification.Task)
}
