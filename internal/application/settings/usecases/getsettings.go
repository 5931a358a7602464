package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/notification"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetSettingsQuery struct {
	Actor authorization.Actor
}

// SettingsResult is the mail configuration view. SMTPPass carries the real
// secret only for superadmins; everyone else with read access gets the mask.
type SettingsResult struct {
	Configured bool
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromName   string
	FromEmail  string
	Enabled    bool
	UpdatedAt  time.Time
}

type GetSettingsUseCase struct {
	configRepo notification.ConfigRepository
	logger     logger.Interface
}

func NewGetSettingsUseCase(configRepo notification.ConfigRepository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{configRepo: configRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, query GetSettingsQuery) (*SettingsResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceSettings)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load notification settings", "error", err)
		return nil, errors.NewInternalError("failed to load settings", err.Error())
	}
	if cfg == nil {
		return &SettingsResult{}, nil
	}

	pass := notification.MaskedPassword
	if query.Actor.Role.IsSuperadmin() {
		pass = cfg.SMTPPass()
	}

	return &SettingsResult{
		Configured: true,
		SMTPHost:   cfg.SMTPHost(),
		SMTPPort:   cfg.SMTPPort(),
		SMTPUser:   cfg.SMTPUser(),
		SMTPPass:   pass,
		FromName:   cfg.FromName(),
		FromEmail:  cfg.FromEmail(),
		Enabled:    cfg.Enabled(),
		UpdatedAt:  cfg.UpdatedAt(),
	}, nil
}
