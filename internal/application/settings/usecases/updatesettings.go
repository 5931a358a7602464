package usecases

import (
	"context"

	"smartincident/internal/domain/notification"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	Actor     authorization.Actor
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromName  string
	FromEmail string
	Enabled   bool
}

type UpdateSettingsUseCase struct {
	configRepo notification.ConfigRepository
	logger     logger.Interface
}

func NewUpdateSettingsUseCase(configRepo notification.ConfigRepository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{configRepo: configRepo, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) error {
	decision := authorization.Scope(cmd.Actor, authorization.OpUpdate, authorization.ResourceSettings)
	if !decision.Allow {
		return errors.NewForbiddenError("insufficient permissions")
	}

	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load notification settings", "error", err)
		return errors.NewInternalError("failed to update settings", err.Error())
	}

	if cfg == nil {
		// First-time setup must supply a real password, not the mask.
		pass := cmd.SMTPPass
		if pass == notification.MaskedPassword {
			pass = ""
		}
		cfg, err = notification.NewConfig(cmd.SMTPHost, cmd.SMTPPort, cmd.SMTPUser, pass,
			cmd.FromName, cmd.FromEmail, cmd.Enabled)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.configRepo.Save(ctx, cfg); err != nil {
			uc.logger.Errorw("failed to save notification settings", "error", err)
			return errors.NewInternalError("failed to update settings", err.Error())
		}
		uc.logger.Infow("notification settings created", "smtp_host", cfg.SMTPHost(), "enabled", cfg.Enabled())
		return nil
	}

	if err := cfg.Apply(cmd.SMTPHost, cmd.SMTPPort, cmd.SMTPUser, cmd.SMTPPass,
		cmd.FromName, cmd.FromEmail, cmd.Enabled); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.configRepo.Update(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to update notification settings", "error", err)
		return errors.NewInternalError("failed to update settings", err.Error())
	}

	uc.logger.Infow("notification settings updated", "smtp_host", cfg.SMTPHost(), "enabled", cfg.Enabled())
	return nil
}
