package notification

import "context"

// ConfigRepository stores the single mail configuration row.
type ConfigRepository interface {
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
	Update(ctx context.Context, cfg *Config) error
}
