package notification

import (
	"fmt"
	"time"
)

// MaskedPassword is what non-privileged readers see in place of the stored
// SMTP password. Updates carrying this exact value leave the stored password
// untouched, so a masked read can be round-tripped through an edit form.
const MaskedPassword = "******"

// Config is the stored mail delivery configuration. Sending is disabled
// until a configuration is saved and enabled.
type Config struct {
	id        uint
	smtpHost  string
	smtpPort  int
	smtpUser  string
	smtpPass  string
	fromName  string
	fromEmail string
	enabled   bool
	updatedAt time.Time
}

func NewConfig(smtpHost string, smtpPort int, smtpUser, smtpPass, fromName, fromEmail string, enabled bool) (*Config, error) {
	if len(smtpHost) == 0 {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if smtpPort <= 0 || smtpPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", smtpPort)
	}
	if len(fromEmail) == 0 {
		return nil, fmt.Errorf("sender email is required")
	}

	return &Config{
		smtpHost:  smtpHost,
		smtpPort:  smtpPort,
		smtpUser:  smtpUser,
		smtpPass:  smtpPass,
		fromName:  fromName,
		fromEmail: fromEmail,
		enabled:   enabled,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructConfig(id uint, smtpHost string, smtpPort int, smtpUser, smtpPass, fromName, fromEmail string, enabled bool, updatedAt time.Time) (*Config, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification config ID cannot be zero")
	}
	return &Config{
		id:        id,
		smtpHost:  smtpHost,
		smtpPort:  smtpPort,
		smtpUser:  smtpUser,
		smtpPass:  smtpPass,
		fromName:  fromName,
		fromEmail: fromEmail,
		enabled:   enabled,
		updatedAt: updatedAt,
	}, nil
}

func (c *Config) ID() uint             { return c.id }
func (c *Config) SMTPHost() string     { return c.smtpHost }
func (c *Config) SMTPPort() int        { return c.smtpPort }
func (c *Config) SMTPUser() string     { return c.smtpUser }
func (c *Config) SMTPPass() string     { return c.smtpPass }
func (c *Config) FromName() string     { return c.fromName }
func (c *Config) FromEmail() string    { return c.fromEmail }
func (c *Config) Enabled() bool        { return c.enabled }
func (c *Config) UpdatedAt() time.Time { return c.updatedAt }

func (c *Config) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("notification config ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification config ID cannot be zero")
	}
	c.id = id
	return nil
}

// Apply overwrites the configuration with the given values. A password equal
// to MaskedPassword keeps the stored one.
func (c *Config) Apply(smtpHost string, smtpPort int, smtpUser, smtpPass, fromName, fromEmail string, enabled bool) error {
	if len(smtpHost) == 0 {
		return fmt.Errorf("SMTP host is required")
	}
	if smtpPort <= 0 || smtpPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", smtpPort)
	}
	if len(fromEmail) == 0 {
		return fmt.Errorf("sender email is required")
	}

	c.smtpHost = smtpHost
	c.smtpPort = smtpPort
	c.smtpUser = smtpUser
	if smtpPass != MaskedPassword {
		c.smtpPass = smtpPass
	}
	c.fromName = fromName
	c.fromEmail = fromEmail
	c.enabled = enabled
	c.updatedAt = time.Now()
	return nil
}
