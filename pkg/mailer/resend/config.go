package resend

import "time"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string        `env:"RESEND_API_KEY" validate:"required"`
	SenderEmail string        `env:"RESEND_FROM_EMAIL" envDefault:"onboarding@resend.dev" validate:"required,email"`
	SenderName  string        `env:"RESEND_FROM_NAME"`
	BaseURL     string        `env:"RESEND_BASE_URL" validate:"omitempty,url"` // Empty means the client default (https://api.resend.com/)
	Timeout     time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// From returns the configured sender address, with display name when set.
func (c Config) From() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return c.SenderName + " <" + c.SenderEmail + ">"
}
