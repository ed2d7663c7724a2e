package resend

import (
	"context"
	"fmt"
)

// Healthcheck returns a readiness check that fails when the sender lacks
// an API key or a from address. It makes no network calls.
func Healthcheck(s *Sender) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.config.APIKey == "" {
			return fmt.Errorf("%w: missing api key", ErrNotConfigured)
		}
		if s.config.SenderEmail == "" {
			return fmt.Errorf("%w: missing sender email", ErrNotConfigured)
		}
		return nil
	}
}
