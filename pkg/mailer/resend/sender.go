package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v3"

	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
)

// ProviderName identifies Resend in mailer.ProviderError.
const ProviderName = "resend"

// ErrNotConfigured is returned by Healthcheck when the API key or sender is missing.
var ErrNotConfigured = errors.New("resend: sender is not configured")

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// Option customizes the HTTP client used by Sender.
type Option func(*http.Client)

// WithHTTPClient replaces the base HTTP client. Its transport is wrapped,
// not replaced, and Config.Timeout applies when c has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(dst *http.Client) {
		timeout := dst.Timeout
		*dst = *c
		if dst.Timeout == 0 {
			dst.Timeout = timeout
		}
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	for _, opt := range opts {
		opt(httpClient)
	}

	tr, err := newTransport(httpClient.Transport, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("resend: invalid base url: %w", err)
	}
	httpClient.Transport = tr

	return &Sender{
		client: resend.NewCustomClient(httpClient, cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
// A non-2xx answer from the API is returned as *mailer.ProviderError.
// A 2xx answer counts as delivered even when its body cannot be decoded.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	req := &resend.SendEmailRequest{
		From:    s.config.From(),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}

	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	ctx, ex := withExchange(ctx)
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		if ex.accepted() {
			return nil
		}
		if ex.statusCode != 0 {
			return &mailer.ProviderError{
				Provider:   ProviderName,
				StatusCode: ex.statusCode,
				Body:       ex.body,
				Err:        err,
			}
		}
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{Name: name, Value: value})
	}
	return result
}
