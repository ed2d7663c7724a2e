package mailer

// Config holds the defaults applied by Mailer.Send.
type Config struct {
	// FallbackSubject is used when neither SendParams nor the template
	// frontmatter set a subject.
	FallbackSubject string `env:"MAIL_FALLBACK_SUBJECT" envDefault:"[Form]"`

	// DefaultLayout wraps every template unless SendParams.Layout is set.
	DefaultLayout string `env:"MAIL_LAYOUT" envDefault:"base.html" validate:"required"`
}
