// Package emails embeds the templates of the messages the service sends.
package emails

import (
	"embed"

	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
	"github.com/ELQUIA-Mainnki/reception/requests"
)

// Template and layout names within FS.
const (
	InquiryTemplate = "inquiry.html"
	BaseLayout      = "base.html"
)

//go:embed *.html *.txt layouts/*.html
var FS embed.FS

// Inquiry is the data rendered into InquiryTemplate and its subject.
type Inquiry struct {
	requests.Submission
	SubmissionID string
}

// NewRenderer returns a mailer.Renderer reading the embedded templates.
func NewRenderer() *mailer.Renderer {
	return mailer.NewRenderer(FS)
}
