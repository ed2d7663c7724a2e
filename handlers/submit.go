// Package handlers implements the HTTP endpoints of the reception service.
package handlers

import (
	"net/http"
	"strings"

	"github.com/ELQUIA-Mainnki/reception/emails"
	"github.com/ELQUIA-Mainnki/reception/internal"
	"github.com/ELQUIA-Mainnki/reception/pkg/id"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
	"github.com/ELQUIA-Mainnki/reception/requests"
)

// DefaultSubmitPath is the route the form posts to.
const DefaultSubmitPath = "/api/submit"

// EntityRefHeader carries the submission ID on the relayed email.
// Gmail does not thread messages whose X-Entity-Ref-ID differs.
const EntityRefHeader = "X-Entity-Ref-ID"

// SubmitConfig configures the submit endpoint.
type SubmitConfig struct {
	Path string // Route (default: DefaultSubmitPath)
	To   string // Recipient of relayed submissions

	// Strict rejects incomplete submissions with 400. When false only a
	// missing content field fails, as a server error.
	Strict bool
}

// Submit relays contact form posts by email.
type Submit struct {
	mailer *mailer.Mailer
	cfg    SubmitConfig
}

// NewSubmit creates the submit handler.
func NewSubmit(m *mailer.Mailer, cfg SubmitConfig) *Submit {
	if cfg.Path == "" {
		cfg.Path = DefaultSubmitPath
	}
	return &Submit{mailer: m, cfg: cfg}
}

// Routes implements internal.Handler.
func (h *Submit) Routes(r internal.Router) {
	r.POST(h.cfg.Path, h.submit)
}

type submitResponse struct {
	Success bool `json:"success"`
}

func (h *Submit) submit(c internal.Context) error {
	var sub requests.Submission
	verrs, err := c.Bind(&sub)
	if err != nil {
		return err
	}

	if h.cfg.Strict && len(verrs) > 0 {
		fields := verrs.Fields()
		c.LogWarn("invalid submission", "fields", fields)
		return c.Error(http.StatusBadRequest,
			"Invalid Submission: "+strings.Join(fields, ", "),
			internal.WithError(verrs),
		)
	}
	if !h.cfg.Strict && !c.HasForm("content") {
		return requests.ErrMissingContent
	}

	submissionID := id.NewSubmissionID()
	err = h.mailer.Send(c, mailer.SendParams{
		To:       h.cfg.To,
		Template: emails.InquiryTemplate,
		Data:     emails.Inquiry{Submission: sub, SubmissionID: submissionID},
		ReplyTo:  sub.ReplyTo(),
		Headers:  map[string]string{EntityRefHeader: submissionID},
		Tags:     mailer.Tags{"submission_id": submissionID},
	})
	if err != nil {
		if pe, ok := mailer.AsProviderError(err); ok {
			c.LogError("provider rejected email",
				"submission_id", submissionID,
				"status", pe.StatusCode,
				"payload", string(pe.Body),
			)
		}
		return err
	}

	c.LogInfo("submission relayed",
		"submission_id", submissionID,
		"contact_type", sub.ContactLabel(),
	)
	return c.JSON(http.StatusOK, submitResponse{Success: true})
}
