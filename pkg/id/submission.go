package id

import "github.com/google/uuid"

// NewSubmissionID returns a time-ordered UUIDv7 string used to correlate a
// form submission across logs and the provider's email tags.
func NewSubmissionID() string {
	if u, err := uuid.NewV7(); err == nil {
		return u.String()
	}
	return uuid.NewString()
}
