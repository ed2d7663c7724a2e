// Package requests defines the payloads accepted by the HTTP handlers.
package requests

import (
	"errors"
	"net/mail"
)

// Contact labels shown in the relayed email.
const (
	LabelEmail = "メール"
	LabelPhone = "電話"

	// ExtraPlaceholder replaces an absent or empty extra field.
	ExtraPlaceholder = "なし"

	// ContactTypeEmail is the only contact_type value that selects LabelEmail.
	ContactTypeEmail = "email"
)

// ErrMissingContent is returned in lenient mode when the form has no content field.
var ErrMissingContent = errors.New("missing form field: content")

// Submission is a contact form post.
// The validate tags describe strict mode; lenient mode only requires that
// the content field is present. contact_type and extra are not trimmed:
// " email" is a phone contact and a blank extra is kept as sent.
type Submission struct {
	Name        string `form:"name" sanitize:"trim,nfc,singleline" validate:"required"`
	ContactType string `form:"contact_type" validate:"omitempty,oneof=email phone"`
	ContactInfo string `form:"contact_info" sanitize:"trim,nfc,singleline" validate:"required"`
	Subject     string `form:"subject" sanitize:"strip,trim,nfc,singleline" validate:"required"`
	Content     string `form:"content" sanitize:"trim,nfc,newlines" validate:"required"`
	Extra       string `form:"extra" sanitize:"nfc,newlines"`
}

// IsEmailContact reports whether the submitter asked to be answered by email.
func (s Submission) IsEmailContact() bool {
	return s.ContactType == ContactTypeEmail
}

// ContactLabel returns the label for the submitter's contact method.
// Anything other than "email", including an empty value, is a phone contact.
func (s Submission) ContactLabel() string {
	if s.IsEmailContact() {
		return LabelEmail
	}
	return LabelPhone
}

// ExtraOrDefault returns the extra field or ExtraPlaceholder when it is empty.
func (s Submission) ExtraOrDefault() string {
	if s.Extra == "" {
		return ExtraPlaceholder
	}
	return s.Extra
}

// ReplyTo returns the address replies should go to, or "" when the
// submitter did not leave a usable email address.
func (s Submission) ReplyTo() string {
	if !s.IsEmailContact() {
		return ""
	}
	addr, err := mail.ParseAddress(s.ContactInfo)
	if err != nil {
		return ""
	}
	return addr.Address
}
