package mailer

// Tags are provider-side labels attached to a message.
// Resend stores them as name/value pairs searchable in its dashboard.
type Tags map[string]string

// Email is a rendered message ready for a Sender.
type Email struct {
	Headers map[string]string // Extra message headers
	Tags    Tags
	Subject string
	HTML    string
	Text    string // Plain-text alternative; omitted when empty
	ReplyTo string
	To      []string
}
