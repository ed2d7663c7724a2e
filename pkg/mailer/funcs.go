package mailer

import (
	"html/template"
	"strings"
)

// templateFuncs are available to every HTML template body.
var templateFuncs = template.FuncMap{
	"nl2br": nl2br,
}

// nl2br escapes s and turns each line break into <br>.
// CRLF and lone CR count as a single line break.
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")) //nolint:gosec // input escaped above
}
