package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// markupPolicy drops every element; text content between tags is kept.
var markupPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// StripHTML removes all markup. The result stays entity-encoded
// ("&" becomes "&amp;").
func StripHTML(s string) string {
	return markupPolicy().Sanitize(s)
}

// PlainText removes all markup and decodes entities. Use it for values
// that leave the HTML document, such as the email subject header.
func PlainText(s string) string {
	return html.UnescapeString(StripHTML(s))
}
