package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		metadata map[string]any
		body     string
	}{
		{
			name:     "subject with template action",
			content:  "---\nSubject: \"[Form] {{.Subject}}\"\n---\n<p>{{.Name}}</p>\n",
			metadata: map[string]any{"Subject": "[Form] {{.Subject}}"},
			body:     "<p>{{.Name}}</p>\n",
		},
		{
			name:     "no frontmatter",
			content:  "<p>plain</p>",
			metadata: map[string]any{},
			body:     "<p>plain</p>",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody",
			metadata: map[string]any{},
			body:     "Body",
		},
		{
			name:     "blank line frontmatter",
			content:  "---\n\n---\nBody",
			metadata: map[string]any{},
			body:     "Body",
		},
		{
			name:     "windows line endings",
			content:  "---\r\nSubject: Test\r\n---\r\nBody",
			metadata: map[string]any{"Subject": "Test"},
			body:     "Body",
		},
		{
			name:     "empty body",
			content:  "---\nSubject: Test\n---\n",
			metadata: map[string]any{"Subject": "Test"},
			body:     "",
		},
		{
			name:     "numeric values",
			content:  "---\nSubject: Order\nOrderID: 12345\n---\nBody",
			metadata: map[string]any{"Subject": "Order", "OrderID": 12345},
			body:     "Body",
		},
		{
			name:     "empty content",
			content:  "",
			metadata: map[string]any{},
			body:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.metadata, tmpl.Metadata)
			require.Equal(t, tt.body, tmpl.Body)
		})
	}
}

func TestParseTemplate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing closing delimiter", content: "---\nSubject: Test\nBody"},
		{name: "only opening delimiter", content: "---"},
		{name: "broken yaml", content: "---\nSubject: [unclosed\n---\nBody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
			require.Nil(t, tmpl)
		})
	}
}

func TestParseTemplate_BodyKeepsLaterDelimiters(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\nSubject: X\n---\n<pre>\n---\nkey: value\n---\n</pre>"))
	require.NoError(t, err)
	require.Equal(t, "X", tmpl.Metadata["Subject"])
	require.Equal(t, "<pre>\n---\nkey: value\n---\n</pre>", tmpl.Body)
}
