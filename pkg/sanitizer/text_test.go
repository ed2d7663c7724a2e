package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ELQUIA-Mainnki/reception/pkg/sanitizer"
)

func TestNFC(t *testing.T) {
	t.Parallel()

	// "ka" followed by a combining dakuten.
	decomposed := "\u304b\u3099"
	assert.Equal(t, "\u304c", sanitizer.NFC(decomposed))
	assert.Equal(t, "plain", sanitizer.NFC("plain"))
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc\nd", sanitizer.NormalizeNewlines("a\r\nb\rc\nd"))
	assert.Equal(t, "no breaks", sanitizer.NormalizeNewlines("no breaks"))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.SingleLine(" a\r\n b\t\tc \n"))
	assert.Equal(t, "", sanitizer.SingleLine("\n\n"))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice", sanitizer.Trim("  Alice \n"))
}
