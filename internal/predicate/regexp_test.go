package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteValue_PrefersSingleQuote(t *testing.T) {
	v := "hello world"
	assert.Equal(t, "'hello world'", QuoteValue(&v))
}

func TestQuoteValue_FallsBackToDoubleQuote(t *testing.T) {
	v := "it's fine"
	assert.Equal(t, `"it's fine"`, QuoteValue(&v))
}

func TestQuoteValue_EscapesControlChars(t *testing.T) {
	v := "a\nb\tc\\d"
	assert.Equal(t, `'a\nb\tc\\d'`, QuoteValue(&v))
}

func TestQuoteValue_Nil(t *testing.T) {
	assert.Equal(t, "", QuoteValue(nil))
}

func TestRegexpValue_EscapesMetacharacters(t *testing.T) {
	v := "a.b"
	assert.Equal(t, `'a\\.b'`, RegexpValue(&v, 8))
}

func TestRegexpValue_BracketBecomesDot(t *testing.T) {
	v := "a]b"
	assert.Equal(t, "'a.b'", RegexpValue(&v, 8))
}

func TestRegexpValue_TruncatesLongValues(t *testing.T) {
	v := "abcdefghijklmnop"
	got := RegexpValue(&v, 4)
	assert.Contains(t, got, ".*")
}

func TestRegexpValue_TruncationSkipsEscapedByteAtBoundary(t *testing.T) {
	v := "abcdef]ghij"
	assert.Equal(t, "'abcdef.g.*'", RegexpValue(&v, 6))
}
