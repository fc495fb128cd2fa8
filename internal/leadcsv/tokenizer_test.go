package leadcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimpleFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Tokenize("a,b,c"))
}

func TestTokenizeQuotedComma(t *testing.T) {
	assert.Equal(t, []string{"a,b", "c"}, Tokenize(`"a,b",c`))
}

func TestTokenizeEscapedQuoteInsideQuotedSpan(t *testing.T) {
	// "" inside quotes is a literal quote.
	assert.Equal(t, []string{`say "hi"`, "c"}, Tokenize(`"say ""hi""",c`))
}

func TestTokenizeDoubledQuoteOutsideQuotedSpan(t *testing.T) {
	// Outside a quoted span the first quote opens one and the second closes
	// it immediately, so both disappear.
	assert.Equal(t, []string{"ab", "c"}, Tokenize(`a""b,c`))
}

func TestTokenizeUnterminatedQuoteClosesAtEOL(t *testing.T) {
	// No error; end of line is an implicit close.
	assert.Equal(t, []string{"a,b"}, Tokenize(`"a,b`))
}

func TestTokenizeEmptyLineYieldsOneEmptyField(t *testing.T) {
	assert.Equal(t, []string{""}, Tokenize(""))
}

func TestTokenizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Tokenize("  a , b ,c  "))
}

func TestTokenizeTrailingComma(t *testing.T) {
	assert.Equal(t, []string{"a", ""}, Tokenize("a,"))
}
