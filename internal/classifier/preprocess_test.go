package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_StripsURLsAndPunctuation(t *testing.T) {
	got := CleanText("Check https://example.com/profile - C++, SQL & Go!")

	assert.Equal(t, "check c sql go", got)
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	got := CleanText("  python \t\n  sql  ")

	assert.Equal(t, "python sql", got)
}

func TestTokenize_RemovesStopwords(t *testing.T) {
	got := Tokenize("I have been working with Python and the Go language")

	assert.Equal(t, []string{"working", "python", "go", "language"}, got)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   "))
}
