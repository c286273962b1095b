package words

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corey/wordfreq/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexFinder is a plain bytes.Index implementation of ports.LiteralFinder.
type indexFinder struct{ pattern []byte }

func (f indexFinder) FindAll(text []byte) []ports.Span {
	var spans []ports.Span
	for off := 0; off <= len(text); {
		i := bytes.Index(text[off:], f.pattern)
		if i < 0 {
			break
		}
		start := off + i
		spans = append(spans, ports.Span{Start: start, End: start + len(f.pattern)})
		off = start + 1
	}
	return spans
}

func occurrences(t *testing.T, input, target string) int {
	t.Helper()
	w, err := Normalize(target)
	require.NoError(t, err)
	n, err := Occurrences(strings.NewReader(input), target, indexFinder{[]byte(w)})
	require.NoError(t, err)
	return n
}

func TestOccurrences_BoundaryAndCase(t *testing.T) {
	// "cat " and "Cat " are both bounded by spaces; "cat." would not be.
	assert.Equal(t, 2, occurrences(t, "The cat sat. A Cat ran.", "cat"))
	assert.Equal(t, 0, occurrences(t, "The cat. A Cat.", "cat"))
}

func TestOccurrences_NotInsideOtherWords(t *testing.T) {
	assert.Equal(t, 1, occurrences(t, "concat cat cats scat cat-like \n", "cat"))
}

func TestOccurrences_StartAndEndOfFile(t *testing.T) {
	assert.Equal(t, 1, occurrences(t, "cat and dog", "cat"))
	assert.Equal(t, 0, occurrences(t, "dog and cat", "cat"))
	assert.Equal(t, 1, occurrences(t, "dog and cat\n", "cat"))
}

func TestOccurrences_AcrossLines(t *testing.T) {
	assert.Equal(t, 3, occurrences(t, "cat\ncat\n\tcat\n", "cat"))
}

func TestOccurrences_TrimsAndIgnoresCase(t *testing.T) {
	assert.Equal(t, 2, occurrences(t, "Well-Known well-known \n", "  WELL-known "))
}

func TestOccurrences_OverlapsNeverBothBounded(t *testing.T) {
	assert.Equal(t, 0, occurrences(t, "aaa \n", "aa"))
	assert.Equal(t, 2, occurrences(t, "aa aa \n", "aa"))
}

func TestOccurrences_InvalidTargetBeforeRead(t *testing.T) {
	_, err := Occurrences(failingReader{}, "can't", indexFinder{[]byte("can't")})
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestOccurrences_MatchesScanCount(t *testing.T) {
	inputs := []string{
		"The cat sat. A Cat ran.",
		"at At AT at\nat.\n at",
		"well-known well- well-known\n",
		"x y x z x\n",
	}
	targets := []string{"cat", "at", "well-known", "well-", "x", "z"}
	for _, in := range inputs {
		tbl := scan(t, in)
		for _, target := range targets {
			assert.Equal(t, tbl.Count(target), occurrences(t, in, target),
				"input %q target %q", in, target)
		}
	}
}
