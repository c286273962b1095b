package words

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"cat", true},
		{"Cat", true},
		{"well-known", true},
		{"well-", true}, // trailing hyphen is allowed by the grammar
		{"a", true},
		{"", false},
		{"-well", false},
		{"a-b-c", false},
		{"well--known", false},
		{"can't", false},
		{"forebodings.", false},
		{"abc123", false},
		{"café", false},
		{" cat", false},
		{"a.b", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestNormalize_TrimsAndLowercases(t *testing.T) {
	w, err := Normalize("  Well-Known\t")
	require.NoError(t, err)
	assert.Equal(t, "well-known", w)
}

func TestNormalize_RejectsInvalid(t *testing.T) {
	_, err := Normalize("can't")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidWord))
	assert.Equal(t, `"can't" is not a valid word`, err.Error())

	var iw *InvalidWordError
	require.ErrorAs(t, err, &iw)
	assert.Equal(t, "can't", iw.Word)
}

func TestNormalize_RejectsBlank(t *testing.T) {
	_, err := Normalize("   ")
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestLowerASCII_KeepsOffsets(t *testing.T) {
	src := []byte("CAFÉ Cat")
	got := lowerASCII(nil, src)
	assert.Len(t, got, len(src))
	assert.Equal(t, "cafÉ cat", string(got))
}
