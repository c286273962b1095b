// Package words implements the word grammar, the line tokenizer and the
// frequency table behind the common and occur queries.
//
// A word is a run of ASCII letters that may contain one hyphen
// ("well-known", and also "well-"), preceded by whitespace or the start of
// the input and followed by whitespace. A word at the very end of the input
// with nothing after it is not counted.
package words

import "strings"

// isSpace reports whether c separates words.
// Matches the ASCII members of the \s class: space, \t, \n, \r, \v, \f.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// valid reports whether s is letters+, an optional hyphen, then letters*.
func valid[T string | []byte](s T) bool {
	if len(s) == 0 || !isLetter(s[0]) {
		return false
	}
	hyphen := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c):
		case c == '-' && !hyphen:
			hyphen = true
		default:
			return false
		}
	}
	return true
}

// Valid reports whether s, taken as a whole, is a syntactically valid word.
// Surrounding whitespace is not trimmed.
func Valid(s string) bool {
	return valid(s)
}

// Normalize trims target and returns its lowercased form.
// Returns ErrInvalidWord if the trimmed target is not a valid word.
func Normalize(target string) (string, error) {
	w := strings.TrimSpace(target)
	if !Valid(w) {
		return "", &InvalidWordError{Word: target}
	}
	return strings.ToLower(w), nil
}

// lowerASCII lowercases ASCII letters of src into dst, leaving every other
// byte untouched so offsets stay aligned with src.
func lowerASCII(dst, src []byte) []byte {
	dst = append(dst[:0], src...)
	for i, c := range dst {
		if 'A' <= c && c <= 'Z' {
			dst[i] = c + ('a' - 'A')
		}
	}
	return dst
}
