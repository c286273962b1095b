package words

import "strings"

// Tokenizer extracts words from the consecutive lines of one input.
//
// Lines must be passed whole and in order, each including its trailing
// newline (the last line of the input may lack one). The tokenizer remembers
// whether the previous line ended in whitespace, so the newline of one line
// is the left boundary of the first word on the next.
type Tokenizer struct {
	afterSpace bool
}

// NewTokenizer returns a tokenizer positioned at the start of an input.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{afterSpace: true}
}

// Line returns the lowercased words of line, left to right.
// Returns nil if the line holds no words.
func (t *Tokenizer) Line(line []byte) []string {
	var out []string
	i := 0
	for i < len(line) {
		if isSpace(line[i]) {
			t.afterSpace = true
			i++
			continue
		}

		// Consume the whole whitespace-delimited field. A word can only
		// start right after whitespace, so a field is either one word or
		// nothing.
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		bounded := t.afterSpace && i < len(line)
		t.afterSpace = false

		if bounded && valid(line[start:i]) {
			out = append(out, strings.ToLower(string(line[start:i])))
		}
	}
	return out
}
