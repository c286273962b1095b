package words

import (
	"io"

	"github.com/corey/wordfreq/internal/ports"
)

// Occurrences counts the words of r equal to target, ignoring case.
//
// finder must report the literal spans of the normalized target in a
// lowercased line; each span is kept only when it sits on word boundaries.
// The result equals Scan(r).Count(target) for the same input.
func Occurrences(r io.Reader, target string, finder ports.LiteralFinder) (int, error) {
	word, err := Normalize(target)
	if err != nil {
		return 0, err
	}

	count := 0
	afterSpace := true // start of input
	var lower []byte
	err = eachLine(r, func(line []byte) {
		lower = lowerASCII(lower, line)
		for _, span := range finder.FindAll(lower) {
			if span.End-span.Start != len(word) {
				continue
			}
			left := afterSpace
			if span.Start > 0 {
				left = isSpace(lower[span.Start-1])
			}
			right := span.End < len(lower) && isSpace(lower[span.End])
			if left && right {
				count++
			}
		}
		afterSpace = isSpace(line[len(line)-1])
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
