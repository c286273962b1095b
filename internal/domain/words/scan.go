package words

import (
	"bufio"
	"io"
)

// Scan reads r once, line by line, and tallies every word in it.
func Scan(r io.Reader) (*Table, error) {
	table := NewTable()
	tok := NewTokenizer()
	err := eachLine(r, func(line []byte) {
		for _, w := range tok.Line(line) {
			table.Add(w)
		}
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ThreeMostCommon returns the three most frequent words of r, most frequent
// first. Ties keep first-seen order.
func ThreeMostCommon(r io.Reader) ([]string, error) {
	table, err := Scan(r)
	if err != nil {
		return nil, err
	}
	top := table.Top(3)
	out := make([]string, len(top))
	for i, e := range top {
		out[i] = e.Word
	}
	return out, nil
}

// eachLine calls fn with every line of r, newline included.
// Lines are not length-limited.
func eachLine(r io.Reader, fn func(line []byte)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			fn(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
