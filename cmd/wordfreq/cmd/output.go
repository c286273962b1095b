package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corey/wordfreq/internal/domain/words"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// paint wraps s in an ANSI code when color is on.
func paint(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

var numberWords = []string{"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten"}

// commonLabel is the line printed above the common words.
func commonLabel(n int) string {
	count := fmt.Sprintf("%d", n)
	if n >= 0 && n < len(numberWords) {
		count = numberWords[n]
	}
	return fmt.Sprintf("The %s most common words are:", count)
}

// formatCommon formats the result of the common query:
//
//	The three most common words are:
//	the, fox, quick
//
// With counts each word renders as "the (3)".
func formatCommon(entries []words.Entry, topN int, counts, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(commonLabel(topN), colorBold, color))
	sb.WriteString("\n")

	if len(entries) == 0 {
		sb.WriteString(paint("(none)", colorGray, color))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(paint(e.Word, colorCyan, color))
		if counts {
			sb.WriteString(paint(fmt.Sprintf(" (%d)", e.Count), colorGray, color))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatOccur formats the result of the occur query.
func formatOccur(word, path string, n int, color bool) string {
	return fmt.Sprintf("The word %s occurs %s time(s) in %s.\n",
		paint(fmt.Sprintf("%q", word), colorCyan, color),
		paint(fmt.Sprintf("%d", n), colorBold, color),
		path)
}

type commonReport struct {
	File  string        `json:"file"`
	Words []words.Entry `json:"words"`
}

type occurReport struct {
	File  string `json:"file"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// writeJSON writes v as one line of JSON.
func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
