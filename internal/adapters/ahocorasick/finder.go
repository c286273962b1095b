// Package ahocorasick provides literal string matching using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library for O(n + m + z) matching.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/wordfreq/internal/ports"
)

// Finder implements ports.LiteralFinder for one target. The target is a plain
// string, never an expression, so "a.b" only ever matches the three bytes a . b.
type Finder struct {
	automaton aho.AhoCorasick
	empty     bool
}

// NewLiteralFinder compiles an automaton for target.
// Matching is case-sensitive; callers normalize case first.
func NewLiteralFinder(target string) *Finder {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Finder{
		automaton: builder.Build([]string{target}),
		empty:     target == "",
	}
}

// FindAll returns every occurrence of the target in text, including
// overlapping ones, with byte offsets.
func (f *Finder) FindAll(text []byte) []ports.Span {
	if f.empty || len(text) == 0 {
		return nil
	}
	iter := f.automaton.IterOverlappingByte(text)
	var spans []ports.Span
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		spans = append(spans, ports.Span{Start: m.Start(), End: m.End()})
	}
	return spans
}

var _ ports.LiteralFinder = (*Finder)(nil)
