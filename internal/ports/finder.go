// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain and app code depend only on these interfaces, never on concrete
// adapters.
package ports

// Span is a half-open byte range [Start, End) reported by a LiteralFinder.
type Span struct {
	Start int
	End   int
}

// LiteralFinder locates one fixed string in text. The target is matched byte
// for byte; no character has special meaning, so callers never escape input.
type LiteralFinder interface {
	// FindAll returns every occurrence of the target in text, overlapping
	// occurrences included, in scan order.
	FindAll(text []byte) []Span
}
