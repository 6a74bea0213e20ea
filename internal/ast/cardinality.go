package ast

import "github.com/ritamzico/goobo/internal/lex"

// Cardinality is the multiplicity the OBO guide assigns a clause tag
// within one frame.
type Cardinality int

const (
	ZeroOrOne Cardinality = iota
	One
	NotOne
	Any
)

// CheckCardinality compares observed per-tag counts against a table of
// required cardinalities, returning one *lex.CardinalityError per
// violation. Table iteration order is randomized by Go's map
// semantics, so callers that need deterministic output should sort
// the result themselves.
func CheckCardinality(counts map[string]int, table map[string]Cardinality) []error {
	var errs []error
	for tag, card := range table {
		n := counts[tag]
		switch card {
		case One:
			if n == 0 {
				errs = append(errs, lex.MissingClause(tag))
			} else if n > 1 {
				errs = append(errs, lex.DuplicateClause(tag))
			}
		case ZeroOrOne:
			if n > 1 {
				errs = append(errs, lex.DuplicateClause(tag))
			}
		case NotOne:
			if n == 1 {
				errs = append(errs, lex.SingleClause(tag))
			}
		case Any:
			// no constraint
		}
	}
	return errs
}
