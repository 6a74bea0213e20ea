package lex

import "fmt"

// SyntaxError reports a grammar production that failed to recognize its
// input, located at a document-absolute line/column/byte offset. Workers
// in the threaded parser and the sequential parser's per-line retokenizer
// both produce SyntaxError values scoped to the text they were handed,
// then rebase them to document coordinates with WithOffsets before
// returning them to the caller.
type SyntaxError struct {
	Rule     Rule
	Expected string
	Line     int
	Column   int
	Offset   int
	Cause    error
}

func (e *SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s:%d:%d: expected %s", e.Rule, e.Line, e.Column, e.Expected)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Rule, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// WithOffsets returns a copy of e rebased by the given line count and
// byte count, for turning an error local to one retokenized line or one
// worker's chunk into one expressed in whole-document coordinates.
func (e *SyntaxError) WithOffsets(lineOffset, byteOffset int) *SyntaxError {
	rebased := *e
	rebased.Line += lineOffset
	rebased.Offset += byteOffset
	return &rebased
}

// NewSyntaxError builds a SyntaxError for rule at the given 1-based line
// and column and 0-based byte offset, wrapping cause if non-nil.
func NewSyntaxError(rule Rule, expected string, line, column, offset int, cause error) *SyntaxError {
	return &SyntaxError{Rule: rule, Expected: expected, Line: line, Column: column, Offset: offset, Cause: cause}
}

// CardinalityKind distinguishes the three ways a clause tag's observed
// count can disagree with the multiplicity the OBO guide assigns it.
type CardinalityKind string

const (
	CardinalityMissing   CardinalityKind = "missing"
	CardinalityDuplicate CardinalityKind = "duplicate"
	CardinalitySingle    CardinalityKind = "not-one"
)

// CardinalityError reports that a clause tag appeared a number of times
// incompatible with its required multiplicity (ZeroOrOne, One, NotOne,
// Any), mirroring the OBO guide's per-tag cardinality table.
type CardinalityError struct {
	Kind CardinalityKind
	Tag  string
}

func (e *CardinalityError) Error() string {
	switch e.Kind {
	case CardinalityMissing:
		return fmt.Sprintf("missing required clause %q", e.Tag)
	case CardinalityDuplicate:
		return fmt.Sprintf("clause %q must appear at most once", e.Tag)
	case CardinalitySingle:
		return fmt.Sprintf("clause %q must not appear exactly once", e.Tag)
	default:
		return fmt.Sprintf("clause %q has invalid cardinality", e.Tag)
	}
}

// MissingClause reports a One-cardinality tag that never appeared.
func MissingClause(tag string) *CardinalityError {
	return &CardinalityError{Kind: CardinalityMissing, Tag: tag}
}

// DuplicateClause reports a ZeroOrOne/One-cardinality tag seen twice.
func DuplicateClause(tag string) *CardinalityError {
	return &CardinalityError{Kind: CardinalityDuplicate, Tag: tag}
}

// SingleClause reports a NotOne-cardinality tag seen exactly once.
func SingleClause(tag string) *CardinalityError {
	return &CardinalityError{Kind: CardinalitySingle, Tag: tag}
}

// ThreadingError reports a failure in the worker-pool streaming parser's
// channel plumbing, distinct from a SyntaxError produced by a worker.
type ThreadingError struct {
	Kind    string
	Message string
}

func (e *ThreadingError) Error() string { return fmt.Sprintf("threading: %s: %s", e.Kind, e.Message) }

// DisconnectedChannel reports that a worker's result channel closed
// before the dispatcher received an expected value, which only happens
// if a worker goroutine panicked or exited early.
func DisconnectedChannel(detail string) *ThreadingError {
	return &ThreadingError{Kind: "DisconnectedChannel", Message: detail}
}
