package parser

import (
	"fmt"
	"strings"

	"github.com/ritamzico/goobo/internal/ast"
	"github.com/ritamzico/goobo/internal/cache"
	"github.com/ritamzico/goobo/internal/lex"
)

// intern returns c.Intern(s) when c is non-nil, s otherwise; every
// clause-line string gets interned before parsing so that workers in
// the threaded parser, which all share one *cache.Cache, keep one copy
// of each clause line repeated verbatim across a large ontology. Tags,
// prefixes and local ids are not interned on their own.
func intern(c *cache.Cache, s string) string {
	if c == nil {
		return s
	}
	return c.Intern(s)
}

// ParseHeaderText parses the document-leading run of clause lines
// (everything before the first frame marker) into a HeaderFrame. Any
// SyntaxError it produces is relative to text; callers rebase it with
// WithOffsets before returning it to the document caller.
func ParseHeaderText(text string, c *cache.Cache) (ast.HeaderFrame, error) {
	var frame ast.HeaderFrame
	for _, span := range SplitLines(text) {
		if isBlank(span.Text) {
			continue
		}
		clause, err := ast.ParseHeaderClause(intern(c, span.Text))
		if err != nil {
			line, col := lex.Position([]byte(text), span.Offset)
			return frame, lex.NewSyntaxError(lex.RuleHeaderClause, err.Error(), line, col, span.Offset, err)
		}
		frame.Clauses = append(frame.Clauses, clause)
	}
	return frame, nil
}

// ParseEntityText parses one entity frame's text (the marker line plus
// every clause line up to, but excluding, the next marker) into the
// concrete EntityFrame the marker names.
func ParseEntityText(marker lex.FrameMarker, text string, c *cache.Cache) (ast.EntityFrame, error) {
	spans := SplitLines(text)
	if len(spans) == 0 || !strings.HasPrefix(strings.TrimSpace(spans[0].Text), "[") {
		return nil, fmt.Errorf("parser: entity frame text missing marker line")
	}
	body := spans[1:]

	switch marker {
	case lex.MarkerTerm:
		var frame ast.TermFrame
		for _, span := range body {
			if isBlank(span.Text) {
				continue
			}
			clause, err := ast.ParseTermClause(intern(c, span.Text))
			if err != nil {
				line, col := lex.Position([]byte(text), span.Offset)
				return nil, lex.NewSyntaxError(lex.RuleTermClause, err.Error(), line, col, span.Offset, err)
			}
			frame.Clauses = append(frame.Clauses, clause)
		}
		return frame, nil
	case lex.MarkerTypedef:
		var frame ast.TypedefFrame
		for _, span := range body {
			if isBlank(span.Text) {
				continue
			}
			clause, err := ast.ParseTypedefClause(intern(c, span.Text))
			if err != nil {
				line, col := lex.Position([]byte(text), span.Offset)
				return nil, lex.NewSyntaxError(lex.RuleTypedefClause, err.Error(), line, col, span.Offset, err)
			}
			frame.Clauses = append(frame.Clauses, clause)
		}
		return frame, nil
	case lex.MarkerInstance:
		var frame ast.InstanceFrame
		for _, span := range body {
			if isBlank(span.Text) {
				continue
			}
			clause, err := ast.ParseInstanceClause(intern(c, span.Text))
			if err != nil {
				line, col := lex.Position([]byte(text), span.Offset)
				return nil, lex.NewSyntaxError(lex.RuleInstanceClause, err.Error(), line, col, span.Offset, err)
			}
			frame.Clauses = append(frame.Clauses, clause)
		}
		return frame, nil
	default:
		return nil, fmt.Errorf("parser: unknown frame marker %q", marker)
	}
}
