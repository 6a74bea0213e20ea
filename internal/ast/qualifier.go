package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type qualifierAST struct {
	Key   string `parser:"@Word \"=\""`
	Value string `parser:"@QuotedString"`
}

type qualifierListAST struct {
	Qualifiers []*qualifierAST `parser:"\"{\" (@@ (\",\" @@)*)? \"}\""`
}

var qualifierListParser = participle.MustBuild[qualifierListAST](
	participle.Lexer(valueLexer),
	participle.Elide("Whitespace"),
)

// Qualifier is one key="value" pair of a trailing qualifier list, the
// `{...}` suffix the OBO guide allows on most clause types.
type Qualifier struct {
	Key   string
	Value QuotedString
}

func (q Qualifier) String() string { return fmt.Sprintf("%s=%s", q.Key, q.Value) }

// QualifierList is the parenthesized, comma-separated `{k=v, ...}`
// suffix attachable to most clause lines.
type QualifierList struct {
	Qualifiers []Qualifier
}

func (q QualifierList) String() string {
	if len(q.Qualifiers) == 0 {
		return ""
	}
	parts := make([]string, len(q.Qualifiers))
	for i, qq := range q.Qualifiers {
		parts[i] = qq.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ParseQualifierList parses a `{...}` fragment, including the braces.
func ParseQualifierList(raw string) (QualifierList, error) {
	tree, err := qualifierListParser.ParseString("", raw)
	if err != nil {
		return QualifierList{}, fmt.Errorf("ast: invalid qualifier list %q: %w", raw, err)
	}
	out := QualifierList{Qualifiers: make([]Qualifier, 0, len(tree.Qualifiers))}
	for _, q := range tree.Qualifiers {
		qs, err := ParseQuotedString(q.Value)
		if err != nil {
			return QualifierList{}, err
		}
		out.Qualifiers = append(out.Qualifiers, Qualifier{Key: q.Key, Value: qs})
	}
	return out, nil
}
