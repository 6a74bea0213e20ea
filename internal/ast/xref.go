package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type xrefAST struct {
	Id   string `parser:"@Word"`
	Desc string `parser:"@QuotedString?"`
}

type xrefListAST struct {
	Xrefs []*xrefAST `parser:"\"[\" (@@ (\",\" @@)*)? \"]\""`
}

var xrefListParser = participle.MustBuild[xrefListAST](
	participle.Lexer(valueLexer),
	participle.Elide("Whitespace"),
)

// Xref is one dbxref entry: an identifier and an optional quoted
// human-readable description.
type Xref struct {
	Id      Ident
	HasDesc bool
	Desc    QuotedString
}

func (x Xref) String() string {
	if !x.HasDesc {
		return x.Id.String()
	}
	return fmt.Sprintf("%s %s", x.Id, x.Desc)
}

// ParseXref parses a single xref entry, e.g. `GO:1234` or
// `GO:1234 "some description"`, by wrapping it in brackets and reusing
// the list grammar.
func ParseXref(raw string) (Xref, error) {
	list, err := ParseXrefList("[" + raw + "]")
	if err != nil {
		return Xref{}, fmt.Errorf("ast: invalid xref %q: %w", raw, err)
	}
	if len(list.Xrefs) != 1 {
		return Xref{}, fmt.Errorf("ast: expected exactly one xref in %q", raw)
	}
	return list.Xrefs[0], nil
}

// XrefList is the bracketed, comma-separated `[...]` list of dbxrefs
// attached to def, synonym, and other clauses.
type XrefList struct {
	Xrefs []Xref
}

func (x XrefList) String() string {
	parts := make([]string, len(x.Xrefs))
	for i, xx := range x.Xrefs {
		parts[i] = xx.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ParseXrefList parses a `[...]` fragment, including the brackets.
func ParseXrefList(raw string) (XrefList, error) {
	tree, err := xrefListParser.ParseString("", raw)
	if err != nil {
		return XrefList{}, fmt.Errorf("ast: invalid xref list %q: %w", raw, err)
	}
	out := XrefList{Xrefs: make([]Xref, 0, len(tree.Xrefs))}
	for _, x := range tree.Xrefs {
		id, err := ParseIdent(x.Id)
		if err != nil {
			return XrefList{}, err
		}
		xr := Xref{Id: id}
		if x.Desc != "" {
			desc, err := ParseQuotedString(x.Desc)
			if err != nil {
				return XrefList{}, err
			}
			xr.HasDesc = true
			xr.Desc = desc
		}
		out.Xrefs = append(out.Xrefs, xr)
	}
	return out, nil
}
