package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// SynonymScope is one of the four synonym-exactness tags the OBO guide
// defines.
type SynonymScope string

const (
	ScopeExact   SynonymScope = "EXACT"
	ScopeBroad   SynonymScope = "BROAD"
	ScopeNarrow  SynonymScope = "NARROW"
	ScopeRelated SynonymScope = "RELATED"
)

func validScope(s string) bool {
	switch SynonymScope(s) {
	case ScopeExact, ScopeBroad, ScopeNarrow, ScopeRelated:
		return true
	}
	return false
}

type synonymAST struct {
	Desc   string       `parser:"@QuotedString"`
	Scope  string       `parser:"@Word"`
	TypeId string       `parser:"@Word?"`
	Xrefs  *xrefListAST `parser:"@@?"`
}

var synonymParser = participle.MustBuild[synonymAST](
	participle.Lexer(valueLexer),
	participle.Elide("Whitespace"),
)

// Synonym is a synonym clause's value: the alternate name text, its
// scope, an optional synonym type, and its supporting xrefs.
type Synonym struct {
	Desc       QuotedString
	Scope      SynonymScope
	HasType    bool
	Type       SynonymTypeIdent
	Xrefs      XrefList
}

func (s Synonym) String() string {
	out := fmt.Sprintf("%s %s", s.Desc, s.Scope)
	if s.HasType {
		out += " " + s.Type.String()
	}
	out += " " + s.Xrefs.String()
	return out
}

// ParseSynonym parses a full synonym clause value:
// `"text" SCOPE [synonym_type_id] [xrefs]`.
func ParseSynonym(raw string) (Synonym, error) {
	tree, err := synonymParser.ParseString("", raw)
	if err != nil {
		return Synonym{}, fmt.Errorf("ast: invalid synonym %q: %w", raw, err)
	}
	if !validScope(tree.Scope) {
		return Synonym{}, fmt.Errorf("ast: invalid synonym scope %q", tree.Scope)
	}
	desc, err := ParseQuotedString(tree.Desc)
	if err != nil {
		return Synonym{}, err
	}
	syn := Synonym{Desc: desc, Scope: SynonymScope(tree.Scope)}
	if tree.TypeId != "" {
		typeId, err := ParseSynonymTypeIdent(tree.TypeId)
		if err != nil {
			return Synonym{}, err
		}
		syn.HasType = true
		syn.Type = typeId
	}
	if tree.Xrefs != nil {
		xrefs := XrefList{Xrefs: make([]Xref, 0, len(tree.Xrefs.Xrefs))}
		for _, x := range tree.Xrefs.Xrefs {
			id, err := ParseIdent(x.Id)
			if err != nil {
				return Synonym{}, err
			}
			xr := Xref{Id: id}
			if x.Desc != "" {
				desc, err := ParseQuotedString(x.Desc)
				if err != nil {
					return Synonym{}, err
				}
				xr.HasDesc = true
				xr.Desc = desc
			}
			xrefs.Xrefs = append(xrefs.Xrefs, xr)
		}
		syn.Xrefs = xrefs
	}
	return syn, nil
}
