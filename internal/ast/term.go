package ast

import (
	"fmt"
	"sort"
	"strings"
)

// TermClause is the sum type of every clause a [Term] frame can carry.
type TermClause interface {
	fmt.Stringer
	TermTag() string
}

var TermCardinality = map[string]Cardinality{
	"id":           One,
	"is_anonymous": ZeroOrOne,
	"name":         One,
	"namespace":    ZeroOrOne,
	"def":          ZeroOrOne,
	"comment":      ZeroOrOne,
	"is_obsolete":  ZeroOrOne,
	"created_by":   ZeroOrOne,
	"creation_date": ZeroOrOne,
	"builtin":      ZeroOrOne,
}

type tcId struct{ Id ClassIdent }
type tcIsAnonymous struct{ Value bool }
type tcName struct{ Value UnquotedString }
type tcNamespace struct{ Value NamespaceIdent }
type tcAltId struct{ Value Ident }
type tcDef struct {
	Desc  QuotedString
	Xrefs XrefList
}
type tcComment struct{ Value UnquotedString }
type tcSubset struct{ Value SubsetIdent }
type tcSynonym struct{ Value Synonym }
type tcXref struct{ Value Xref }
type tcBuiltin struct{ Value bool }
type tcPropertyValue struct{ Value PropertyValue }
type tcIsA struct{ Value ClassIdent }
type tcIntersectionOf struct {
	HasRelation bool
	Relation    RelationIdent
	Class       ClassIdent
}
type tcUnionOf struct{ Value ClassIdent }
type tcEquivalentTo struct{ Value ClassIdent }
type tcDisjointFrom struct{ Value ClassIdent }
type tcRelationship struct {
	Relation RelationIdent
	Class    ClassIdent
}
type tcCreatedBy struct{ Value UnquotedString }
type tcCreationDate struct{ Value CreationDate }
type tcIsObsolete struct{ Value bool }
type tcReplacedBy struct{ Value ClassIdent }
type tcConsider struct{ Value ClassIdent }

func (c tcId) TermTag() string            { return "id" }
func (c tcIsAnonymous) TermTag() string    { return "is_anonymous" }
func (c tcName) TermTag() string          { return "name" }
func (c tcNamespace) TermTag() string     { return "namespace" }
func (c tcAltId) TermTag() string         { return "alt_id" }
func (c tcDef) TermTag() string           { return "def" }
func (c tcComment) TermTag() string       { return "comment" }
func (c tcSubset) TermTag() string        { return "subset" }
func (c tcSynonym) TermTag() string       { return "synonym" }
func (c tcXref) TermTag() string          { return "xref" }
func (c tcBuiltin) TermTag() string       { return "builtin" }
func (c tcPropertyValue) TermTag() string { return "property_value" }
func (c tcIsA) TermTag() string           { return "is_a" }
func (c tcIntersectionOf) TermTag() string { return "intersection_of" }
func (c tcUnionOf) TermTag() string        { return "union_of" }
func (c tcEquivalentTo) TermTag() string   { return "equivalent_to" }
func (c tcDisjointFrom) TermTag() string   { return "disjoint_from" }
func (c tcRelationship) TermTag() string   { return "relationship" }
func (c tcCreatedBy) TermTag() string      { return "created_by" }
func (c tcCreationDate) TermTag() string   { return "creation_date" }
func (c tcIsObsolete) TermTag() string     { return "is_obsolete" }
func (c tcReplacedBy) TermTag() string     { return "replaced_by" }
func (c tcConsider) TermTag() string       { return "consider" }

func (c tcId) String() string           { return "id: " + c.Id.String() }
func (c tcIsAnonymous) String() string   { return "is_anonymous: " + formatBoolean(c.Value) }
func (c tcName) String() string         { return "name: " + c.Value.String() }
func (c tcNamespace) String() string    { return "namespace: " + c.Value.String() }
func (c tcAltId) String() string        { return "alt_id: " + c.Value.String() }
func (c tcDef) String() string {
	return fmt.Sprintf("def: %s %s", c.Desc, c.Xrefs)
}
func (c tcComment) String() string       { return "comment: " + c.Value.String() }
func (c tcSubset) String() string        { return "subset: " + c.Value.String() }
func (c tcSynonym) String() string       { return "synonym: " + c.Value.String() }
func (c tcXref) String() string          { return "xref: " + c.Value.String() }
func (c tcBuiltin) String() string       { return "builtin: " + formatBoolean(c.Value) }
func (c tcPropertyValue) String() string { return "property_value: " + c.Value.String() }
func (c tcIsA) String() string           { return "is_a: " + c.Value.String() }
func (c tcIntersectionOf) String() string {
	if c.HasRelation {
		return fmt.Sprintf("intersection_of: %s %s", c.Relation, c.Class)
	}
	return "intersection_of: " + c.Class.String()
}
func (c tcUnionOf) String() string      { return "union_of: " + c.Value.String() }
func (c tcEquivalentTo) String() string { return "equivalent_to: " + c.Value.String() }
func (c tcDisjointFrom) String() string { return "disjoint_from: " + c.Value.String() }
func (c tcRelationship) String() string {
	return fmt.Sprintf("relationship: %s %s", c.Relation, c.Class)
}
func (c tcCreatedBy) String() string    { return "created_by: " + c.Value.String() }
func (c tcCreationDate) String() string { return "creation_date: " + c.Value.String() }
func (c tcIsObsolete) String() string   { return "is_obsolete: " + formatBoolean(c.Value) }
func (c tcReplacedBy) String() string   { return "replaced_by: " + c.Value.String() }
func (c tcConsider) String() string     { return "consider: " + c.Value.String() }

// ParseTermClause dispatches a raw "tag: value" clause line from a
// [Term] frame body to its typed clause.
func ParseTermClause(line string) (TermClause, error) {
	tag, value, ok := SplitTag(line)
	if !ok {
		return nil, fmt.Errorf("ast: term clause %q missing ':'", line)
	}
	value, _, _ = SplitTrailingComment(value)
	value = strings.TrimSpace(value)
	switch tag {
	case "id":
		id, err := ParseClassIdent(value)
		return tcId{id}, err
	case "is_anonymous":
		b, err := parseBoolean(value)
		return tcIsAnonymous{b}, err
	case "name":
		u, err := ParseUnquotedString(value)
		return tcName{u}, err
	case "namespace":
		ns, err := ParseNamespaceIdent(value)
		return tcNamespace{ns}, err
	case "alt_id":
		id, err := ParseIdent(value)
		return tcAltId{id}, err
	case "def":
		desc, xrefs, err := splitQuotedThenBracket(value)
		return tcDef{Desc: desc, Xrefs: xrefs}, err
	case "comment":
		u, err := ParseUnquotedString(value)
		return tcComment{u}, err
	case "subset":
		s, err := ParseSubsetIdent(value)
		return tcSubset{s}, err
	case "synonym":
		s, err := ParseSynonym(value)
		return tcSynonym{s}, err
	case "xref":
		x, err := ParseXref(value)
		return tcXref{x}, err
	case "builtin":
		b, err := parseBoolean(value)
		return tcBuiltin{b}, err
	case "property_value":
		pv, err := ParsePropertyValue(value)
		return tcPropertyValue{pv}, err
	case "is_a":
		id, err := ParseClassIdent(value)
		return tcIsA{id}, err
	case "intersection_of":
		fields := strings.Fields(value)
		switch len(fields) {
		case 1:
			c, err := ParseClassIdent(fields[0])
			return tcIntersectionOf{Class: c}, err
		case 2:
			rel, err := ParseRelationIdent(fields[0])
			if err != nil {
				return nil, err
			}
			c, err := ParseClassIdent(fields[1])
			return tcIntersectionOf{HasRelation: true, Relation: rel, Class: c}, err
		default:
			return nil, fmt.Errorf("ast: invalid intersection_of %q", value)
		}
	case "union_of":
		c, err := ParseClassIdent(value)
		return tcUnionOf{c}, err
	case "equivalent_to":
		c, err := ParseClassIdent(value)
		return tcEquivalentTo{c}, err
	case "disjoint_from":
		c, err := ParseClassIdent(value)
		return tcDisjointFrom{c}, err
	case "relationship":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: relationship requires a relation and a class")
		}
		rel, err := ParseRelationIdent(fields[0])
		if err != nil {
			return nil, err
		}
		c, err := ParseClassIdent(fields[1])
		return tcRelationship{Relation: rel, Class: c}, err
	case "created_by":
		u, err := ParseUnquotedString(value)
		return tcCreatedBy{u}, err
	case "creation_date":
		d, err := ParseCreationDate(value)
		return tcCreationDate{d}, err
	case "is_obsolete":
		b, err := parseBoolean(value)
		return tcIsObsolete{b}, err
	case "replaced_by":
		c, err := ParseClassIdent(value)
		return tcReplacedBy{c}, err
	case "consider":
		c, err := ParseClassIdent(value)
		return tcConsider{c}, err
	default:
		return nil, fmt.Errorf("ast: unknown term clause tag %q", tag)
	}
}

// TermFrame is a [Term] stanza: an ordered list of typed clauses.
type TermFrame struct {
	Clauses []TermClause
}

func (t TermFrame) String() string {
	lines := make([]string, 0, len(t.Clauses)+1)
	lines = append(lines, "[Term]")
	for _, c := range t.Clauses {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// Id returns the frame's identifying class id, the mandatory id clause.
func (t TermFrame) Id() (ClassIdent, bool) {
	for _, c := range t.Clauses {
		if id, ok := c.(tcId); ok {
			return id.Id, true
		}
	}
	return ClassIdent{}, false
}

func (t TermFrame) Validate() []error {
	counts := map[string]int{}
	for _, c := range t.Clauses {
		counts[c.TermTag()]++
	}
	return CheckCardinality(counts, TermCardinality)
}

// termClauseOrder ranks term clause tags by their variant declaration
// order, the order the guide lists "which tag comes first".
var termClauseOrder = map[string]int{
	"id": 0, "is_anonymous": 1, "name": 2, "namespace": 3, "alt_id": 4,
	"def": 5, "comment": 6, "subset": 7, "synonym": 8, "xref": 9,
	"builtin": 10, "property_value": 11, "is_a": 12, "intersection_of": 13,
	"union_of": 14, "equivalent_to": 15, "disjoint_from": 16,
	"relationship": 17, "created_by": 18, "creation_date": 19,
	"is_obsolete": 20, "replaced_by": 21, "consider": 22,
}

// Sort reorders Clauses by variant declaration order, then
// lexicographically by rendered content within the same variant.
func (t TermFrame) Sort() {
	sort.SliceStable(t.Clauses, func(i, j int) bool {
		a, b := t.Clauses[i], t.Clauses[j]
		oa, ob := termClauseOrder[a.TermTag()], termClauseOrder[b.TermTag()]
		if oa != ob {
			return oa < ob
		}
		return a.String() < b.String()
	})
}
