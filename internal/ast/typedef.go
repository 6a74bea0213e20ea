package ast

import (
	"fmt"
	"sort"
	"strings"
)

// TypedefClause is the sum type of every clause a [Typedef] frame can
// carry: the clauses it shares with [Term] (id, name, namespace, def,
// comment, subset, synonym, xref, property_value, is_a, union_of,
// equivalent_to, disjoint_from, created_by, creation_date, is_obsolete,
// replaced_by, consider, is_anonymous, alt_id, builtin) plus the
// relation-algebra clauses unique to typedefs.
type TypedefClause interface {
	fmt.Stringer
	TypedefTag() string
}

var TypedefCardinality = map[string]Cardinality{
	"id":            One,
	"is_anonymous":  ZeroOrOne,
	"name":          One,
	"namespace":     ZeroOrOne,
	"def":           ZeroOrOne,
	"comment":       ZeroOrOne,
	"domain":        ZeroOrOne,
	"range":         ZeroOrOne,
	"is_anti_symmetric":     ZeroOrOne,
	"is_cyclic":             ZeroOrOne,
	"is_reflexive":          ZeroOrOne,
	"is_symmetric":          ZeroOrOne,
	"is_transitive":         ZeroOrOne,
	"is_functional":         ZeroOrOne,
	"is_inverse_functional": ZeroOrOne,
	"is_metadata_tag":       ZeroOrOne,
	"is_class_level":        ZeroOrOne,
	"inverse_of":            ZeroOrOne,
	"is_obsolete":           ZeroOrOne,
	"created_by":            ZeroOrOne,
	"creation_date":         ZeroOrOne,
	"builtin":               ZeroOrOne,
}

type ydId struct{ Id RelationIdent }
type ydIsAnonymous struct{ Value bool }
type ydName struct{ Value UnquotedString }
type ydNamespace struct{ Value NamespaceIdent }
type ydAltId struct{ Value Ident }
type ydDef struct {
	Desc  QuotedString
	Xrefs XrefList
}
type ydComment struct{ Value UnquotedString }
type ydSubset struct{ Value SubsetIdent }
type ydSynonym struct{ Value Synonym }
type ydXref struct{ Value Xref }
type ydPropertyValue struct{ Value PropertyValue }
type ydDomain struct{ Value ClassIdent }
type ydRange struct{ Value ClassIdent }
type ydIsAntiSymmetric struct{ Value bool }
type ydIsCyclic struct{ Value bool }
type ydIsReflexive struct{ Value bool }
type ydIsSymmetric struct{ Value bool }
type ydIsTransitive struct{ Value bool }
type ydIsFunctional struct{ Value bool }
type ydIsInverseFunctional struct{ Value bool }
type ydIsMetadataTag struct{ Value bool }
type ydIsClassLevel struct{ Value bool }
type ydIsA struct{ Value RelationIdent }
type ydUnionOf struct{ Value RelationIdent }
type ydEquivalentTo struct{ Value RelationIdent }
type ydDisjointFrom struct{ Value RelationIdent }
type ydInverseOf struct{ Value RelationIdent }
type ydTransitiveOver struct{ Value RelationIdent }
type ydEquivalentToChain struct {
	First  RelationIdent
	Second RelationIdent
}
type ydDisjointOver struct{ Value RelationIdent }
type ydHoldsOverChain struct {
	First  RelationIdent
	Second RelationIdent
}
type ydExpandAssertionTo struct {
	Desc  QuotedString
	Xrefs XrefList
}
type ydExpandExpressionTo struct {
	Desc  QuotedString
	Xrefs XrefList
}
type ydBuiltin struct{ Value bool }
type ydCreatedBy struct{ Value UnquotedString }
type ydCreationDate struct{ Value CreationDate }
type ydIsObsolete struct{ Value bool }
type ydReplacedBy struct{ Value RelationIdent }
type ydConsider struct{ Value RelationIdent }

func (c ydId) TypedefTag() string                    { return "id" }
func (c ydIsAnonymous) TypedefTag() string            { return "is_anonymous" }
func (c ydName) TypedefTag() string                  { return "name" }
func (c ydNamespace) TypedefTag() string             { return "namespace" }
func (c ydAltId) TypedefTag() string                 { return "alt_id" }
func (c ydDef) TypedefTag() string                   { return "def" }
func (c ydComment) TypedefTag() string               { return "comment" }
func (c ydSubset) TypedefTag() string                { return "subset" }
func (c ydSynonym) TypedefTag() string                { return "synonym" }
func (c ydXref) TypedefTag() string                   { return "xref" }
func (c ydPropertyValue) TypedefTag() string          { return "property_value" }
func (c ydDomain) TypedefTag() string                 { return "domain" }
func (c ydRange) TypedefTag() string                  { return "range" }
func (c ydIsAntiSymmetric) TypedefTag() string        { return "is_anti_symmetric" }
func (c ydIsCyclic) TypedefTag() string               { return "is_cyclic" }
func (c ydIsReflexive) TypedefTag() string            { return "is_reflexive" }
func (c ydIsSymmetric) TypedefTag() string            { return "is_symmetric" }
func (c ydIsTransitive) TypedefTag() string           { return "is_transitive" }
func (c ydIsFunctional) TypedefTag() string           { return "is_functional" }
func (c ydIsInverseFunctional) TypedefTag() string    { return "is_inverse_functional" }
func (c ydIsMetadataTag) TypedefTag() string          { return "is_metadata_tag" }
func (c ydIsClassLevel) TypedefTag() string           { return "is_class_level" }
func (c ydIsA) TypedefTag() string                    { return "is_a" }
func (c ydUnionOf) TypedefTag() string                { return "union_of" }
func (c ydEquivalentTo) TypedefTag() string           { return "equivalent_to" }
func (c ydDisjointFrom) TypedefTag() string           { return "disjoint_from" }
func (c ydInverseOf) TypedefTag() string              { return "inverse_of" }
func (c ydTransitiveOver) TypedefTag() string         { return "transitive_over" }
func (c ydEquivalentToChain) TypedefTag() string      { return "equivalent_to_chain" }
func (c ydDisjointOver) TypedefTag() string           { return "disjoint_over" }
func (c ydHoldsOverChain) TypedefTag() string         { return "holds_over_chain" }
func (c ydExpandAssertionTo) TypedefTag() string      { return "expand_assertion_to" }
func (c ydExpandExpressionTo) TypedefTag() string     { return "expand_expression_to" }
func (c ydBuiltin) TypedefTag() string                { return "builtin" }
func (c ydCreatedBy) TypedefTag() string              { return "created_by" }
func (c ydCreationDate) TypedefTag() string           { return "creation_date" }
func (c ydIsObsolete) TypedefTag() string             { return "is_obsolete" }
func (c ydReplacedBy) TypedefTag() string             { return "replaced_by" }
func (c ydConsider) TypedefTag() string                { return "consider" }

func (c ydId) String() string           { return "id: " + c.Id.String() }
func (c ydIsAnonymous) String() string   { return "is_anonymous: " + formatBoolean(c.Value) }
func (c ydName) String() string         { return "name: " + c.Value.String() }
func (c ydNamespace) String() string    { return "namespace: " + c.Value.String() }
func (c ydAltId) String() string        { return "alt_id: " + c.Value.String() }
func (c ydDef) String() string          { return fmt.Sprintf("def: %s %s", c.Desc, c.Xrefs) }
func (c ydComment) String() string      { return "comment: " + c.Value.String() }
func (c ydSubset) String() string       { return "subset: " + c.Value.String() }
func (c ydSynonym) String() string      { return "synonym: " + c.Value.String() }
func (c ydXref) String() string         { return "xref: " + c.Value.String() }
func (c ydPropertyValue) String() string { return "property_value: " + c.Value.String() }
func (c ydDomain) String() string       { return "domain: " + c.Value.String() }
func (c ydRange) String() string        { return "range: " + c.Value.String() }
func (c ydIsAntiSymmetric) String() string     { return "is_anti_symmetric: " + formatBoolean(c.Value) }
func (c ydIsCyclic) String() string            { return "is_cyclic: " + formatBoolean(c.Value) }
func (c ydIsReflexive) String() string         { return "is_reflexive: " + formatBoolean(c.Value) }
func (c ydIsSymmetric) String() string         { return "is_symmetric: " + formatBoolean(c.Value) }
func (c ydIsTransitive) String() string        { return "is_transitive: " + formatBoolean(c.Value) }
func (c ydIsFunctional) String() string        { return "is_functional: " + formatBoolean(c.Value) }
func (c ydIsInverseFunctional) String() string { return "is_inverse_functional: " + formatBoolean(c.Value) }
func (c ydIsMetadataTag) String() string       { return "is_metadata_tag: " + formatBoolean(c.Value) }
func (c ydIsClassLevel) String() string        { return "is_class_level: " + formatBoolean(c.Value) }
func (c ydIsA) String() string                 { return "is_a: " + c.Value.String() }
func (c ydUnionOf) String() string              { return "union_of: " + c.Value.String() }
func (c ydEquivalentTo) String() string        { return "equivalent_to: " + c.Value.String() }
func (c ydDisjointFrom) String() string        { return "disjoint_from: " + c.Value.String() }
func (c ydInverseOf) String() string           { return "inverse_of: " + c.Value.String() }
func (c ydTransitiveOver) String() string      { return "transitive_over: " + c.Value.String() }
func (c ydEquivalentToChain) String() string {
	return fmt.Sprintf("equivalent_to_chain: %s %s", c.First, c.Second)
}
func (c ydDisjointOver) String() string { return "disjoint_over: " + c.Value.String() }
func (c ydHoldsOverChain) String() string {
	return fmt.Sprintf("holds_over_chain: %s %s", c.First, c.Second)
}
func (c ydExpandAssertionTo) String() string {
	return fmt.Sprintf("expand_assertion_to: %s %s", c.Desc, c.Xrefs)
}
func (c ydExpandExpressionTo) String() string {
	return fmt.Sprintf("expand_expression_to: %s %s", c.Desc, c.Xrefs)
}
func (c ydBuiltin) String() string      { return "builtin: " + formatBoolean(c.Value) }
func (c ydCreatedBy) String() string    { return "created_by: " + c.Value.String() }
func (c ydCreationDate) String() string { return "creation_date: " + c.Value.String() }
func (c ydIsObsolete) String() string   { return "is_obsolete: " + formatBoolean(c.Value) }
func (c ydReplacedBy) String() string   { return "replaced_by: " + c.Value.String() }
func (c ydConsider) String() string     { return "consider: " + c.Value.String() }

// ParseTypedefClause dispatches a raw "tag: value" clause line from a
// [Typedef] frame body to its typed clause.
func ParseTypedefClause(line string) (TypedefClause, error) {
	tag, value, ok := SplitTag(line)
	if !ok {
		return nil, fmt.Errorf("ast: typedef clause %q missing ':'", line)
	}
	value, _, _ = SplitTrailingComment(value)
	value = strings.TrimSpace(value)
	switch tag {
	case "id":
		id, err := ParseRelationIdent(value)
		return ydId{id}, err
	case "is_anonymous":
		b, err := parseBoolean(value)
		return ydIsAnonymous{b}, err
	case "name":
		u, err := ParseUnquotedString(value)
		return ydName{u}, err
	case "namespace":
		ns, err := ParseNamespaceIdent(value)
		return ydNamespace{ns}, err
	case "alt_id":
		id, err := ParseIdent(value)
		return ydAltId{id}, err
	case "def":
		desc, xrefs, err := splitQuotedThenBracket(value)
		return ydDef{Desc: desc, Xrefs: xrefs}, err
	case "comment":
		u, err := ParseUnquotedString(value)
		return ydComment{u}, err
	case "subset":
		s, err := ParseSubsetIdent(value)
		return ydSubset{s}, err
	case "synonym":
		s, err := ParseSynonym(value)
		return ydSynonym{s}, err
	case "xref":
		x, err := ParseXref(value)
		return ydXref{x}, err
	case "property_value":
		pv, err := ParsePropertyValue(value)
		return ydPropertyValue{pv}, err
	case "domain":
		c, err := ParseClassIdent(value)
		return ydDomain{c}, err
	case "range":
		c, err := ParseClassIdent(value)
		return ydRange{c}, err
	case "is_anti_symmetric":
		b, err := parseBoolean(value)
		return ydIsAntiSymmetric{b}, err
	case "is_cyclic":
		b, err := parseBoolean(value)
		return ydIsCyclic{b}, err
	case "is_reflexive":
		b, err := parseBoolean(value)
		return ydIsReflexive{b}, err
	case "is_symmetric":
		b, err := parseBoolean(value)
		return ydIsSymmetric{b}, err
	case "is_transitive":
		b, err := parseBoolean(value)
		return ydIsTransitive{b}, err
	case "is_functional":
		b, err := parseBoolean(value)
		return ydIsFunctional{b}, err
	case "is_inverse_functional":
		b, err := parseBoolean(value)
		return ydIsInverseFunctional{b}, err
	case "is_metadata_tag":
		b, err := parseBoolean(value)
		return ydIsMetadataTag{b}, err
	case "is_class_level":
		b, err := parseBoolean(value)
		return ydIsClassLevel{b}, err
	case "is_a":
		r, err := ParseRelationIdent(value)
		return ydIsA{r}, err
	case "union_of":
		r, err := ParseRelationIdent(value)
		return ydUnionOf{r}, err
	case "equivalent_to":
		r, err := ParseRelationIdent(value)
		return ydEquivalentTo{r}, err
	case "disjoint_from":
		r, err := ParseRelationIdent(value)
		return ydDisjointFrom{r}, err
	case "inverse_of":
		r, err := ParseRelationIdent(value)
		return ydInverseOf{r}, err
	case "transitive_over":
		r, err := ParseRelationIdent(value)
		return ydTransitiveOver{r}, err
	case "equivalent_to_chain":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: equivalent_to_chain requires two relations")
		}
		first, err := ParseRelationIdent(fields[0])
		if err != nil {
			return nil, err
		}
		second, err := ParseRelationIdent(fields[1])
		return ydEquivalentToChain{First: first, Second: second}, err
	case "disjoint_over":
		r, err := ParseRelationIdent(value)
		return ydDisjointOver{r}, err
	case "holds_over_chain":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: holds_over_chain requires two relations")
		}
		first, err := ParseRelationIdent(fields[0])
		if err != nil {
			return nil, err
		}
		second, err := ParseRelationIdent(fields[1])
		return ydHoldsOverChain{First: first, Second: second}, err
	case "expand_assertion_to":
		desc, xrefs, err := splitQuotedThenBracket(value)
		return ydExpandAssertionTo{Desc: desc, Xrefs: xrefs}, err
	case "expand_expression_to":
		desc, xrefs, err := splitQuotedThenBracket(value)
		return ydExpandExpressionTo{Desc: desc, Xrefs: xrefs}, err
	case "builtin":
		b, err := parseBoolean(value)
		return ydBuiltin{b}, err
	case "created_by":
		u, err := ParseUnquotedString(value)
		return ydCreatedBy{u}, err
	case "creation_date":
		d, err := ParseCreationDate(value)
		return ydCreationDate{d}, err
	case "is_obsolete":
		b, err := parseBoolean(value)
		return ydIsObsolete{b}, err
	case "replaced_by":
		r, err := ParseRelationIdent(value)
		return ydReplacedBy{r}, err
	case "consider":
		r, err := ParseRelationIdent(value)
		return ydConsider{r}, err
	default:
		return nil, fmt.Errorf("ast: unknown typedef clause tag %q", tag)
	}
}

// TypedefFrame is a [Typedef] stanza: an ordered list of typed clauses.
type TypedefFrame struct {
	Clauses []TypedefClause
}

func (t TypedefFrame) String() string {
	lines := make([]string, 0, len(t.Clauses)+1)
	lines = append(lines, "[Typedef]")
	for _, c := range t.Clauses {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

func (t TypedefFrame) Id() (RelationIdent, bool) {
	for _, c := range t.Clauses {
		if id, ok := c.(ydId); ok {
			return id.Id, true
		}
	}
	return RelationIdent{}, false
}

func (t TypedefFrame) Validate() []error {
	counts := map[string]int{}
	for _, c := range t.Clauses {
		counts[c.TypedefTag()]++
	}
	return CheckCardinality(counts, TypedefCardinality)
}

// typedefClauseOrder ranks typedef clause tags by their variant
// declaration order, the order the guide lists "which tag comes first".
var typedefClauseOrder = map[string]int{
	"id": 0, "is_anonymous": 1, "name": 2, "namespace": 3, "alt_id": 4,
	"def": 5, "comment": 6, "subset": 7, "synonym": 8, "xref": 9,
	"property_value": 10, "domain": 11, "range": 12,
	"is_anti_symmetric": 13, "is_cyclic": 14, "is_reflexive": 15,
	"is_symmetric": 16, "is_transitive": 17, "is_functional": 18,
	"is_inverse_functional": 19, "is_metadata_tag": 20, "is_class_level": 21,
	"is_a": 22, "union_of": 23, "equivalent_to": 24, "disjoint_from": 25,
	"inverse_of": 26, "transitive_over": 27, "equivalent_to_chain": 28,
	"disjoint_over": 29, "holds_over_chain": 30, "expand_assertion_to": 31,
	"expand_expression_to": 32, "builtin": 33, "created_by": 34,
	"creation_date": 35, "is_obsolete": 36, "replaced_by": 37, "consider": 38,
}

// Sort reorders Clauses by variant declaration order, then
// lexicographically by rendered content within the same variant.
func (t TypedefFrame) Sort() {
	sort.SliceStable(t.Clauses, func(i, j int) bool {
		a, b := t.Clauses[i], t.Clauses[j]
		oa, ob := typedefClauseOrder[a.TypedefTag()], typedefClauseOrder[b.TypedefTag()]
		if oa != ob {
			return oa < ob
		}
		return a.String() < b.String()
	})
}
