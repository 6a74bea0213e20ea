package ast

import (
	"fmt"
	"sort"
	"strings"
)

// InstanceClause is the sum type of every clause an [Instance] frame
// can carry.
type InstanceClause interface {
	fmt.Stringer
	InstanceTag() string
}

var InstanceCardinality = map[string]Cardinality{
	"id":            One,
	"is_anonymous":  ZeroOrOne,
	"name":          ZeroOrOne,
	"namespace":     ZeroOrOne,
	"def":           ZeroOrOne,
	"comment":       ZeroOrOne,
	"instance_of":   ZeroOrOne,
	"is_obsolete":   ZeroOrOne,
	"created_by":    ZeroOrOne,
	"creation_date": ZeroOrOne,
}

type icId struct{ Id InstanceIdent }
type icIsAnonymous struct{ Value bool }
type icName struct{ Value UnquotedString }
type icNamespace struct{ Value NamespaceIdent }
type icAltId struct{ Value Ident }
type icDef struct {
	Desc  QuotedString
	Xrefs XrefList
}
type icComment struct{ Value UnquotedString }
type icSubset struct{ Value SubsetIdent }
type icSynonym struct{ Value Synonym }
type icXref struct{ Value Xref }
type icPropertyValue struct{ Value PropertyValue }
type icInstanceOf struct{ Value ClassIdent }
type icRelationship struct {
	Relation RelationIdent
	Instance InstanceIdent
}
type icCreatedBy struct{ Value UnquotedString }
type icCreationDate struct{ Value CreationDate }
type icIsObsolete struct{ Value bool }
type icReplacedBy struct{ Value InstanceIdent }
type icConsider struct{ Value InstanceIdent }

func (c icId) InstanceTag() string           { return "id" }
func (c icIsAnonymous) InstanceTag() string   { return "is_anonymous" }
func (c icName) InstanceTag() string         { return "name" }
func (c icNamespace) InstanceTag() string    { return "namespace" }
func (c icAltId) InstanceTag() string        { return "alt_id" }
func (c icDef) InstanceTag() string          { return "def" }
func (c icComment) InstanceTag() string      { return "comment" }
func (c icSubset) InstanceTag() string       { return "subset" }
func (c icSynonym) InstanceTag() string      { return "synonym" }
func (c icXref) InstanceTag() string         { return "xref" }
func (c icPropertyValue) InstanceTag() string { return "property_value" }
func (c icInstanceOf) InstanceTag() string   { return "instance_of" }
func (c icRelationship) InstanceTag() string { return "relationship" }
func (c icCreatedBy) InstanceTag() string    { return "created_by" }
func (c icCreationDate) InstanceTag() string { return "creation_date" }
func (c icIsObsolete) InstanceTag() string   { return "is_obsolete" }
func (c icReplacedBy) InstanceTag() string   { return "replaced_by" }
func (c icConsider) InstanceTag() string     { return "consider" }

func (c icId) String() string           { return "id: " + c.Id.String() }
func (c icIsAnonymous) String() string   { return "is_anonymous: " + formatBoolean(c.Value) }
func (c icName) String() string         { return "name: " + c.Value.String() }
func (c icNamespace) String() string    { return "namespace: " + c.Value.String() }
func (c icAltId) String() string        { return "alt_id: " + c.Value.String() }
func (c icDef) String() string          { return fmt.Sprintf("def: %s %s", c.Desc, c.Xrefs) }
func (c icComment) String() string      { return "comment: " + c.Value.String() }
func (c icSubset) String() string       { return "subset: " + c.Value.String() }
func (c icSynonym) String() string      { return "synonym: " + c.Value.String() }
func (c icXref) String() string         { return "xref: " + c.Value.String() }
func (c icPropertyValue) String() string { return "property_value: " + c.Value.String() }
func (c icInstanceOf) String() string   { return "instance_of: " + c.Value.String() }
func (c icRelationship) String() string {
	return fmt.Sprintf("relationship: %s %s", c.Relation, c.Instance)
}
func (c icCreatedBy) String() string    { return "created_by: " + c.Value.String() }
func (c icCreationDate) String() string { return "creation_date: " + c.Value.String() }
func (c icIsObsolete) String() string   { return "is_obsolete: " + formatBoolean(c.Value) }
func (c icReplacedBy) String() string   { return "replaced_by: " + c.Value.String() }
func (c icConsider) String() string     { return "consider: " + c.Value.String() }

// ParseInstanceClause dispatches a raw "tag: value" clause line from an
// [Instance] frame body to its typed clause.
func ParseInstanceClause(line string) (InstanceClause, error) {
	tag, value, ok := SplitTag(line)
	if !ok {
		return nil, fmt.Errorf("ast: instance clause %q missing ':'", line)
	}
	value, _, _ = SplitTrailingComment(value)
	value = strings.TrimSpace(value)
	switch tag {
	case "id":
		id, err := ParseInstanceIdent(value)
		return icId{id}, err
	case "is_anonymous":
		b, err := parseBoolean(value)
		return icIsAnonymous{b}, err
	case "name":
		u, err := ParseUnquotedString(value)
		return icName{u}, err
	case "namespace":
		ns, err := ParseNamespaceIdent(value)
		return icNamespace{ns}, err
	case "alt_id":
		id, err := ParseIdent(value)
		return icAltId{id}, err
	case "def":
		desc, xrefs, err := splitQuotedThenBracket(value)
		return icDef{Desc: desc, Xrefs: xrefs}, err
	case "comment":
		u, err := ParseUnquotedString(value)
		return icComment{u}, err
	case "subset":
		s, err := ParseSubsetIdent(value)
		return icSubset{s}, err
	case "synonym":
		s, err := ParseSynonym(value)
		return icSynonym{s}, err
	case "xref":
		x, err := ParseXref(value)
		return icXref{x}, err
	case "property_value":
		pv, err := ParsePropertyValue(value)
		return icPropertyValue{pv}, err
	case "instance_of":
		c, err := ParseClassIdent(value)
		return icInstanceOf{c}, err
	case "relationship":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: relationship requires a relation and an instance")
		}
		rel, err := ParseRelationIdent(fields[0])
		if err != nil {
			return nil, err
		}
		inst, err := ParseInstanceIdent(fields[1])
		return icRelationship{Relation: rel, Instance: inst}, err
	case "created_by":
		u, err := ParseUnquotedString(value)
		return icCreatedBy{u}, err
	case "creation_date":
		d, err := ParseCreationDate(value)
		return icCreationDate{d}, err
	case "is_obsolete":
		b, err := parseBoolean(value)
		return icIsObsolete{b}, err
	case "replaced_by":
		i, err := ParseInstanceIdent(value)
		return icReplacedBy{i}, err
	case "consider":
		i, err := ParseInstanceIdent(value)
		return icConsider{i}, err
	default:
		return nil, fmt.Errorf("ast: unknown instance clause tag %q", tag)
	}
}

// InstanceFrame is an [Instance] stanza: an ordered list of typed
// clauses.
type InstanceFrame struct {
	Clauses []InstanceClause
}

func (i InstanceFrame) String() string {
	lines := make([]string, 0, len(i.Clauses)+1)
	lines = append(lines, "[Instance]")
	for _, c := range i.Clauses {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

func (i InstanceFrame) Id() (InstanceIdent, bool) {
	for _, c := range i.Clauses {
		if id, ok := c.(icId); ok {
			return id.Id, true
		}
	}
	return InstanceIdent{}, false
}

func (i InstanceFrame) Validate() []error {
	counts := map[string]int{}
	for _, c := range i.Clauses {
		counts[c.InstanceTag()]++
	}
	return CheckCardinality(counts, InstanceCardinality)
}

// instanceClauseOrder ranks instance clause tags by their variant
// declaration order, the order the guide lists "which tag comes first".
var instanceClauseOrder = map[string]int{
	"id": 0, "is_anonymous": 1, "name": 2, "namespace": 3, "alt_id": 4,
	"def": 5, "comment": 6, "subset": 7, "synonym": 8, "xref": 9,
	"property_value": 10, "instance_of": 11, "relationship": 12,
	"created_by": 13, "creation_date": 14, "is_obsolete": 15,
	"replaced_by": 16, "consider": 17,
}

// Sort reorders Clauses by variant declaration order, then
// lexicographically by rendered content within the same variant.
func (i InstanceFrame) Sort() {
	sort.SliceStable(i.Clauses, func(a, b int) bool {
		ca, cb := i.Clauses[a], i.Clauses[b]
		oa, ob := instanceClauseOrder[ca.InstanceTag()], instanceClauseOrder[cb.InstanceTag()]
		if oa != ob {
			return oa < ob
		}
		return ca.String() < cb.String()
	})
}
