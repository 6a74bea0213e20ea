package ast

import (
	"fmt"
	"sort"
	"strings"
)

// HeaderClause is the sum type of every header-frame clause the OBO
// guide defines, mirroring fastobo's HeaderClause enum as a Go
// interface with one concrete struct per variant.
type HeaderClause interface {
	fmt.Stringer
	HeaderTag() string
}

// HeaderCardinality is the multiplicity table for header clause tags;
// format-version is the only clause OBO 1.4 requires.
var HeaderCardinality = map[string]Cardinality{
	"format-version":    One,
	"data-version":       ZeroOrOne,
	"date":               ZeroOrOne,
	"saved-by":           ZeroOrOne,
	"auto-generated-by":  ZeroOrOne,
	"default-namespace":  ZeroOrOne,
	"namespace-id-rule":  ZeroOrOne,
	"ontology":           ZeroOrOne,
	"import":             Any,
	"subsetdef":          Any,
	"synonymtypedef":     Any,
	"idspace":            Any,
	"remark":             Any,
	"owl-axioms":         Any,
	"property_value":     Any,
}

type hcFormatVersion struct{ Value UnquotedString }
type hcDataVersion struct{ Value UnquotedString }
type hcDate struct{ Value NaiveDateTime }
type hcSavedBy struct{ Value UnquotedString }
type hcAutoGeneratedBy struct{ Value UnquotedString }
type hcImport struct{ Value Ident }
type hcSubsetdef struct {
	Subset SubsetIdent
	Desc   QuotedString
}
type hcSynonymTypedef struct {
	Type    SynonymTypeIdent
	Desc    QuotedString
	HasScope bool
	Scope   SynonymScope
}
type hcDefaultNamespace struct{ Value NamespaceIdent }
type hcNamespaceIdRule struct{ Value UnquotedString }
type hcIdspace struct {
	Prefix string
	Url    Ident
	HasDesc bool
	Desc   QuotedString
}
type hcTreatXrefsAsEquivalent struct{ Prefix string }
type hcTreatXrefsAsGenusDifferentia struct {
	Prefix   string
	Relation RelationIdent
	Filler   ClassIdent
}
type hcTreatXrefsAsReverseGenusDifferentia struct {
	Prefix   string
	Relation RelationIdent
	Filler   ClassIdent
}
type hcTreatXrefsAsRelationship struct {
	Prefix   string
	Relation RelationIdent
}
type hcTreatXrefsAsIsA struct{ Prefix string }
type hcTreatXrefsAsHasSubclass struct{ Prefix string }
type hcPropertyValue struct{ Value PropertyValue }
type hcRemark struct{ Value UnquotedString }
type hcOntology struct{ Value UnquotedString }
type hcOwlAxioms struct{ Value UnquotedString }
type hcUnreserved struct {
	Tag   string
	Value string
}

func (c hcFormatVersion) HeaderTag() string                    { return "format-version" }
func (c hcDataVersion) HeaderTag() string                      { return "data-version" }
func (c hcDate) HeaderTag() string                              { return "date" }
func (c hcSavedBy) HeaderTag() string                           { return "saved-by" }
func (c hcAutoGeneratedBy) HeaderTag() string                   { return "auto-generated-by" }
func (c hcImport) HeaderTag() string                            { return "import" }
func (c hcSubsetdef) HeaderTag() string                         { return "subsetdef" }
func (c hcSynonymTypedef) HeaderTag() string                    { return "synonymtypedef" }
func (c hcDefaultNamespace) HeaderTag() string                  { return "default-namespace" }
func (c hcNamespaceIdRule) HeaderTag() string                   { return "namespace-id-rule" }
func (c hcIdspace) HeaderTag() string                           { return "idspace" }
func (c hcTreatXrefsAsEquivalent) HeaderTag() string            { return "treat-xrefs-as-equivalent" }
func (c hcTreatXrefsAsGenusDifferentia) HeaderTag() string      { return "treat-xrefs-as-genus-differentia" }
func (c hcTreatXrefsAsReverseGenusDifferentia) HeaderTag() string {
	return "treat-xrefs-as-reverse-genus-differentia"
}
func (c hcTreatXrefsAsRelationship) HeaderTag() string { return "treat-xrefs-as-relationship" }
func (c hcTreatXrefsAsIsA) HeaderTag() string          { return "treat-xrefs-as-is_a" }
func (c hcTreatXrefsAsHasSubclass) HeaderTag() string  { return "treat-xrefs-as-has-subclass" }
func (c hcPropertyValue) HeaderTag() string            { return "property_value" }
func (c hcRemark) HeaderTag() string                   { return "remark" }
func (c hcOntology) HeaderTag() string                 { return "ontology" }
func (c hcOwlAxioms) HeaderTag() string                { return "owl-axioms" }
func (c hcUnreserved) HeaderTag() string               { return c.Tag }

func (c hcFormatVersion) String() string { return "format-version: " + c.Value.String() }
func (c hcDataVersion) String() string   { return "data-version: " + c.Value.String() }
func (c hcDate) String() string          { return "date: " + c.Value.String() }
func (c hcSavedBy) String() string       { return "saved-by: " + c.Value.String() }
func (c hcAutoGeneratedBy) String() string { return "auto-generated-by: " + c.Value.String() }
func (c hcImport) String() string        { return "import: " + c.Value.String() }
func (c hcSubsetdef) String() string {
	return fmt.Sprintf("subsetdef: %s %s", c.Subset, c.Desc)
}
func (c hcSynonymTypedef) String() string {
	s := fmt.Sprintf("synonymtypedef: %s %s", c.Type, c.Desc)
	if c.HasScope {
		s += " " + string(c.Scope)
	}
	return s
}
func (c hcDefaultNamespace) String() string { return "default-namespace: " + c.Value.String() }
func (c hcNamespaceIdRule) String() string  { return "namespace-id-rule: " + c.Value.String() }
func (c hcIdspace) String() string {
	s := fmt.Sprintf("idspace: %s %s", c.Prefix, c.Url)
	if c.HasDesc {
		s += " " + c.Desc.String()
	}
	return s
}
func (c hcTreatXrefsAsEquivalent) String() string {
	return "treat-xrefs-as-equivalent: " + c.Prefix
}
func (c hcTreatXrefsAsGenusDifferentia) String() string {
	return fmt.Sprintf("treat-xrefs-as-genus-differentia: %s %s %s", c.Prefix, c.Relation, c.Filler)
}
func (c hcTreatXrefsAsReverseGenusDifferentia) String() string {
	return fmt.Sprintf("treat-xrefs-as-reverse-genus-differentia: %s %s %s", c.Prefix, c.Relation, c.Filler)
}
func (c hcTreatXrefsAsRelationship) String() string {
	return fmt.Sprintf("treat-xrefs-as-relationship: %s %s", c.Prefix, c.Relation)
}
func (c hcTreatXrefsAsIsA) String() string         { return "treat-xrefs-as-is_a: " + c.Prefix }
func (c hcTreatXrefsAsHasSubclass) String() string { return "treat-xrefs-as-has-subclass: " + c.Prefix }
func (c hcPropertyValue) String() string           { return "property_value: " + c.Value.String() }
func (c hcRemark) String() string                  { return "remark: " + c.Value.String() }
func (c hcOntology) String() string                { return "ontology: " + c.Value.String() }
func (c hcOwlAxioms) String() string                { return "owl-axioms: " + c.Value.String() }
func (c hcUnreserved) String() string               { return c.Tag + ": " + c.Value }

// ParseHeaderClause dispatches a raw "tag: value" header line to its
// typed clause, falling back to Unreserved for any tag the guide does
// not define, exactly as the guide's own extensibility rule requires.
func ParseHeaderClause(line string) (HeaderClause, error) {
	tag, value, ok := SplitTag(line)
	if !ok {
		return nil, fmt.Errorf("ast: header clause %q missing ':'", line)
	}
	value, comment, hasComment := SplitTrailingComment(value)
	_ = hasComment
	value = strings.TrimSpace(value)
	switch tag {
	case "format-version":
		u, err := ParseUnquotedString(value)
		return hcFormatVersion{u}, err
	case "data-version":
		u, err := ParseUnquotedString(value)
		return hcDataVersion{u}, err
	case "date":
		d, err := ParseNaiveDateTime(value)
		return hcDate{d}, err
	case "saved-by":
		u, err := ParseUnquotedString(value)
		return hcSavedBy{u}, err
	case "auto-generated-by":
		u, err := ParseUnquotedString(value)
		return hcAutoGeneratedBy{u}, err
	case "import":
		id, err := ParseIdent(value)
		return hcImport{id}, err
	case "subsetdef":
		fields := strings.SplitN(value, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: subsetdef requires an id and a description")
		}
		subset, err := ParseSubsetIdent(fields[0])
		if err != nil {
			return nil, err
		}
		desc, err := ParseQuotedString(strings.TrimSpace(fields[1]))
		return hcSubsetdef{Subset: subset, Desc: desc}, err
	case "synonymtypedef":
		fields := strings.SplitN(value, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: synonymtypedef requires an id and a description")
		}
		typ, err := ParseSynonymTypeIdent(fields[0])
		if err != nil {
			return nil, err
		}
		rest := strings.TrimSpace(fields[1])
		desc, scope, hasScope, err := splitQuotedThenOptionalWord(rest)
		if err != nil {
			return nil, err
		}
		sc := hcSynonymTypedef{Type: typ, Desc: desc}
		if hasScope {
			if !validScope(scope) {
				return nil, fmt.Errorf("ast: invalid synonym scope %q", scope)
			}
			sc.HasScope = true
			sc.Scope = SynonymScope(scope)
		}
		return sc, nil
	case "default-namespace":
		ns, err := ParseNamespaceIdent(value)
		return hcDefaultNamespace{ns}, err
	case "namespace-id-rule":
		u, err := ParseUnquotedString(value)
		return hcNamespaceIdRule{u}, err
	case "idspace":
		fields := strings.Fields(value)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ast: idspace requires a prefix and a url")
		}
		url, err := ParseIdent(fields[1])
		if err != nil {
			return nil, err
		}
		hc := hcIdspace{Prefix: fields[0], Url: url}
		if len(fields) > 2 {
			rest := strings.TrimSpace(strings.SplitN(value, fields[1], 2)[1])
			desc, err := ParseQuotedString(strings.TrimSpace(rest))
			if err != nil {
				return nil, err
			}
			hc.HasDesc = true
			hc.Desc = desc
		}
		return hc, nil
	case "treat-xrefs-as-equivalent":
		return hcTreatXrefsAsEquivalent{Prefix: value}, nil
	case "treat-xrefs-as-genus-differentia":
		fields := strings.Fields(value)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ast: treat-xrefs-as-genus-differentia requires prefix, relation, filler")
		}
		rel, err := ParseRelationIdent(fields[1])
		if err != nil {
			return nil, err
		}
		filler, err := ParseClassIdent(fields[2])
		if err != nil {
			return nil, err
		}
		return hcTreatXrefsAsGenusDifferentia{Prefix: fields[0], Relation: rel, Filler: filler}, nil
	case "treat-xrefs-as-reverse-genus-differentia":
		fields := strings.Fields(value)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ast: treat-xrefs-as-reverse-genus-differentia requires prefix, relation, filler")
		}
		rel, err := ParseRelationIdent(fields[1])
		if err != nil {
			return nil, err
		}
		filler, err := ParseClassIdent(fields[2])
		if err != nil {
			return nil, err
		}
		return hcTreatXrefsAsReverseGenusDifferentia{Prefix: fields[0], Relation: rel, Filler: filler}, nil
	case "treat-xrefs-as-relationship":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ast: treat-xrefs-as-relationship requires prefix and relation")
		}
		rel, err := ParseRelationIdent(fields[1])
		if err != nil {
			return nil, err
		}
		return hcTreatXrefsAsRelationship{Prefix: fields[0], Relation: rel}, nil
	case "treat-xrefs-as-is_a":
		return hcTreatXrefsAsIsA{Prefix: value}, nil
	case "treat-xrefs-as-has-subclass":
		return hcTreatXrefsAsHasSubclass{Prefix: value}, nil
	case "property_value":
		pv, err := ParsePropertyValue(value)
		return hcPropertyValue{pv}, err
	case "remark":
		u, err := ParseUnquotedString(value)
		return hcRemark{u}, err
	case "ontology":
		u, err := ParseUnquotedString(value)
		return hcOntology{u}, err
	case "owl-axioms":
		u, err := ParseUnquotedString(value)
		return hcOwlAxioms{u}, err
	default:
		return hcUnreserved{Tag: tag, Value: value}, nil
	}
}

// splitQuotedThenOptionalWord splits "\"desc\" [SCOPE]" into the
// description and an optional trailing bare word, used by
// synonymtypedef header clauses.
func splitQuotedThenOptionalWord(s string) (QuotedString, string, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != '"' {
		return QuotedString{}, "", false, fmt.Errorf("ast: expected quoted description in %q", s)
	}
	end := -1
	backslashes := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			backslashes++
			continue
		}
		if s[i] == '"' && backslashes%2 == 0 {
			end = i
			break
		}
		backslashes = 0
	}
	if end < 0 {
		return QuotedString{}, "", false, fmt.Errorf("ast: unterminated quoted string in %q", s)
	}
	desc, err := ParseQuotedString(s[:end+1])
	if err != nil {
		return QuotedString{}, "", false, err
	}
	rest := strings.TrimSpace(s[end+1:])
	return desc, rest, rest != "", nil
}

// HeaderFrame holds the ordered, typed list of clauses beginning a
// document, before any entity frame.
type HeaderFrame struct {
	Clauses []HeaderClause
}

func (h HeaderFrame) String() string {
	lines := make([]string, len(h.Clauses))
	for i, c := range h.Clauses {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Validate checks the clause tag cardinalities against HeaderCardinality.
func (h HeaderFrame) Validate() []error {
	counts := map[string]int{}
	for _, c := range h.Clauses {
		counts[c.HeaderTag()]++
	}
	return CheckCardinality(counts, HeaderCardinality)
}

// headerClauseOrder ranks header clause tags by their variant declaration
// order, the order the guide lists "which tag comes first".
var headerClauseOrder = map[string]int{
	"format-version":    0,
	"data-version":       1,
	"date":               2,
	"saved-by":           3,
	"auto-generated-by":  4,
	"import":             5,
	"subsetdef":          6,
	"synonymtypedef":     7,
	"default-namespace":  8,
	"namespace-id-rule":  9,
	"idspace":            10,
	"treat-xrefs-as-equivalent":                11,
	"treat-xrefs-as-genus-differentia":         12,
	"treat-xrefs-as-reverse-genus-differentia": 13,
	"treat-xrefs-as-relationship":               14,
	"treat-xrefs-as-is_a":                       15,
	"treat-xrefs-as-has-subclass":               16,
	"property_value":     17,
	"remark":             18,
	"ontology":           19,
	"owl-axioms":         20,
}

// Sort reorders Clauses by variant declaration order, then
// lexicographically by rendered content within the same variant.
// Unreserved tags sort after every reserved variant, in tag order.
func (h HeaderFrame) Sort() {
	sort.SliceStable(h.Clauses, func(i, j int) bool {
		a, b := h.Clauses[i], h.Clauses[j]
		oa, haveA := headerClauseOrder[a.HeaderTag()]
		ob, haveB := headerClauseOrder[b.HeaderTag()]
		if !haveA {
			oa = len(headerClauseOrder)
		}
		if !haveB {
			ob = len(headerClauseOrder)
		}
		if oa != ob {
			return oa < ob
		}
		if oa == len(headerClauseOrder) && a.HeaderTag() != b.HeaderTag() {
			return a.HeaderTag() < b.HeaderTag()
		}
		return a.String() < b.String()
	})
}
