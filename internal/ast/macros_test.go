package ast

import "testing"

func TestApplyTreatXrefsEquivalent(t *testing.T) {
	header := HeaderFrame{Clauses: []HeaderClause{
		parseHeaderClause(t, "format-version: 1.4"),
		parseHeaderClause(t, "treat-xrefs-as-equivalent: CHEBI"),
	}}
	doc := NewOboDoc(header)
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0008150"),
		parseTermClause(t, "name: biological_process"),
		parseTermClause(t, "xref: CHEBI:12345"),
	}})

	ApplyTreatXrefs(doc)

	term := doc.Entities[0].(TermFrame)
	found := false
	for _, c := range term.Clauses {
		if eq, ok := c.(tcEquivalentTo); ok && eq.Value.String() == "CHEBI:12345" {
			found = true
		}
	}
	if !found {
		t.Error("expected a synthesized equivalent_to clause for the CHEBI xref")
	}
}

func TestApplyTreatXrefsHasSubclassMutatesOtherFrame(t *testing.T) {
	header := HeaderFrame{Clauses: []HeaderClause{
		parseHeaderClause(t, "format-version: 1.4"),
		parseHeaderClause(t, "treat-xrefs-as-has-subclass: GO"),
	}}
	doc := NewOboDoc(header)
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0000001"),
		parseTermClause(t, "name: target"),
	}})
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: FOO:0000002"),
		parseTermClause(t, "name: source"),
		parseTermClause(t, "xref: GO:0000001"),
	}})

	ApplyTreatXrefs(doc)

	target := doc.Entities[0].(TermFrame)
	found := false
	for _, c := range target.Clauses {
		if isa, ok := c.(tcIsA); ok && isa.Value.String() == "FOO:0000002" {
			found = true
		}
	}
	if !found {
		t.Error("expected the has-subclass macro to add is_a: FOO:0000002 to the target frame")
	}
}

func TestApplyTreatXrefsNoMacrosIsNoop(t *testing.T) {
	header := HeaderFrame{Clauses: []HeaderClause{parseHeaderClause(t, "format-version: 1.4")}}
	doc := NewOboDoc(header)
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0008150"),
		parseTermClause(t, "name: biological_process"),
		parseTermClause(t, "xref: CHEBI:12345"),
	}})
	before := doc.String()
	ApplyTreatXrefs(doc)
	if got := doc.String(); got != before {
		t.Error("ApplyTreatXrefs without any declared macro should not change the document")
	}
}
