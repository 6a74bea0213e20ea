package ast

import "testing"

func buildTestDoc(t *testing.T) *OboDoc {
	t.Helper()
	header := HeaderFrame{Clauses: []HeaderClause{
		parseHeaderClause(t, "format-version: 1.4"),
	}}
	doc := NewOboDoc(header)
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0000002"),
		parseTermClause(t, "name: second"),
	}})
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0000001"),
		parseTermClause(t, "name: first"),
	}})
	return doc
}

func TestOboDocByID(t *testing.T) {
	doc := buildTestDoc(t)
	id, _ := ParseIdent("GO:0000001")
	e, ok := doc.ByID(id)
	if !ok {
		t.Fatal("expected to find GO:0000001")
	}
	term := e.(TermFrame)
	name, _ := term.Clauses[1].(tcName)
	if name.Value.Value != "first" {
		t.Errorf("got %q", name.Value.Value)
	}
	if _, ok := doc.ByID(Ident{Kind: IdentUnprefixed, Unprefixed: "missing"}); ok {
		t.Error("expected ByID to fail for an absent identifier")
	}
}

func TestOboDocSort(t *testing.T) {
	doc := buildTestDoc(t)
	doc.Sort()
	if doc.Entities[0].EntityId().String() != "GO:0000001" {
		t.Errorf("first entity after Sort = %q, want GO:0000001", doc.Entities[0].EntityId().String())
	}
	if doc.Entities[1].EntityId().String() != "GO:0000002" {
		t.Errorf("second entity after Sort = %q, want GO:0000002", doc.Entities[1].EntityId().String())
	}
}

func TestOboDocSortGroupsByFrameKind(t *testing.T) {
	header := HeaderFrame{Clauses: []HeaderClause{
		parseHeaderClause(t, "format-version: 1.4"),
	}}
	doc := NewOboDoc(header)
	doc.Append(InstanceFrame{Clauses: []InstanceClause{
		parseInstanceClause(t, "id: GO:0000009"),
	}})
	doc.Append(TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0000002"),
		parseTermClause(t, "name: second"),
	}})
	doc.Append(TypedefFrame{Clauses: []TypedefClause{
		parseTypedefClause(t, "id: part_of"),
	}})
	doc.Sort()
	if _, ok := doc.Entities[0].(TypedefFrame); !ok {
		t.Errorf("first entity after Sort = %T, want TypedefFrame", doc.Entities[0])
	}
	if _, ok := doc.Entities[1].(TermFrame); !ok {
		t.Errorf("second entity after Sort = %T, want TermFrame", doc.Entities[1])
	}
	if _, ok := doc.Entities[2].(InstanceFrame); !ok {
		t.Errorf("third entity after Sort = %T, want InstanceFrame", doc.Entities[2])
	}
}

func TestTermFrameSortOrdersByVariantThenContent(t *testing.T) {
	frame := TermFrame{Clauses: []TermClause{
		parseTermClause(t, "name: a term"),
		parseTermClause(t, "id: GO:0000001"),
		parseTermClause(t, "xref: B:2"),
		parseTermClause(t, "xref: A:1"),
	}}
	frame.Sort()
	if frame.Clauses[0].TermTag() != "id" {
		t.Errorf("clause 0 tag = %q, want id", frame.Clauses[0].TermTag())
	}
	if frame.Clauses[1].TermTag() != "name" {
		t.Errorf("clause 1 tag = %q, want name", frame.Clauses[1].TermTag())
	}
	if frame.Clauses[2].String() != "xref: A:1" || frame.Clauses[3].String() != "xref: B:2" {
		t.Errorf("same-variant clauses not lexicographically ordered: %v", frame.Clauses[2:4])
	}
}

func TestOboDocValidate(t *testing.T) {
	doc := buildTestDoc(t)
	if errs := doc.Validate(); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
	doc.Entities = append(doc.Entities, TermFrame{Clauses: []TermClause{parseTermClause(t, "id: GO:0000003")}})
	if errs := doc.Validate(); len(errs) == 0 {
		t.Error("expected a validation error for a term frame missing name")
	}
}

func TestOboDocString(t *testing.T) {
	doc := buildTestDoc(t)
	want := "format-version: 1.4\n\n" +
		"[Term]\nid: GO:0000002\nname: second\n\n" +
		"[Term]\nid: GO:0000001\nname: first"
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
