package ast

import "testing"

func parseTermClause(t *testing.T, line string) TermClause {
	t.Helper()
	c, err := ParseTermClause(line)
	if err != nil {
		t.Fatalf("ParseTermClause(%q): %v", line, err)
	}
	return c
}

func TestTermFrameRoundTrip(t *testing.T) {
	frame := TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0008150"),
		parseTermClause(t, "name: biological_process"),
		parseTermClause(t, `def: "Any process." [GOC:go_curators]`),
		parseTermClause(t, "is_a: GO:0003674"),
	}}
	want := "[Term]\n" +
		"id: GO:0008150\n" +
		"name: biological_process\n" +
		`def: "Any process." [GOC:go_curators]` + "\n" +
		"is_a: GO:0003674"
	if got := frame.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	id, ok := frame.Id()
	if !ok || id.String() != "GO:0008150" {
		t.Errorf("Id() = (%v,%v)", id, ok)
	}
	if errs := frame.Validate(); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestTermFrameValidateMissingName(t *testing.T) {
	frame := TermFrame{Clauses: []TermClause{parseTermClause(t, "id: GO:0008150")}}
	errs := frame.Validate()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (missing name)", len(errs))
	}
}

func TestTermClauseIntersectionOfBothForms(t *testing.T) {
	c1 := parseTermClause(t, "intersection_of: GO:0008150")
	if got := c1.String(); got != "intersection_of: GO:0008150" {
		t.Errorf("String() = %q", got)
	}
	c2 := parseTermClause(t, "intersection_of: part_of GO:0008150")
	if got := c2.String(); got != "intersection_of: part_of GO:0008150" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseTermClauseUnknownTag(t *testing.T) {
	if _, err := ParseTermClause("bogus_tag: value"); err == nil {
		t.Error("expected an error for an unknown term clause tag")
	}
}

func parseTypedefClause(t *testing.T, line string) TypedefClause {
	t.Helper()
	c, err := ParseTypedefClause(line)
	if err != nil {
		t.Fatalf("ParseTypedefClause(%q): %v", line, err)
	}
	return c
}

func TestTypedefFrameRoundTrip(t *testing.T) {
	frame := TypedefFrame{Clauses: []TypedefClause{
		parseTypedefClause(t, "id: part_of"),
		parseTypedefClause(t, "name: part of"),
		parseTypedefClause(t, "is_transitive: true"),
	}}
	want := "[Typedef]\nid: part_of\nname: part of\nis_transitive: true"
	if got := frame.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if errs := frame.Validate(); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func parseInstanceClause(t *testing.T, line string) InstanceClause {
	t.Helper()
	c, err := ParseInstanceClause(line)
	if err != nil {
		t.Fatalf("ParseInstanceClause(%q): %v", line, err)
	}
	return c
}

func TestInstanceFrameRoundTrip(t *testing.T) {
	frame := InstanceFrame{Clauses: []InstanceClause{
		parseInstanceClause(t, "id: my_instance"),
		parseInstanceClause(t, "instance_of: GO:0008150"),
	}}
	want := "[Instance]\nid: my_instance\ninstance_of: GO:0008150"
	if got := frame.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if errs := frame.Validate(); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestFrameWrapsHeaderAndEntity(t *testing.T) {
	term := TermFrame{Clauses: []TermClause{
		parseTermClause(t, "id: GO:0008150"),
		parseTermClause(t, "name: biological_process"),
	}}
	f := NewEntityFrame(term)
	if f.Kind != FrameEntity {
		t.Errorf("Kind = %v, want FrameEntity", f.Kind)
	}
	if f.String() != term.String() {
		t.Error("Frame.String() should delegate to the wrapped entity")
	}
	if f.Entity.EntityId().String() != "GO:0008150" {
		t.Errorf("EntityId() = %q", f.Entity.EntityId().String())
	}
}
