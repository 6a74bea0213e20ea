package visit

import (
	"testing"

	"github.com/ritamzico/goobo/internal/ast"
)

func parseHeader(t *testing.T, lines ...string) ast.HeaderFrame {
	t.Helper()
	var h ast.HeaderFrame
	for _, l := range lines {
		c, err := ast.ParseHeaderClause(l)
		if err != nil {
			t.Fatalf("ParseHeaderClause(%q): %v", l, err)
		}
		h.Clauses = append(h.Clauses, c)
	}
	return h
}

func parseTerm(t *testing.T, lines ...string) ast.TermFrame {
	t.Helper()
	var f ast.TermFrame
	for _, l := range lines {
		c, err := ast.ParseTermClause(l)
		if err != nil {
			t.Fatalf("ParseTermClause(%q): %v", l, err)
		}
		f.Clauses = append(f.Clauses, c)
	}
	return f
}

func TestIdCompactorRewritesURLToCURIE(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4", "idspace: GO http://purl.obolibrary.org/obo/GO_")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t,
		"id: http://purl.obolibrary.org/obo/GO_0008150",
		"name: biological_process",
	))

	NewIdCompactor(header).Compact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "GO:0008150" {
		t.Errorf("EntityId() after Compact = %q, want GO:0008150", got)
	}
}

func TestIdDecompactorRewritesCURIEToURL(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4", "idspace: GO http://purl.obolibrary.org/obo/GO_")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t, "id: GO:0008150", "name: biological_process"))

	NewIdDecompactor(header).Decompact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "http://purl.obolibrary.org/obo/GO_0008150" {
		t.Errorf("EntityId() after Decompact = %q", got)
	}
}

func TestCompactDecompactRoundTrip(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4", "idspace: GO http://purl.obolibrary.org/obo/GO_")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t, "id: GO:0008150", "name: biological_process"))
	original := doc.Entities[0].EntityId().String()

	NewIdDecompactor(header).Decompact(doc)
	NewIdCompactor(header).Compact(doc)

	if got := doc.Entities[0].EntityId().String(); got != original {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestIdCompactorUsesDefaultObolibraryPurlWhenNoIdspaceDeclared(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t,
		"id: http://purl.obolibrary.org/obo/BFO_0000055",
		"name: realizable entity",
	))

	NewIdCompactor(header).Compact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "BFO:0000055" {
		t.Errorf("EntityId() after Compact = %q, want BFO:0000055", got)
	}
}

func TestIdCompactorSkipsDefaultPurlWhenPrefixIsDeclared(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4", "idspace: GO http://example.org/custom/GO_")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t,
		"id: http://purl.obolibrary.org/obo/GO_0008150",
		"name: biological_process",
	))

	NewIdCompactor(header).Compact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "http://purl.obolibrary.org/obo/GO_0008150" {
		t.Errorf("EntityId() should be left unchanged when GO is declared to a different URL, got %q", got)
	}
}

func TestIdDecompactorUsesDefaultObolibraryPurlWhenNoIdspaceDeclared(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t, "id: BFO:0000055", "name: realizable entity"))

	NewIdDecompactor(header).Decompact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "http://purl.obolibrary.org/obo/BFO_0000055" {
		t.Errorf("EntityId() after Decompact = %q, want the default PURL form", got)
	}
}

func TestIdCompactorIgnoresUnrelatedPrefix(t *testing.T) {
	header := parseHeader(t, "format-version: 1.4", "idspace: GO http://purl.obolibrary.org/obo/GO_")
	doc := ast.NewOboDoc(header)
	doc.Append(parseTerm(t, "id: http://example.org/other/0001", "name: unrelated"))

	NewIdCompactor(header).Compact(doc)

	if got := doc.Entities[0].EntityId().String(); got != "http://example.org/other/0001" {
		t.Errorf("unrelated URL should not be compacted, got %q", got)
	}
}
