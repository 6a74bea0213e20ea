package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/ritamzico/goobo/internal/cache"
	"github.com/ritamzico/goobo/internal/lex"
)

const sampleDoc = `format-version: 1.4
ontology: go

[Term]
id: GO:0000001
name: mitochondrion inheritance
namespace: biological_process

[Term]
id: GO:0000002
name: mitochondrial genome maintenance
is_a: GO:0000001

[Typedef]
id: part_of
name: part of
`

func TestSequentialParserNext(t *testing.T) {
	p := NewSequentialParser(strings.NewReader(sampleDoc), cache.New())

	header, err := p.Next()
	if err != nil {
		t.Fatalf("header Next: %v", err)
	}
	if len(header.Header.Clauses) != 2 {
		t.Fatalf("got %d header clauses, want 2", len(header.Header.Clauses))
	}

	first, err := p.Next()
	if err != nil {
		t.Fatalf("first entity Next: %v", err)
	}
	if first.Entity.EntityId().String() != "GO:0000001" {
		t.Errorf("first entity id = %q", first.Entity.EntityId().String())
	}

	second, err := p.Next()
	if err != nil {
		t.Fatalf("second entity Next: %v", err)
	}
	if second.Entity.EntityId().String() != "GO:0000002" {
		t.Errorf("second entity id = %q", second.Entity.EntityId().String())
	}

	third, err := p.Next()
	if err != nil {
		t.Fatalf("third entity Next: %v", err)
	}
	if third.Entity.EntityId().String() != "part_of" {
		t.Errorf("third entity id = %q", third.Entity.EntityId().String())
	}

	if _, err := p.Next(); err != io.EOF {
		t.Errorf("final Next() error = %v, want io.EOF", err)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleDoc), cache.New())
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(doc.Entities))
	}
	if doc.Entities[0].EntityId().String() != "GO:0000001" {
		t.Errorf("first entity = %q", doc.Entities[0].EntityId().String())
	}
}

func TestParseDocumentSyntaxErrorHasDocumentAbsoluteLine(t *testing.T) {
	bad := "format-version: 1.4\n\n[Term]\nid: GO:0000001\nbogus_tag: oops\n"
	_, err := ParseDocument(strings.NewReader(bad), cache.New())
	if err == nil {
		t.Fatal("expected a syntax error for an unknown term clause tag")
	}
	se, ok := err.(*lex.SyntaxError)
	if !ok {
		t.Fatalf("expected a *lex.SyntaxError, got %T: %v", err, err)
	}
	if se.Line != 5 {
		t.Errorf("SyntaxError.Line = %d, want 5 (document-absolute)", se.Line)
	}
}
