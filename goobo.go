// Package goobo parses, represents, and serializes OBO Flat File
// Format 1.4 documents: term/typedef/instance ontologies such as the
// Gene Ontology, ChEBI, or PATO.
package goobo

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ritamzico/goobo/internal/ast"
	"github.com/ritamzico/goobo/internal/cache"
	"github.com/ritamzico/goobo/internal/parser"
)

// Document is the parsed, typed representation of an OBO document.
type Document = ast.OboDoc

// Cache is the shared string interner; pass the same *Cache to every
// Parse call that reads related documents to amortize interning
// across them.
type Cache = cache.Cache

// NewCache returns an empty, concurrency-safe string interner.
func NewCache() *Cache { return cache.New() }

// Parse reads r with the sequential streaming parser, returning the
// fully assembled document or the first error encountered (a
// *lex.SyntaxError for a grammar violation, or the underlying read
// error).
func Parse(r io.Reader, c *Cache) (*Document, error) {
	return parser.ParseDocument(r, c)
}

// ParseFile opens path and parses it.
func ParseFile(path string, c *Cache) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, c)
}

// ParseThreaded reads r by fanning frame text out to workers goroutines
// (workers <= 0 picks runtime.GOMAXPROCS(0)). With ordered set, the
// returned document's entity frames are in source order; otherwise
// they are in whatever order workers happened to finish, which is
// faster when order does not matter to the caller.
func ParseThreaded(r io.Reader, c *Cache, workers int, ordered bool) (*Document, error) {
	return parser.NewThreadedParser(r, c, workers, ordered).ParseDocument()
}

// Write renders doc back to its OBO text form.
func Write(doc *Document, w io.Writer) error {
	_, err := io.WriteString(w, doc.String()+"\n")
	return err
}

// WriteFile renders doc to path, creating or truncating it.
func WriteFile(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(doc, f)
}

// jsonFrame is one entity frame's JSON-envelope projection: its kind
// discriminator, the identifier naming it, and its OBO text rendering.
// Clause variants stay unexported inside package ast, so the envelope
// does not attempt to reproduce the clause structure field-by-field;
// Text carries the authoritative, round-trippable representation.
type jsonFrame struct {
	Kind string `json:"kind"`
	Id   string `json:"id"`
	Text string `json:"text"`
}

type jsonDoc struct {
	Header   []string    `json:"header"`
	Entities []jsonFrame `json:"entities"`
}

// ToJSON renders doc as the kind-tagged JSON envelope cmd/oboserve
// returns to HTTP clients.
func ToJSON(doc *Document) ([]byte, error) {
	jd := jsonDoc{}
	for _, c := range doc.Header.Clauses {
		jd.Header = append(jd.Header, c.String())
	}
	for _, e := range doc.Entities {
		kind := "term"
		switch e.(type) {
		case ast.TypedefFrame:
			kind = "typedef"
		case ast.InstanceFrame:
			kind = "instance"
		}
		jd.Entities = append(jd.Entities, jsonFrame{Kind: kind, Id: e.EntityId().String(), Text: e.String()})
	}
	return json.MarshalIndent(jd, "", "  ")
}
