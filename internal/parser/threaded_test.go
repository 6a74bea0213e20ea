package parser

import (
	"strings"
	"testing"

	"github.com/ritamzico/goobo/internal/cache"
)

func buildLargerSample(n int) string {
	var b strings.Builder
	b.WriteString("format-version: 1.4\nontology: go\n\n")
	for i := 0; i < n; i++ {
		b.WriteString("[Term]\n")
		b.WriteString("id: GO:")
		b.WriteString(padID(i))
		b.WriteString("\nname: term number\n\n")
	}
	return b.String()
}

func padID(i int) string {
	s := ""
	n := i
	for k := 0; k < 7; k++ {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}

func TestThreadedParserOrderedMatchesSequential(t *testing.T) {
	text := buildLargerSample(40)

	seq, err := ParseDocument(strings.NewReader(text), cache.New())
	if err != nil {
		t.Fatalf("sequential ParseDocument: %v", err)
	}

	tp := NewThreadedParser(strings.NewReader(text), cache.New(), 4, true)
	threaded, err := tp.ParseDocument()
	if err != nil {
		t.Fatalf("threaded ParseDocument: %v", err)
	}

	if len(threaded.Entities) != len(seq.Entities) {
		t.Fatalf("got %d entities, want %d", len(threaded.Entities), len(seq.Entities))
	}
	for i := range seq.Entities {
		if threaded.Entities[i].EntityId().String() != seq.Entities[i].EntityId().String() {
			t.Errorf("entity %d id = %q, want %q (ordering not preserved)",
				i, threaded.Entities[i].EntityId().String(), seq.Entities[i].EntityId().String())
		}
	}
}

func TestThreadedParserUnorderedCoversAllFrames(t *testing.T) {
	text := buildLargerSample(40)

	tp := NewThreadedParser(strings.NewReader(text), cache.New(), 4, false)
	doc, err := tp.ParseDocument()
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Entities) != 40 {
		t.Fatalf("got %d entities, want 40", len(doc.Entities))
	}
	seen := map[string]bool{}
	for _, e := range doc.Entities {
		seen[e.EntityId().String()] = true
	}
	if len(seen) != 40 {
		t.Errorf("got %d distinct ids, want 40", len(seen))
	}
}

func TestThreadedParserDefaultWorkerCount(t *testing.T) {
	tp := NewThreadedParser(strings.NewReader(sampleDoc), cache.New(), 0, true)
	if tp.Workers <= 0 {
		t.Errorf("Workers = %d, want a positive default", tp.Workers)
	}
}

func TestThreadedParserPropagatesSyntaxError(t *testing.T) {
	bad := "format-version: 1.4\n\n[Term]\nid: GO:0000001\nbogus_tag: oops\n"
	tp := NewThreadedParser(strings.NewReader(bad), cache.New(), 2, true)
	if _, err := tp.ParseDocument(); err == nil {
		t.Fatal("expected an error for an unknown term clause tag")
	}
}
