package goobo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const sample = `format-version: 1.4
ontology: go

[Term]
id: GO:0008150
name: biological_process

[Term]
id: GO:0009987
name: cellular process
is_a: GO:0008150
`

func TestParseAndWriteRoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample), NewCache())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Entities) != 2 {
		t.Fatalf("got %d entities, want 2", len(doc.Entities))
	}

	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	reparsed, err := Parse(strings.NewReader(buf.String()), NewCache())
	if err != nil {
		t.Fatalf("re-Parse of Written output: %v", err)
	}
	if len(reparsed.Entities) != len(doc.Entities) {
		t.Fatalf("got %d entities after round trip, want %d", len(reparsed.Entities), len(doc.Entities))
	}
	for i := range doc.Entities {
		if reparsed.Entities[i].String() != doc.Entities[i].String() {
			t.Errorf("entity %d changed across round trip:\n%s\nvs\n%s", i, reparsed.Entities[i], doc.Entities[i])
		}
	}
}

func TestParseThreadedMatchesParse(t *testing.T) {
	sequential, err := Parse(strings.NewReader(sample), NewCache())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	threaded, err := ParseThreaded(strings.NewReader(sample), NewCache(), 2, true)
	if err != nil {
		t.Fatalf("ParseThreaded: %v", err)
	}
	if len(threaded.Entities) != len(sequential.Entities) {
		t.Fatalf("got %d entities, want %d", len(threaded.Entities), len(sequential.Entities))
	}
	for i := range sequential.Entities {
		if threaded.Entities[i].EntityId().String() != sequential.Entities[i].EntityId().String() {
			t.Errorf("entity %d id mismatch: %q vs %q", i,
				threaded.Entities[i].EntityId().String(), sequential.Entities[i].EntityId().String())
		}
	}
}

func TestToJSON(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample), NewCache())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := ToJSON(doc)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var jd jsonDoc
	if err := json.Unmarshal(b, &jd); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(jd.Entities) != 2 {
		t.Fatalf("got %d JSON entities, want 2", len(jd.Entities))
	}
	if jd.Entities[0].Kind != "term" || jd.Entities[0].Id != "GO:0008150" {
		t.Errorf("got %+v", jd.Entities[0])
	}
}

func TestParseSyntaxError(t *testing.T) {
	bad := "format-version: 1.4\n\n[Term]\nid: GO:0000001\nbogus_tag: oops\n"
	if _, err := Parse(strings.NewReader(bad), NewCache()); err == nil {
		t.Fatal("expected a parse error for an unknown term clause tag")
	}
}
