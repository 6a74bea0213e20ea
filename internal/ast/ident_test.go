package ast

import "testing"

func TestParseIdentPrefixed(t *testing.T) {
	id, err := ParseIdent("GO:0008150")
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.Kind != IdentPrefixed {
		t.Fatalf("Kind = %v, want IdentPrefixed", id.Kind)
	}
	if id.Prefix != "GO" || id.Local != "0008150" {
		t.Errorf("Prefix/Local = %q/%q, want GO/0008150", id.Prefix, id.Local)
	}
	if !id.IsCanonical() {
		t.Error("GO:0008150 should be canonical")
	}
	if got := id.String(); got != "GO:0008150" {
		t.Errorf("String() = %q, want GO:0008150", got)
	}
}

func TestParseIdentUnprefixed(t *testing.T) {
	id, err := ParseIdent("part_of")
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.Kind != IdentUnprefixed {
		t.Fatalf("Kind = %v, want IdentUnprefixed", id.Kind)
	}
	if id.IsCanonical() {
		t.Error("unprefixed identifier must not be canonical")
	}
	if got := id.String(); got != "part_of" {
		t.Errorf("String() = %q, want part_of", got)
	}
}

func TestParseIdentURL(t *testing.T) {
	id, err := ParseIdent("http://purl.obolibrary.org/obo/GO_0008150")
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.Kind != IdentURL {
		t.Fatalf("Kind = %v, want IdentURL", id.Kind)
	}
	if got := id.String(); got != "http://purl.obolibrary.org/obo/GO_0008150" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseIdentCanonicalPrefixAllowsTrailingDigits(t *testing.T) {
	id, err := ParseIdent("GO2:0008150")
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if !id.IsCanonical() {
		t.Error("GO2:0008150 should be canonical (digits are allowed after the leading letter)")
	}
	if got := id.String(); got != "GO2:0008150" {
		t.Errorf("String() = %q, want GO2:0008150", got)
	}
}

func TestParseIdentNonCanonicalPrefix(t *testing.T) {
	id, err := ParseIdent("my-thing:foo")
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.IsCanonical() {
		t.Error("my-thing:foo should not be canonical (non-alpha prefix chars)")
	}
}

func TestParseIdentEscapedColonDoesNotSplit(t *testing.T) {
	id, err := ParseIdent(`weird\:name`)
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.Kind != IdentUnprefixed {
		t.Fatalf("Kind = %v, want IdentUnprefixed (escaped colon must not split)", id.Kind)
	}
	if id.Unprefixed != "weird:name" {
		t.Errorf("Unprefixed = %q, want weird:name", id.Unprefixed)
	}
}

func TestParseIdentEmptyIsError(t *testing.T) {
	if _, err := ParseIdent(""); err == nil {
		t.Error("ParseIdent(\"\") should error")
	}
}

func TestParseIdentRoundTripsEscapedPrefix(t *testing.T) {
	id, err := ParseIdent(`has\ space:0001`)
	if err != nil {
		t.Fatalf("ParseIdent: %v", err)
	}
	if id.Prefix != "has space" {
		t.Errorf("Prefix = %q, want %q", id.Prefix, "has space")
	}
	if got := id.String(); got != `has\ space:0001` {
		t.Errorf("String() = %q, want %q", got, `has\ space:0001`)
	}
}
