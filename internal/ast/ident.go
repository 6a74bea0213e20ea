// Package ast implements the OBO 1.4 abstract syntax tree: typed frames,
// clauses, and value types, each with a FromPair-equivalent constructor
// (ParseXxx) built from the raw clause-line text, and a String method
// whose output parses back to an equal value. String renders a value in
// its normalized form, not the original text byte for byte. Clause values
// do not record a trailing `! comment` or `{...}` qualifier list, so
// String does not reproduce them.
package ast

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ritamzico/goobo/internal/escape"
)

// IdentKind discriminates the three surface forms an identifier can
// take: a CURIE-style prefixed id (GO:0008150), a bare unprefixed local
// id (shorthand), or a full URL used directly as an identifier.
type IdentKind int

const (
	IdentPrefixed IdentKind = iota
	IdentUnprefixed
	IdentURL
)

// Ident is the untyped identifier sum type every OBO id reduces to.
// ClassIdent, RelationIdent, InstanceIdent, NamespaceIdent, SubsetIdent,
// and SynonymTypeIdent are all thin Ident wrappers, distinguished only
// by which clause positions accept them; the grammar does not otherwise
// constrain which kind of entity an id names.
type Ident struct {
	Kind IdentKind

	// Prefixed form.
	Prefix         string
	PrefixCanon    bool
	Local          string
	LocalCanon     bool

	// Unprefixed form.
	Unprefixed string

	// URL form.
	URL *url.URL
}

// ClassIdent, RelationIdent, InstanceIdent, NamespaceIdent, SubsetIdent
// and SynonymTypeIdent restrict Ident to the clause positions the OBO
// guide assigns them; all share Ident's parsing and display rules.
type (
	ClassIdent       struct{ Ident }
	RelationIdent    struct{ Ident }
	InstanceIdent    struct{ Ident }
	NamespaceIdent   struct{ Ident }
	SubsetIdent      struct{ Ident }
	SynonymTypeIdent struct{ Ident }
)

func isCanonicalPrefix(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case (r >= '0' && r <= '9' || r == '_') && i > 0:
		default:
			return false
		}
	}
	return true
}

func isCanonicalLocal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitUnescapedColon finds the first ':' in s not preceded by an odd
// number of backslashes, returning the prefix/local halves and whether
// a split was found. The line/clause splitter already isolated this
// identifier's text, so this scan never sees the trailing newline or
// whitespace that would terminate an id in context.
func splitUnescapedColon(s string) (prefix, local string, ok bool) {
	backslashes := 0
	for i, r := range s {
		if r == '\\' {
			backslashes++
			continue
		}
		if r == ':' && backslashes%2 == 0 {
			return s[:i], s[i+len(string(r)):], true
		}
		backslashes = 0
	}
	return "", "", false
}

// ParseIdent builds an Ident from raw (already unescaped-at-the-line-
// level, still possibly carrying per-character escapes) identifier
// text, dispatching prefixed / unprefixed / URL: a UrlId if the whole
// text parses as an absolute URL with a host (scheme://host/...), else a
// PrefixedId if an unescaped colon splits it into two non-empty halves,
// else a UrlId if it parses as any other absolute URL, and an
// UnprefixedId otherwise.
func ParseIdent(raw string) (Ident, error) {
	if raw == "" {
		return Ident{}, fmt.Errorf("ast: empty identifier")
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() && u.Host != "" {
		return Ident{Kind: IdentURL, URL: u}, nil
	}
	if prefix, local, ok := splitUnescapedColon(raw); ok && prefix != "" && local != "" {
		p, pok := escape.Unescape(prefix)
		l, lok := escape.Unescape(local)
		if !pok || !lok {
			return Ident{}, fmt.Errorf("ast: malformed escape in identifier %q", raw)
		}
		return Ident{
			Kind:        IdentPrefixed,
			Prefix:      p,
			PrefixCanon: isCanonicalPrefix(p),
			Local:       l,
			LocalCanon:  isCanonicalLocal(l),
		}, nil
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		return Ident{Kind: IdentURL, URL: u}, nil
	}
	unescaped, ok := escape.Unescape(raw)
	if !ok {
		return Ident{}, fmt.Errorf("ast: malformed escape in identifier %q", raw)
	}
	return Ident{Kind: IdentUnprefixed, Unprefixed: unescaped}, nil
}

// IsCanonical reports whether the identifier is in the form the OBO
// guide calls canonical: a prefixed id whose prefix is a letter followed
// by letters, digits or underscores, and whose local part is all digits. Unprefixed and URL
// identifiers are never canonical.
func (id Ident) IsCanonical() bool {
	return id.Kind == IdentPrefixed && id.PrefixCanon && id.LocalCanon
}

func (id Ident) String() string {
	switch id.Kind {
	case IdentPrefixed:
		var b strings.Builder
		escape.Escape(&b, id.Prefix, escape.Ident)
		b.WriteByte(':')
		escape.Escape(&b, id.Local, escape.Ident)
		return b.String()
	case IdentURL:
		return id.URL.String()
	default:
		var b strings.Builder
		escape.Escape(&b, id.Unprefixed, escape.Ident)
		return b.String()
	}
}

func ParseClassIdent(raw string) (ClassIdent, error) {
	id, err := ParseIdent(raw)
	return ClassIdent{id}, err
}

func ParseRelationIdent(raw string) (RelationIdent, error) {
	id, err := ParseIdent(raw)
	return RelationIdent{id}, err
}

func ParseInstanceIdent(raw string) (InstanceIdent, error) {
	id, err := ParseIdent(raw)
	return InstanceIdent{id}, err
}

func ParseNamespaceIdent(raw string) (NamespaceIdent, error) {
	id, err := ParseIdent(raw)
	return NamespaceIdent{id}, err
}

func ParseSubsetIdent(raw string) (SubsetIdent, error) {
	id, err := ParseIdent(raw)
	return SubsetIdent{id}, err
}

func ParseSynonymTypeIdent(raw string) (SynonymTypeIdent, error) {
	id, err := ParseIdent(raw)
	return SynonymTypeIdent{id}, err
}
