// Package visit implements concrete traversal passes over an
// *ast.OboDoc, built on the MapIdents hook package ast exposes for
// exactly this purpose (the clause variant types stay unexported
// inside ast; everything outside it goes through that one seam).
package visit

import (
	"strings"

	"github.com/ritamzico/goobo/internal/ast"
)

// oboPurlPrefix is the default OBO Library PURL template identifiers
// fall back to when no idspace declaration covers their prefix:
// http://purl.obolibrary.org/obo/{prefix}_{local}.
const oboPurlPrefix = "http://purl.obolibrary.org/obo/"

// IdCompactor rewrites every URL identifier whose text starts with one
// of a known idspace's URL prefix into the equivalent prefixed (CURIE)
// identifier. Two distinct URLs sharing a declared prefix's text by
// coincidence rather than by idspace membership would compact
// identically; callers that need to guard against that should only
// build Prefixes from idspace declarations they trust. URLs that match
// no declared idspace but do factor as the default OBO PURL template
// are compacted against that template instead, unless the candidate
// prefix is itself declared (which would make compaction and
// decompaction disagree about which rule produced the URL).
type IdCompactor struct {
	// Prefixes maps a short prefix (e.g. "GO") to the URL prefix its
	// idspace declares (e.g. "http://purl.obolibrary.org/obo/GO_").
	Prefixes map[string]string
}

// NewIdCompactor builds an IdCompactor from a header's idspace
// declarations.
func NewIdCompactor(header ast.HeaderFrame) *IdCompactor {
	return &IdCompactor{Prefixes: header.Idspaces()}
}

// Compact rewrites doc in place.
func (c *IdCompactor) Compact(doc *ast.OboDoc) {
	doc.MapIdents(func(id ast.Ident) ast.Ident {
		if id.Kind != ast.IdentURL {
			return id
		}
		full := id.URL.String()
		for prefix, urlPrefix := range c.Prefixes {
			if strings.HasPrefix(full, urlPrefix) {
				local := strings.TrimPrefix(full, urlPrefix)
				if local == "" {
					continue
				}
				compacted, err := ast.ParseIdent(prefix + ":" + local)
				if err != nil {
					continue
				}
				return compacted
			}
		}
		if rest, ok := strings.CutPrefix(full, oboPurlPrefix); ok {
			if i := strings.IndexByte(rest, '_'); i > 0 && i < len(rest)-1 {
				prefix, local := rest[:i], rest[i+1:]
				if _, declared := c.Prefixes[prefix]; !declared {
					if compacted, err := ast.ParseIdent(prefix + ":" + local); err == nil {
						return compacted
					}
				}
			}
		}
		return id
	})
}

// IdDecompactor is IdCompactor's inverse: it rewrites every prefixed
// identifier into the full URL identifier its idspace expands to, or,
// absent a declared idspace for that prefix, into the default OBO PURL
// template http://purl.obolibrary.org/obo/{prefix}_{local}. Compacting
// and then decompacting (or the reverse) with the same Prefixes table is
// idempotent: an identifier already in its target form passes through
// unchanged.
type IdDecompactor struct {
	Prefixes map[string]string
}

func NewIdDecompactor(header ast.HeaderFrame) *IdDecompactor {
	return &IdDecompactor{Prefixes: header.Idspaces()}
}

func (d *IdDecompactor) Decompact(doc *ast.OboDoc) {
	doc.MapIdents(func(id ast.Ident) ast.Ident {
		if id.Kind != ast.IdentPrefixed {
			return id
		}
		urlPrefix, ok := d.Prefixes[id.Prefix]
		newURL := ""
		if ok {
			newURL = urlPrefix + id.Local
		} else {
			newURL = oboPurlPrefix + id.Prefix + "_" + id.Local
		}
		expanded, err := ast.ParseIdent(newURL)
		if err != nil {
			return id
		}
		return expanded
	})
}
