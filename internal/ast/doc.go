package ast

import (
	"sort"
	"strings"
)

// OboDoc is the root of a parsed OBO document: one header frame
// followed by any number of entity frames, exactly as both streaming
// parsers assemble their output, mirroring
// TryFrom<SequentialParser<B>> for OboDoc in the reference parser.
type OboDoc struct {
	Header   HeaderFrame
	Entities []EntityFrame
}

// NewOboDoc returns an empty document with the given header.
func NewOboDoc(header HeaderFrame) *OboDoc {
	return &OboDoc{Header: header}
}

// Append adds one entity frame to the document, preserving arrival
// order; this is the assembly step both the sequential and threaded
// parsers call once per frame they emit.
func (d *OboDoc) Append(e EntityFrame) {
	d.Entities = append(d.Entities, e)
}

// ByID looks up an entity frame by its identifier's string form.
// It scans the entities linearly (O(n)) and keeps no index, since parsing
// builds the whole document once and lookups during a single traversal
// are rare enough that a persistent index is not worth maintaining
// against mutation by the visitor passes.
func (d *OboDoc) ByID(id Ident) (EntityFrame, bool) {
	target := id.String()
	for _, e := range d.Entities {
		if e.EntityId().String() == target {
			return e, true
		}
	}
	return nil, false
}

// frameKindRank orders entity frames Typedef -> Term -> Instance, the
// order the guide's own serialisation convention groups stanzas in.
func frameKindRank(e EntityFrame) int {
	switch e.(type) {
	case TypedefFrame:
		return 0
	case TermFrame:
		return 1
	case InstanceFrame:
		return 2
	default:
		return 3
	}
}

// Sort reorders Entities into a total, canonical order: frames grouped
// Typedef -> Term -> Instance, each group ordered by identifier text, and
// every frame's own clauses sorted by variant declaration order then
// lexicographically by content. The OBO guide does not require frames to
// appear in any particular order; sorting is the one operation spec.md's
// ordering invariant opts into explicitly, useful for diffing. Callers
// that need to preserve source order simply skip calling Sort.
func (d *OboDoc) Sort() {
	d.Header.Sort()
	for _, e := range d.Entities {
		switch f := e.(type) {
		case TermFrame:
			f.Sort()
		case TypedefFrame:
			f.Sort()
		case InstanceFrame:
			f.Sort()
		}
	}
	sort.SliceStable(d.Entities, func(i, j int) bool {
		ri, rj := frameKindRank(d.Entities[i]), frameKindRank(d.Entities[j])
		if ri != rj {
			return ri < rj
		}
		return d.Entities[i].EntityId().String() < d.Entities[j].EntityId().String()
	})
}

// Validate runs cardinality checks across the header and every entity
// frame, returning every violation found.
func (d *OboDoc) Validate() []error {
	var errs []error
	errs = append(errs, d.Header.Validate()...)
	for _, e := range d.Entities {
		errs = append(errs, e.Validate()...)
	}
	return errs
}

func (d *OboDoc) String() string {
	var b strings.Builder
	b.WriteString(d.Header.String())
	for _, e := range d.Entities {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(e.String())
	}
	return b.String()
}
