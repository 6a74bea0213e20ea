package ast

// MapIdents rewrites every identifier appearing anywhere in doc (every
// header clause, every entity frame's id and every clause referencing
// another entity) through fn, in place. This is the one traversal hook
// every concrete visitor pass (id compaction, id decompaction) in
// package visit is built from, since the clause variant types
// themselves are unexported outside this package.
func (d *OboDoc) MapIdents(fn func(Ident) Ident) {
	for i, c := range d.Header.Clauses {
		d.Header.Clauses[i] = mapHeaderClauseIdents(c, fn)
	}
	for i, e := range d.Entities {
		switch frame := e.(type) {
		case TermFrame:
			for j, c := range frame.Clauses {
				frame.Clauses[j] = mapTermClauseIdents(c, fn)
			}
			d.Entities[i] = frame
		case TypedefFrame:
			for j, c := range frame.Clauses {
				frame.Clauses[j] = mapTypedefClauseIdents(c, fn)
			}
			d.Entities[i] = frame
		case InstanceFrame:
			for j, c := range frame.Clauses {
				frame.Clauses[j] = mapInstanceClauseIdents(c, fn)
			}
			d.Entities[i] = frame
		}
	}
}

func mapHeaderClauseIdents(c HeaderClause, fn func(Ident) Ident) HeaderClause {
	switch hc := c.(type) {
	case hcImport:
		hc.Value = fn(hc.Value)
		return hc
	case hcDefaultNamespace:
		hc.Value.Ident = fn(hc.Value.Ident)
		return hc
	case hcSubsetdef:
		hc.Subset.Ident = fn(hc.Subset.Ident)
		return hc
	case hcSynonymTypedef:
		hc.Type.Ident = fn(hc.Type.Ident)
		return hc
	case hcTreatXrefsAsGenusDifferentia:
		hc.Relation.Ident = fn(hc.Relation.Ident)
		hc.Filler.Ident = fn(hc.Filler.Ident)
		return hc
	case hcTreatXrefsAsReverseGenusDifferentia:
		hc.Relation.Ident = fn(hc.Relation.Ident)
		hc.Filler.Ident = fn(hc.Filler.Ident)
		return hc
	case hcTreatXrefsAsRelationship:
		hc.Relation.Ident = fn(hc.Relation.Ident)
		return hc
	case hcPropertyValue:
		hc.Value = mapPropertyValueIdents(hc.Value, fn)
		return hc
	default:
		return c
	}
}

func mapPropertyValueIdents(pv PropertyValue, fn func(Ident) Ident) PropertyValue {
	pv.Relation.Ident = fn(pv.Relation.Ident)
	if pv.IsLiteral {
		pv.Datatype = fn(pv.Datatype)
	} else {
		pv.Resource = fn(pv.Resource)
	}
	return pv
}

func mapXrefIdents(x Xref, fn func(Ident) Ident) Xref {
	x.Id = fn(x.Id)
	return x
}

func mapXrefListIdents(xs XrefList, fn func(Ident) Ident) XrefList {
	for i := range xs.Xrefs {
		xs.Xrefs[i] = mapXrefIdents(xs.Xrefs[i], fn)
	}
	return xs
}

func mapSynonymIdents(s Synonym, fn func(Ident) Ident) Synonym {
	if s.HasType {
		s.Type.Ident = fn(s.Type.Ident)
	}
	s.Xrefs = mapXrefListIdents(s.Xrefs, fn)
	return s
}

func mapTermClauseIdents(c TermClause, fn func(Ident) Ident) TermClause {
	switch tc := c.(type) {
	case tcId:
		tc.Id.Ident = fn(tc.Id.Ident)
		return tc
	case tcNamespace:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcAltId:
		tc.Value = fn(tc.Value)
		return tc
	case tcDef:
		tc.Xrefs = mapXrefListIdents(tc.Xrefs, fn)
		return tc
	case tcSubset:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcSynonym:
		tc.Value = mapSynonymIdents(tc.Value, fn)
		return tc
	case tcXref:
		tc.Value = mapXrefIdents(tc.Value, fn)
		return tc
	case tcPropertyValue:
		tc.Value = mapPropertyValueIdents(tc.Value, fn)
		return tc
	case tcIsA:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcIntersectionOf:
		if tc.HasRelation {
			tc.Relation.Ident = fn(tc.Relation.Ident)
		}
		tc.Class.Ident = fn(tc.Class.Ident)
		return tc
	case tcUnionOf:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcEquivalentTo:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcDisjointFrom:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcRelationship:
		tc.Relation.Ident = fn(tc.Relation.Ident)
		tc.Class.Ident = fn(tc.Class.Ident)
		return tc
	case tcReplacedBy:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	case tcConsider:
		tc.Value.Ident = fn(tc.Value.Ident)
		return tc
	default:
		return c
	}
}

func mapTypedefClauseIdents(c TypedefClause, fn func(Ident) Ident) TypedefClause {
	switch yd := c.(type) {
	case ydId:
		yd.Id.Ident = fn(yd.Id.Ident)
		return yd
	case ydNamespace:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydAltId:
		yd.Value = fn(yd.Value)
		return yd
	case ydDef:
		yd.Xrefs = mapXrefListIdents(yd.Xrefs, fn)
		return yd
	case ydSubset:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydSynonym:
		yd.Value = mapSynonymIdents(yd.Value, fn)
		return yd
	case ydXref:
		yd.Value = mapXrefIdents(yd.Value, fn)
		return yd
	case ydPropertyValue:
		yd.Value = mapPropertyValueIdents(yd.Value, fn)
		return yd
	case ydDomain:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydRange:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydIsA:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydUnionOf:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydEquivalentTo:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydDisjointFrom:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydInverseOf:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydTransitiveOver:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydEquivalentToChain:
		yd.First.Ident = fn(yd.First.Ident)
		yd.Second.Ident = fn(yd.Second.Ident)
		return yd
	case ydDisjointOver:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydHoldsOverChain:
		yd.First.Ident = fn(yd.First.Ident)
		yd.Second.Ident = fn(yd.Second.Ident)
		return yd
	case ydExpandAssertionTo:
		yd.Xrefs = mapXrefListIdents(yd.Xrefs, fn)
		return yd
	case ydExpandExpressionTo:
		yd.Xrefs = mapXrefListIdents(yd.Xrefs, fn)
		return yd
	case ydReplacedBy:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	case ydConsider:
		yd.Value.Ident = fn(yd.Value.Ident)
		return yd
	default:
		return c
	}
}

func mapInstanceClauseIdents(c InstanceClause, fn func(Ident) Ident) InstanceClause {
	switch ic := c.(type) {
	case icId:
		ic.Id.Ident = fn(ic.Id.Ident)
		return ic
	case icNamespace:
		ic.Value.Ident = fn(ic.Value.Ident)
		return ic
	case icAltId:
		ic.Value = fn(ic.Value)
		return ic
	case icDef:
		ic.Xrefs = mapXrefListIdents(ic.Xrefs, fn)
		return ic
	case icSubset:
		ic.Value.Ident = fn(ic.Value.Ident)
		return ic
	case icSynonym:
		ic.Value = mapSynonymIdents(ic.Value, fn)
		return ic
	case icXref:
		ic.Value = mapXrefIdents(ic.Value, fn)
		return ic
	case icPropertyValue:
		ic.Value = mapPropertyValueIdents(ic.Value, fn)
		return ic
	case icInstanceOf:
		ic.Value.Ident = fn(ic.Value.Ident)
		return ic
	case icRelationship:
		ic.Relation.Ident = fn(ic.Relation.Ident)
		ic.Instance.Ident = fn(ic.Instance.Ident)
		return ic
	case icReplacedBy:
		ic.Value.Ident = fn(ic.Value.Ident)
		return ic
	case icConsider:
		ic.Value.Ident = fn(ic.Value.Ident)
		return ic
	default:
		return c
	}
}

// Idspaces collects every idspace header clause into a prefix -> URL
// map, the table both IdCompactor and IdDecompactor are built from.
func (h HeaderFrame) Idspaces() map[string]string {
	out := map[string]string{}
	for _, c := range h.Clauses {
		if idsp, ok := c.(hcIdspace); ok {
			out[idsp.Prefix] = idsp.Url.String()
		}
	}
	return out
}
