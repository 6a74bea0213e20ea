package ast

// ApplyTreatXrefs expands every treat-xrefs-as-* header macro declared
// on doc's header into the synthetic clauses it stands for, scanning
// every xref clause of every term frame whose xref identifier carries
// one of the declared prefixes. This mirrors the five dispatch
// variants (plus the bare relationship mapping) the OBO guide assigns
// to this header macro family.
func ApplyTreatXrefs(doc *OboDoc) {
	var equivalent, isA, hasSubclass []string
	relationship := map[string]RelationIdent{}
	type genusRule struct {
		relation RelationIdent
		filler   ClassIdent
	}
	genusDifferentia := map[string]genusRule{}
	reverseGenusDifferentia := map[string]genusRule{}

	for _, c := range doc.Header.Clauses {
		switch hc := c.(type) {
		case hcTreatXrefsAsEquivalent:
			equivalent = append(equivalent, hc.Prefix)
		case hcTreatXrefsAsIsA:
			isA = append(isA, hc.Prefix)
		case hcTreatXrefsAsHasSubclass:
			hasSubclass = append(hasSubclass, hc.Prefix)
		case hcTreatXrefsAsRelationship:
			relationship[hc.Prefix] = hc.Relation
		case hcTreatXrefsAsGenusDifferentia:
			genusDifferentia[hc.Prefix] = genusRule{relation: hc.Relation, filler: hc.Filler}
		case hcTreatXrefsAsReverseGenusDifferentia:
			reverseGenusDifferentia[hc.Prefix] = genusRule{relation: hc.Relation, filler: hc.Filler}
		}
	}
	if len(equivalent) == 0 && len(isA) == 0 && len(hasSubclass) == 0 &&
		len(relationship) == 0 && len(genusDifferentia) == 0 && len(reverseGenusDifferentia) == 0 {
		return
	}

	hasPrefix := func(prefixes []string, p string) bool {
		for _, pre := range prefixes {
			if pre == p {
				return true
			}
		}
		return false
	}

	for idx := range doc.Entities {
		term, ok := doc.Entities[idx].(TermFrame)
		if !ok {
			continue
		}
		for _, c := range term.Clauses {
			xc, ok := c.(tcXref)
			if !ok || xc.Value.Id.Kind != IdentPrefixed {
				continue
			}
			prefix := xc.Value.Id.Prefix
			target := ClassIdent{xc.Value.Id}

			if hasPrefix(equivalent, prefix) {
				term.Clauses = append(term.Clauses, tcEquivalentTo{target})
			}
			if hasPrefix(isA, prefix) {
				term.Clauses = append(term.Clauses, tcIsA{target})
			}
			if rel, ok := relationship[prefix]; ok {
				term.Clauses = append(term.Clauses, tcRelationship{Relation: rel, Class: target})
			}
			if rule, ok := genusDifferentia[prefix]; ok {
				term.Clauses = append(term.Clauses,
					tcIntersectionOf{Class: target},
					tcIntersectionOf{HasRelation: true, Relation: rule.relation, Class: rule.filler},
				)
			}
			if hasPrefix(hasSubclass, prefix) {
				if other, found := doc.ByID(xc.Value.Id); found {
					if otherTerm, ok := other.(TermFrame); ok {
						selfId, _ := term.Id()
						otherTerm.Clauses = append(otherTerm.Clauses, tcIsA{selfId})
						replaceEntity(doc, other, otherTerm)
					}
				}
			}
			if rule, ok := reverseGenusDifferentia[prefix]; ok {
				if other, found := doc.ByID(xc.Value.Id); found {
					if otherTerm, ok := other.(TermFrame); ok {
						selfId, _ := term.Id()
						otherTerm.Clauses = append(otherTerm.Clauses,
							tcIntersectionOf{Class: selfId},
							tcIntersectionOf{HasRelation: true, Relation: rule.relation, Class: rule.filler},
						)
						replaceEntity(doc, other, otherTerm)
					}
				}
			}
		}
		doc.Entities[idx] = term
	}
}

// replaceEntity overwrites the first entity in doc whose identifier
// matches old's, used to write back a term frame mutated as the target
// of a has-subclass or reverse-genus-differentia macro.
func replaceEntity(doc *OboDoc, old, updated EntityFrame) {
	target := old.EntityId().String()
	for i, e := range doc.Entities {
		if e.EntityId().String() == target {
			doc.Entities[i] = updated
			return
		}
	}
}
