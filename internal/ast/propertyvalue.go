package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

type propertyValueAST struct {
	Relation string `parser:"@Word"`
	Literal  *struct {
		Value    string `parser:"@QuotedString"`
		Datatype string `parser:"@Word"`
	} `parser:"(  @@"`
	Resource string `parser:"| @Word )"`
}

var propertyValueParser = participle.MustBuild[propertyValueAST](
	participle.Lexer(valueLexer),
	participle.Elide("Whitespace"),
)

// PropertyValue is a property_value clause's value, in one of the two
// shapes the OBO guide allows: a resource form pointing at another
// identifier, or a literal form carrying a quoted value and its
// datatype identifier.
type PropertyValue struct {
	Relation  RelationIdent
	IsLiteral bool
	Value     QuotedString
	Datatype  Ident
	Resource  Ident
}

func (p PropertyValue) String() string {
	if p.IsLiteral {
		return fmt.Sprintf("%s %s %s", p.Relation, p.Value, p.Datatype)
	}
	return fmt.Sprintf("%s %s", p.Relation, p.Resource)
}

// ParsePropertyValue parses a property_value clause's value in either
// the resource or literal shape.
func ParsePropertyValue(raw string) (PropertyValue, error) {
	tree, err := propertyValueParser.ParseString("", raw)
	if err != nil {
		return PropertyValue{}, fmt.Errorf("ast: invalid property value %q: %w", raw, err)
	}
	relation, err := ParseRelationIdent(tree.Relation)
	if err != nil {
		return PropertyValue{}, err
	}
	pv := PropertyValue{Relation: relation}
	if tree.Literal != nil {
		value, err := ParseQuotedString(tree.Literal.Value)
		if err != nil {
			return PropertyValue{}, err
		}
		datatype, err := ParseIdent(tree.Literal.Datatype)
		if err != nil {
			return PropertyValue{}, err
		}
		pv.IsLiteral = true
		pv.Value = value
		pv.Datatype = datatype
		return pv, nil
	}
	resource, err := ParseIdent(tree.Resource)
	if err != nil {
		return PropertyValue{}, err
	}
	pv.Resource = resource
	return pv, nil
}
