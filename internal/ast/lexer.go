package ast

import "github.com/alecthomas/participle/v2/lexer"

// valueLexer tokenizes the trailing structured fragments that can
// follow a clause's main value: qualifier lists, xref lists, synonym
// bodies, and property_value bodies. All four share one token alphabet,
// so one lexer.MustSimple definition backs every participle.Build in
// this package besides the date grammars (date.go's dateLexer), the
// same "one lexer per shape of text" split the teacher draws between
// its DSL lexer and nothing else needing a second one.
var valueLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "QuotedString", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Punct", Pattern: `[{}\[\],=]`},
	{Name: "Word", Pattern: `[^\s"{}\[\],=]+`},
})
