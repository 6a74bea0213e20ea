// Package lex provides the grammar-rule vocabulary, structured syntax
// errors with line/column/byte-offset locations, and the frame-boundary
// scanner shared by the sequential and threaded streaming parsers.
//
// The leaf grammar productions themselves (dates, qualifier lists, xref
// lists, synonym bodies, property values) are expressed as participle
// grammars colocated with the AST types that own them in package ast,
// where identifiers are scanned by hand; this package supplies the rule names those productions
// report on failure, and the byte-oriented frame splitter that neither
// participle nor the AST layer is responsible for.
package lex

// Rule names one OBO grammar production, for error reporting.
type Rule string

const (
	RuleOboDoc         Rule = "OboDoc"
	RuleHeaderFrame    Rule = "HeaderFrame"
	RuleHeaderClause   Rule = "HeaderClause"
	RuleEntityFrame    Rule = "EntityFrame"
	RuleTermFrame      Rule = "TermFrame"
	RuleTypedefFrame   Rule = "TypedefFrame"
	RuleInstanceFrame  Rule = "InstanceFrame"
	RuleTermClause     Rule = "TermClause"
	RuleTypedefClause  Rule = "TypedefClause"
	RuleInstanceClause Rule = "InstanceClause"
	RuleId             Rule = "Id"
	RulePrefixedId     Rule = "PrefixedId"
	RuleUnprefixedId   Rule = "UnprefixedId"
	RuleUrlId          Rule = "UrlId"
	RuleQuotedString   Rule = "QuotedString"
	RuleUnquotedString Rule = "UnquotedString"
	RuleNaiveDateTime  Rule = "NaiveDateTime"
	RuleIso8601Date    Rule = "Iso8601Date"
	RuleIso8601DateTime Rule = "Iso8601DateTime"
	RuleIso8601Timezone Rule = "Iso8601Timezone"
	RuleXref           Rule = "Xref"
	RuleXrefList       Rule = "XrefList"
	RuleQualifier      Rule = "Qualifier"
	RuleQualifierList  Rule = "QualifierList"
	RuleSynonym        Rule = "Synonym"
	RulePropertyValue  Rule = "PropertyValue"
	RuleBoolean        Rule = "Boolean"
	RuleEol            Rule = "Eol"
)
