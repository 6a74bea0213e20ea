package ast

import (
	"fmt"
	"strings"

	"github.com/ritamzico/goobo/internal/escape"
)

// QuotedString is the value half of clauses like def and expand_to:
// a double-quoted, backslash-escaped run of text. Value holds the
// unescaped text; String re-quotes and re-escapes it.
type QuotedString struct {
	Value string
}

// ParseQuotedString strips the surrounding quotes from raw (which must
// begin and end with an unescaped '"') and unescapes its body.
func ParseQuotedString(raw string) (QuotedString, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return QuotedString{}, fmt.Errorf("ast: quoted string %q missing delimiters", raw)
	}
	body := raw[1 : len(raw)-1]
	unescaped, ok := escape.Unescape(body)
	if !ok {
		return QuotedString{}, fmt.Errorf("ast: malformed escape in quoted string %q", raw)
	}
	return QuotedString{Value: unescaped}, nil
}

func (q QuotedString) String() string {
	var b strings.Builder
	b.WriteByte('"')
	escape.Escape(&b, q.Value, escape.Quoted)
	b.WriteByte('"')
	return b.String()
}

// UnquotedString is free text appearing without surrounding quotes,
// such as a term's name or a comment body; it reserves the identifier
// escape alphabet minus ':' and the space character.
type UnquotedString struct {
	Value string
}

func ParseUnquotedString(raw string) (UnquotedString, error) {
	unescaped, ok := escape.Unescape(raw)
	if !ok {
		return UnquotedString{}, fmt.Errorf("ast: malformed escape in unquoted string %q", raw)
	}
	return UnquotedString{Value: unescaped}, nil
}

func (u UnquotedString) String() string {
	var b strings.Builder
	escape.Escape(&b, u.Value, escape.Unquoted)
	return b.String()
}
