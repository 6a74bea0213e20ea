package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// splitQuotedThenBracket splits "\"text\" [xrefs]" into its quoted body
// and its bracketed xref list, the shape shared by def and the
// typedef expand_assertion_to/expand_expression_to clauses.
func splitQuotedThenBracket(s string) (QuotedString, XrefList, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != '"' {
		return QuotedString{}, XrefList{}, fmt.Errorf("ast: expected quoted text in %q", s)
	}
	end := -1
	backslashes := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			backslashes++
			continue
		}
		if s[i] == '"' && backslashes%2 == 0 {
			end = i
			break
		}
		backslashes = 0
	}
	if end < 0 {
		return QuotedString{}, XrefList{}, fmt.Errorf("ast: unterminated quoted string in %q", s)
	}
	desc, err := ParseQuotedString(s[:end+1])
	if err != nil {
		return QuotedString{}, XrefList{}, err
	}
	rest := strings.TrimSpace(s[end+1:])
	if rest == "" {
		return desc, XrefList{}, nil
	}
	xrefs, err := ParseXrefList(rest)
	return desc, xrefs, err
}

// parseBoolean accepts the literal "true"/"false" tokens OBO uses for
// its handful of boolean clauses.
func parseBoolean(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("ast: invalid boolean %q", s)
	}
	return b, nil
}

func formatBoolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
