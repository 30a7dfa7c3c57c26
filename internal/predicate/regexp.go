package predicate

import "strings"

// quoteChar picks '\'' unless the value contains a single quote and no
// double quote, in which case '"' is used instead; a value containing both
// still gets single-quoted, and its single quotes are then backslash-escaped
// by the caller.
func quoteChar(value string) byte {
	hasSingle := strings.ContainsRune(value, '\'')
	hasDouble := strings.ContainsRune(value, '"')

	if !hasSingle {
		return '\''
	}

	if !hasDouble {
		return '"'
	}

	return '\''
}

// QuoteValue renders value the way it appears on the right of "=" in an
// emitted predicate or as the argument to "set": quoted, with '\n', '\t'
// and '\\' backslash-escaped.
func QuoteValue(value *string) string {
	if value == nil {
		return ""
	}

	quote := quoteChar(*value)

	var b strings.Builder

	b.WriteByte(quote)

	for i := 0; i < len(*value); i++ {
		c := (*value)[i]

		switch c {
		case quote:
			b.WriteByte('\\')
			b.WriteByte(quote)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte(quote)

	return b.String()
}

// RegexpValue renders value as a quoted regular expression literal for use
// inside Augeas's regexp() predicate function. ']' and '\\' collapse to a
// literal '.', since ']' would otherwise close the enclosing predicate
// bracket; the other regex metacharacters are double-escaped, matching the
// two layers of parsing a regexp() argument passes through. Once minLen
// leading bytes are captured and at least a few characters remain, the
// value is truncated with a trailing ".*" rather than spelled out in full.
func RegexpValue(value *string, minLen int) string {
	if value == nil {
		return ""
	}

	s := *value
	quote := quoteChar(s)

	var b strings.Builder

	b.WriteByte(quote)

	for i := 0; i < len(s); i++ {
		c := s[i]

		// The quote/newline/tab/backslash-or-bracket cases skip the
		// truncation check below entirely, matching the source's early
		// "continue" out of the byte loop for each of them; only a "[",
		// an escaped metacharacter, or a plain copied byte can end a
		// truncated run.
		switch {
		case c == quote:
			b.WriteByte('\\')
			b.WriteByte(quote)

			continue
		case c == '\n':
			b.WriteString(`\n`)

			continue
		case c == '\t':
			b.WriteString(`\t`)

			continue
		case c == '\\' || c == ']':
			b.WriteByte('.')

			continue
		case c == '[':
			b.WriteByte('\\')
			b.WriteByte(c)
		case strings.IndexByte(`*?.()^$|`, c) >= 0:
			b.WriteString(`\\`)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}

		if i >= minLen && i+1 < len(s) && i+2 < len(s) && i+3 < len(s) {
			b.WriteString(".*")

			break
		}
	}

	b.WriteByte(quote)

	return b.String()
}
