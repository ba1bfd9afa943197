package emit

import (
	"fmt"
	"strings"

	"genftype/internal/ftype"
)

// String literal bodies for each language. Translations can put any byte in
// the table, so quotes, backslashes and non-printable bytes are escaped.

// quoteC uses octal escapes: hex escapes in C have no length limit and would
// swallow a following hex digit. A '?' that would complete a trigraph is
// written as \?.
func quoteC(t ftype.Table) string {
	return quote(t, isTrigraph, func(c byte) string { return fmt.Sprintf(`\%03o`, c) })
}

func quoteD(t ftype.Table) string {
	return quote(t, nil, func(c byte) string { return fmt.Sprintf(`\x%02x`, c) })
}

// quotePerl also escapes the interpolation sigils of double-quoted strings.
func quotePerl(t ftype.Table) string {
	sigil := func(t ftype.Table, i int) bool { return t[i] == '$' || t[i] == '@' }
	return quote(t, sigil, func(c byte) string { return fmt.Sprintf(`\x{%02x}`, c) })
}

// isTrigraph reports whether t[i] is the second '?' of a ??X trigraph.
func isTrigraph(t ftype.Table, i int) bool {
	return t[i] == '?' && i > 0 && t[i-1] == '?' &&
		i+1 < len(t) && strings.IndexByte("=/'()!<>-", t[i+1]) >= 0
}

func quote(t ftype.Table, special func(ftype.Table, int) bool, nonPrintable func(byte) string) string {
	var b strings.Builder
	for i, c := range t {
		switch {
		case c == '\\' || c == '"' || (special != nil && special(t, i)):
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c >= 0x7f:
			b.WriteString(nonPrintable(c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
