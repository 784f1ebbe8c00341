package yahtml

import "strings"

// EscapeText escapes a string for safe inclusion in HTML body text. It
// converts the five special characters to their entity equivalents in a
// single pass; it is deliberately not idempotent.
func EscapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttribute escapes a string for safe inclusion in an HTML attribute
// value. Apostrophes are left alone: the renderer always wraps attribute
// values in double quotes.
func EscapeAttribute(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
