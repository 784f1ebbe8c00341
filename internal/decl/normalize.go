package decl

import "strings"

// Split is the canonical {declaration, content} form of a compact string
// declaration. HasContent distinguishes the childless form ("br:") from a
// declaration with empty content (`p: ""`).
type Split struct {
	Decl       string
	Content    string
	HasContent bool
}

// Normalize rewrites a compact one-line string form into its canonical
// declaration/content pair. It returns false when s is not a declaration
// at all, in which case the caller renders it as plain text.
//
// Rules, in priority order:
//  1. A trailing ':' marks a childless declaration.
//  2. The earliest `: "` or `: '` separates declaration from quoted
//     content; the earlier match wins, double quotes win a tie.
//  3. The first `: ` whose preceding clause does not contain "//"
//     separates declaration from unquoted content. The clause guard keeps
//     a URL-bearing attribute value from being misread as a separator;
//     URL-bearing declarations take their content via rule 2.
func Normalize(s string) (Split, bool) {
	if strings.HasSuffix(s, ":") {
		return Split{Decl: s}, true
	}

	if sp, ok := splitQuoted(s); ok {
		return sp, true
	}

	if sp, ok := splitUnquoted(s); ok {
		return sp, true
	}

	return Split{}, false
}

func splitQuoted(s string) (Split, bool) {
	di := strings.Index(s, `: "`)
	si := strings.Index(s, `: '`)

	idx, quote := di, byte('"')
	if si >= 0 && (idx < 0 || si < idx) {
		idx, quote = si, '\''
	}
	if idx < 0 {
		return Split{}, false
	}

	return Split{
		Decl:       s[:idx],
		Content:    unquote(s[idx+2:], quote),
		HasContent: true,
	}, true
}

// unquote strips a single matching leading and trailing quote and
// unescapes internal quotes of the same kind. The literal two-character
// empty-quote form yields the empty string.
func unquote(raw string, quote byte) string {
	q := string(quote)
	if raw == q+q {
		return ""
	}
	s := strings.TrimPrefix(raw, q)
	s = strings.TrimSuffix(s, q)
	return strings.ReplaceAll(s, `\`+q, q)
}

func splitUnquoted(s string) (Split, bool) {
	for i := 0; ; {
		j := strings.Index(s[i:], ": ")
		if j < 0 {
			return Split{}, false
		}
		j += i

		clauseStart := strings.LastIndexAny(s[:j], " \t") + 1
		if strings.Contains(s[clauseStart:j], "//") {
			i = j + 1
			continue
		}

		return Split{
			Decl:       s[:j],
			Content:    s[j+2:],
			HasContent: true,
		}, true
	}
}
