// Package decl parses the compact element-declaration syntax embedded in
// object keys and strings: tag[#id][.class]* [attr[=value]]* with an
// optional trailing colon.
package decl

import "strings"

// Element is the parsed form of an element declaration.
type Element struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   []Attr
}

// Attr is a single attribute from the declaration tail. A boolean
// attribute carries no value and renders as a bare name.
type Attr struct {
	Name  string
	Value string
	Bool  bool
}

// Parse parses an element declaration. It is total: it never fails, and a
// declaration without a recognizable tag yields an Element with an empty
// Tag, which the renderer treats as malformed.
func Parse(key string) Element {
	s := strings.TrimSuffix(key, ":")

	head, tail := splitHead(s)

	var el Element
	if headIsMalformed(head) {
		return el
	}

	sc := &scanner{input: head}
	el.Tag = sc.readRun(isTagChar)
	for !sc.eof() {
		switch sc.ch() {
		case '#':
			sc.next()
			if name := sc.readRun(isNameChar); name != "" {
				// Last shorthand wins; an explicit id= attribute
				// still overrides at render time.
				el.ID = name
			}
		case '.':
			sc.next()
			if name := sc.readRun(isNameChar); name != "" {
				el.Classes = append(el.Classes, name)
			}
		default:
			sc.next()
		}
	}

	el.Attrs = parseAttrs(tail)
	return el
}

// IsDoctype reports whether the declaration, after any wrapping quote, is a
// doctype marker. Doctype declarations bypass element parsing entirely.
func IsDoctype(key string) bool {
	s := strings.TrimLeft(key, `"'`)
	return strings.HasPrefix(s, "!DOCTYPE")
}

// splitHead splits the declaration at the first whitespace run into the
// head (tag plus shorthand id/classes) and the attribute tail.
func splitHead(s string) (head, tail string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	return s[:i], s[j:]
}

// headIsMalformed reports whether the head contains '=' before any '#' or
// '.', which means the whole declaration lacks a tag (the "head" is really
// an attribute).
func headIsMalformed(head string) bool {
	eq := strings.IndexByte(head, '=')
	if eq < 0 {
		return false
	}
	hd := strings.IndexAny(head, "#.")
	return hd < 0 || eq < hd
}

// parseAttrs tokenizes the attribute tail left to right. A missing
// attribute name ends tokenization early: a malformed tail is not an
// error, parsing simply stops.
func parseAttrs(tail string) []Attr {
	sc := &scanner{input: tail}
	var attrs []Attr
	for {
		sc.skipSpace()
		if sc.eof() {
			return attrs
		}
		name := sc.readRun(isAttrNameChar)
		if name == "" {
			return attrs
		}
		if sc.eof() || sc.ch() != '=' {
			attrs = append(attrs, Attr{Name: name, Bool: true})
			continue
		}
		sc.next() // consume '='
		attrs = append(attrs, Attr{Name: name, Value: sc.readValue()})
	}
}

// scanner is a byte-index scanner over a single declaration string.
type scanner struct {
	input string
	pos   int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.input) }

func (sc *scanner) ch() byte { return sc.input[sc.pos] }

func (sc *scanner) next() { sc.pos++ }

func (sc *scanner) skipSpace() {
	for !sc.eof() && (sc.ch() == ' ' || sc.ch() == '\t') {
		sc.next()
	}
}

// readRun consumes and returns the longest run of characters in the given
// class starting at the current position.
func (sc *scanner) readRun(in func(byte) bool) string {
	start := sc.pos
	for !sc.eof() && in(sc.ch()) {
		sc.next()
	}
	return sc.input[start:sc.pos]
}

// readValue reads an attribute value after '='. Quoted values consume up
// to the matching quote; an unterminated quote consumes to the end of the
// string without error. Unquoted values run until whitespace, dropping a
// trailing ':' only when it is the final character of the input.
func (sc *scanner) readValue() string {
	if sc.eof() {
		return ""
	}
	if q := sc.ch(); q == '"' || q == '\'' {
		sc.next()
		start := sc.pos
		for !sc.eof() && sc.ch() != q {
			sc.next()
		}
		v := sc.input[start:sc.pos]
		if !sc.eof() {
			sc.next() // consume closing quote
		}
		return v
	}
	start := sc.pos
	for !sc.eof() && sc.ch() != ' ' && sc.ch() != '\t' {
		if sc.ch() == ':' && sc.pos == len(sc.input)-1 {
			v := sc.input[start:sc.pos]
			sc.next()
			return v
		}
		sc.next()
	}
	return sc.input[start:sc.pos]
}

func isTagChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') || ch == '-'
}

// isNameChar matches shorthand id and class names, which run until the
// next '#' or '.' segment or whitespace.
func isNameChar(ch byte) bool {
	return ch != '#' && ch != '.' && ch != ' ' && ch != '\t'
}

func isAttrNameChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '-'
}
