/*
Package yahtml converts a YAML-shaped tree of plain data (slices, maps,
strings, numbers, booleans, nil) into an HTML string, using a compact
element-declaration syntax embedded in map keys and strings.

A declaration has the form

	tag[#id][.class]* [attr[=value]]*[:]

and appears either as the single key of a map, whose value is the
element's content, or as a compact one-line string:

	html, err := yahtml.Convert([]any{
		map[string]any{"div#main.container": []any{
			`h1: "Title"`,
			`p: "Content"`,
		}},
	})
	// <div id="main" class="container"><h1>Title</h1><p>Content</p></div>

The root value must be a sequence; its members are rendered in order and
concatenated. Text is HTML-escaped, except inside the raw-content tags
script and style. Void elements such as br and img never receive a body
or a closing tag.

An element's content may also be an attribute object: a map holding an
optional "children" entry plus attribute entries that are merged into the
tag's attributes without overwriting names the declaration already set.

Conversion is a pure function of its input; malformed input is reported
through the typed errors InputShapeError, MalformedElementError and
UnsupportedContentError before any output is produced. The package does
not parse YAML text itself: decode the document first (for example with
gopkg.in/yaml.v3) and pass the resulting tree.
*/
package yahtml
