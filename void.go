package yahtml

import (
	"maps"
	"slices"
)

// voidElements are the HTML5 void elements. They never have a body or a
// closing tag, even when content is supplied. The set is fixed at process
// start and never mutated.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawContentElements are tags whose text body is emitted verbatim,
// bypassing escaping.
var rawContentElements = map[string]bool{
	"script": true,
	"style":  true,
}

// IsVoidElement reports whether tag is an HTML5 void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// VoidElements returns the void element names in sorted order. The result
// is a fresh copy on every call.
func VoidElements() []string {
	return slices.Sorted(maps.Keys(voidElements))
}

func isRawContent(tag string) bool {
	return rawContentElements[tag]
}
