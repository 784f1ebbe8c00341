// Package tree holds the resolved form of an input node. The untyped
// input tree is resolved into these variants exactly once, at the
// conversion boundary; rendering then walks typed nodes and never
// re-inspects raw input values.
package tree

import "github.com/yuusoft-org/yahtml/internal/decl"

// Node is a resolved input node: either a Text leaf or an Element.
// Sequences are flattened into child slices during resolution and empty
// nodes are dropped, so neither needs a variant here.
type Node interface {
	node()
}

// Text is a text leaf. Raw text bypasses escaping: the bodies of
// raw-content tags and the doctype literal.
type Text struct {
	Value string
	Raw   bool
}

func (*Text) node() {}

// Element is a resolved element. Attrs is the final ordered attribute
// list: id first, class second, remaining declaration attributes in parse
// order, then merged attribute-object entries.
type Element struct {
	Tag      string
	Attrs    []decl.Attr
	Void     bool
	Children []Node
}

func (*Element) node() {}
