package yahtml

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/yuusoft-org/yahtml/internal/decl"
	"github.com/yuusoft-org/yahtml/internal/tree"
)

const doctypeLiteral = "<!DOCTYPE html>"

// childrenKey is the attribute-object entry holding an element's children.
const childrenKey = "children"

// resolveState carries the remaining nesting budget while the untyped
// input tree is resolved into typed nodes. All malformed-input errors are
// raised here, before a single byte of output is produced.
type resolveState struct {
	depth int
}

// resolveBody resolves a value in body position into zero or more nodes.
// Sequences are flattened depth-first, preserving leaf order; nil members
// vanish. raw marks the body of a raw-content tag, whose text leaves skip
// both normalization and escaping.
func (rs *resolveState) resolveBody(v any, raw bool) ([]tree.Node, error) {
	rs.depth--
	if rs.depth <= 0 {
		return nil, fmt.Errorf("yahtml: exceeded maximum nesting depth")
	}
	defer func() { rs.depth++ }()

	if seq, ok := asSequence(v); ok {
		var nodes []tree.Node
		for _, item := range seq {
			ns, err := rs.resolveBody(item, raw)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ns...)
		}
		return nodes, nil
	}

	n, err := rs.resolveNode(v, raw)
	if err != nil || n == nil {
		return nil, err
	}
	return []tree.Node{n}, nil
}

// resolveNode resolves a single non-sequence value in node position.
// A nil node result means the value renders to nothing.
func (rs *resolveState) resolveNode(v any, raw bool) (tree.Node, error) {
	if v == nil {
		return nil, nil
	}

	if s, ok := v.(string); ok {
		if raw {
			return &tree.Text{Value: s, Raw: true}, nil
		}
		sp, ok := decl.Normalize(s)
		if !ok {
			return &tree.Text{Value: s}, nil
		}
		if sp.HasContent {
			return rs.resolveElement(sp.Decl, sp.Content, true)
		}
		return rs.resolveElement(sp.Decl, nil, false)
	}

	if s, ok := formatScalar(v); ok {
		return &tree.Text{Value: s, Raw: raw}, nil
	}

	if m, ok, err := asObject(v); ok || err != nil {
		if err != nil {
			return nil, err
		}
		key, content, err := singleEntry(m)
		if err != nil {
			return nil, err
		}
		return rs.resolveElement(key, content, content != nil)
	}

	return nil, &UnsupportedContentError{Value: v}
}

// resolveElement resolves an element declaration and its content.
func (rs *resolveState) resolveElement(key string, content any, hasContent bool) (tree.Node, error) {
	if decl.IsDoctype(key) {
		// The doctype form ignores any supplied content.
		return &tree.Text{Value: doctypeLiteral, Raw: true}, nil
	}

	el := decl.Parse(key)
	if el.Tag == "" {
		return nil, &MalformedElementError{Key: key, Reason: "missing tag"}
	}

	node := &tree.Element{
		Tag:  el.Tag,
		Void: IsVoidElement(el.Tag),
	}

	id := el.ID
	classes := el.Classes
	var rest []decl.Attr
	for _, a := range el.Attrs {
		switch {
		case a.Name == "id" && !a.Bool:
			// Explicit id= always overrides the shorthand.
			id = a.Value
		case a.Name == "class" && !a.Bool:
			classes = append(classes, strings.Fields(a.Value)...)
		default:
			rest = append(rest, a)
		}
	}

	if id != "" {
		node.Attrs = append(node.Attrs, decl.Attr{Name: "id", Value: id})
	}
	if len(classes) > 0 {
		node.Attrs = append(node.Attrs, decl.Attr{Name: "class", Value: strings.Join(classes, " ")})
	}
	node.Attrs = append(node.Attrs, rest...)

	var body any
	switch {
	case !hasContent || content == nil:
		// No body.
	case isScalar(content):
		body = content
	default:
		if obj, ok, err := asObject(content); ok || err != nil {
			if err != nil {
				return nil, err
			}
			body = obj[childrenKey]
			if err := rs.mergeAttrs(node, obj); err != nil {
				return nil, err
			}
		} else {
			body = content
		}
	}

	// Void elements never render a body, even when content was supplied.
	if node.Void || body == nil {
		return node, nil
	}

	raw := isRawContent(el.Tag)
	if s, ok := formatScalar(body); ok {
		node.Children = []tree.Node{&tree.Text{Value: s, Raw: raw}}
		return node, nil
	}

	children, err := rs.resolveBody(body, raw)
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

// mergeAttrs merges the non-children entries of an attribute object into
// the element. Names already set by the declaration are not overwritten.
// Go map iteration order is unspecified, so merged entries are emitted in
// sorted key order to keep output deterministic.
func (rs *resolveState) mergeAttrs(node *tree.Element, obj map[string]any) error {
	taken := make(map[string]bool, len(node.Attrs))
	for _, a := range node.Attrs {
		taken[a.Name] = true
	}

	names := make([]string, 0, len(obj))
	for name := range obj {
		if name != childrenKey && !taken[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := obj[name].(type) {
		case nil:
			// An explicit null carries no value either way; skip it.
		case bool:
			if v {
				node.Attrs = append(node.Attrs, decl.Attr{Name: name, Bool: true})
			}
		default:
			s, ok := formatScalar(v)
			if !ok {
				return &UnsupportedContentError{Value: v}
			}
			node.Attrs = append(node.Attrs, decl.Attr{Name: name, Value: s})
		}
	}
	return nil
}

// writeNode serializes a resolved node. Resolution has already rejected
// malformed input, so serialization cannot fail.
func writeNode(b *strings.Builder, n tree.Node) {
	switch n := n.(type) {
	case *tree.Text:
		if n.Raw {
			b.WriteString(n.Value)
		} else {
			b.WriteString(EscapeText(n.Value))
		}
	case *tree.Element:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, a := range n.Attrs {
			writeAttr(b, a)
		}
		b.WriteByte('>')
		if n.Void {
			return
		}
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func writeAttr(b *strings.Builder, a decl.Attr) {
	b.WriteByte(' ')
	b.WriteString(a.Name)
	if a.Bool {
		return
	}
	b.WriteString(`="`)
	b.WriteString(EscapeAttribute(a.Value))
	b.WriteByte('"')
}

// asSequence reports whether v is a sequence and returns its members.
// Byte slices are not sequences: they are opaque values rejected later.
func asSequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asObject reports whether v is a map and returns it with string keys.
// A map with a non-string key cannot carry an element declaration.
func asObject(v any) (map[string]any, bool, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, true, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, true, &MalformedElementError{Reason: fmt.Sprintf("object key %v is not a string", k)}
			}
			out[s] = val
		}
		return out, true, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false, nil
	}
	if rv.Type().Key().Kind() != reflect.String {
		return nil, true, &MalformedElementError{Reason: fmt.Sprintf("object key type %s is not a string", rv.Type().Key())}
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true, nil
}

// singleEntry extracts the sole key/value pair of an element object.
// Objects with zero keys or more than one key are malformed: Go map
// iteration order is unspecified, so a "first key wins" reading could not
// even be deterministic.
func singleEntry(m map[string]any) (string, any, error) {
	if len(m) == 0 {
		return "", nil, &MalformedElementError{Reason: "object has no keys"}
	}
	if len(m) > 1 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", nil, &MalformedElementError{
			Key:    strings.Join(keys, ", "),
			Reason: fmt.Sprintf("object has %d keys, want exactly one", len(m)),
		}
	}
	for k, v := range m {
		return k, v, nil
	}
	return "", nil, nil // unreachable
}

// formatScalar returns the canonical text form of a scalar value.
func formatScalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}

func isScalar(v any) bool {
	_, ok := formatScalar(v)
	return ok
}
