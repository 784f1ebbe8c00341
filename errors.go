package yahtml

import "fmt"

// An InputShapeError reports that the root value passed to Convert was not
// a sequence. It is returned before any processing begins.
type InputShapeError struct {
	Value any
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("yahtml: root must be a sequence, got %T", e.Value)
}

// A MalformedElementError reports an element node whose declaration cannot
// produce a tag, or an object node with the wrong number of keys. Key
// carries the offending declaration string.
type MalformedElementError struct {
	Key    string
	Reason string
}

func (e *MalformedElementError) Error() string {
	if e.Key == "" {
		return "yahtml: malformed element: " + e.Reason
	}
	return fmt.Sprintf("yahtml: malformed element declaration %q: %s", e.Key, e.Reason)
}

// An UnsupportedContentError reports a rich, non-stringifiable value (such
// as a time.Time decoded from a YAML timestamp) used directly as content.
type UnsupportedContentError struct {
	Value any
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("yahtml: unsupported content value of type %T: convert it to a string before rendering", e.Value)
}
