package yahtml

import (
	"io"
	"strings"
)

// Convert renders the data tree rooted at root to HTML. The root must be
// a sequence; its members are rendered in order and concatenated. On
// error, no partial output is returned.
func Convert(root any, opts ...Option) (string, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return "", err
	}

	if _, ok := asSequence(root); !ok {
		return "", &InputShapeError{Value: root}
	}

	rs := &resolveState{depth: o.maxDepth}
	nodes, err := rs.resolveBody(root, false)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return b.String(), nil
}

// Converter writes HTML renderings of data trees to an output stream.
type Converter struct {
	w    io.Writer
	opts []Option
}

// NewConverter returns a new Converter that writes to w.
func NewConverter(w io.Writer, opts ...Option) *Converter {
	return &Converter{w: w, opts: opts}
}

// Convert renders root and writes the HTML to the stream. The rendering
// is buffered in full first: on error nothing is written.
func (c *Converter) Convert(root any) error {
	html, err := Convert(root, c.opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.w, html)
	return err
}
