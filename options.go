package yahtml

import "fmt"

const defaultMaxDepth = 1000

// options holds the resolved configuration for a conversion.
type options struct {
	maxDepth int
}

// An Option configures a conversion.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum nesting depth for the
// conversion. This prevents stack exhaustion on pathologically nested
// input trees; the default is 1000.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("yahtml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
