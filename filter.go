package autoparse

// StringTransformer rewrites a raw string before it is bound into a parsed
// object.  The stream parser applies the configured transformers to every
// attribute value and every run of text content.  Transformers must be pure:
// no state, no knowledge of which tag or field produced the input.
type StringTransformer func(string) string

// Filters is an ordered chain of StringTransformers.  Order is registration
// order and is never changed; duplicates are allowed.
type Filters []StringTransformer

// Apply folds s through each filter in order, each filter's output feeding
// the next filter's input.
func (f Filters) Apply(s string) string {
	for _, transform := range f {
		s = transform(s)
	}
	return s
}
