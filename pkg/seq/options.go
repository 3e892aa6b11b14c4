package seq

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	strict    bool
	normalize bool
	form      norm.Form
	foldCase  bool
}

// WithStrictJoiners requires every joiner to be followed by a word.
// Consecutive joiners and a trailing joiner are then rejected.
func WithStrictJoiners() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithNormalization applies the Unicode normalization form to the input
// and to every token before matching.
func WithNormalization(form norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = form
	}
}

// WithFoldCase matches case-insensitively using Unicode case folding.
func WithFoldCase() Option {
	return func(o *options) {
		o.foldCase = true
	}
}

// transform returns the function applied to input and tokens, or nil when
// no option rewrites text.
func (o options) transform() func(string) string {
	if !o.normalize && !o.foldCase {
		return nil
	}
	return func(s string) string {
		if o.normalize {
			s = o.form.String(s)
		}
		if o.foldCase {
			// A Caser is stateful; one per call keeps Validator safe to share.
			s = cases.Fold().String(s)
		}
		return s
	}
}
