// File: options.go
// Title: Operation Options
// Description: Options shared by calendar arithmetic and comparisons, set
//              through functional options on top of DefaultOptions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// Options controls arithmetic and comparison
type Options struct {
	// Precision is the granularity of an addition or comparison
	Precision Precision
	// Easy compares only the field of Precision, ignoring coarser fields
	Easy bool
	// Self makes IsAfter and IsBefore accept equal values
	Self bool
	// Overstep lets a day beyond the target month's length roll over into
	// the following month when adding months or years
	Overstep bool
	// End keeps the last day of a month on the last day of the target month
	End bool
	// Boundary is "[]", "[)", "(]" or "()"; brackets include the edge
	Boundary string
	// Location is the frame comparisons read calendar fields in. When nil
	// the location of the first instant of each comparison is used.
	Location *time.Location
}

// DefaultOptions are applied before any Option
var DefaultOptions = Options{
	Precision: Millisecond,
	End:       true,
	Boundary:  "[]",
}

// Option modifies Options
type Option func(*Options)

// WithPrecision sets the precision
func WithPrecision(p Precision) Option {
	return func(o *Options) { o.Precision = p }
}

// WithEasy switches to single-field comparison
func WithEasy(easy bool) Option {
	return func(o *Options) { o.Easy = easy }
}

// Easy is shorthand for WithEasy(true)
func Easy() Option {
	return WithEasy(true)
}

// WithSelf makes strict comparisons accept equal values
func WithSelf(self bool) Option {
	return func(o *Options) { o.Self = self }
}

// WithOverstep sets the month overflow policy
func WithOverstep(overstep bool) Option {
	return func(o *Options) { o.Overstep = overstep }
}

// WithEnd sets whether the last day of a month sticks to month end
func WithEnd(end bool) Option {
	return func(o *Options) { o.End = end }
}

// WithBoundary sets the edges of IsBetween
func WithBoundary(boundary string) Option {
	return func(o *Options) { o.Boundary = boundary }
}

// InLocation sets the frame comparisons read calendar fields in
func InLocation(loc *time.Location) Option {
	return func(o *Options) { o.Location = loc }
}

// WithOptions replaces every field with o
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// NewOptions applies opts to DefaultOptions
func NewOptions(opts ...Option) Options {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ParseBoundary returns whether the left and right edges are inclusive
func ParseBoundary(boundary string) (left, right bool, err error) {
	if len(boundary) != 2 ||
		(boundary[0] != '[' && boundary[0] != '(') ||
		(boundary[1] != ']' && boundary[1] != ')') {
		return false, false, eiyaerror.Newf("invalid boundary %q, want one of [] [) (] ()", boundary).
			WithCode(eiyaerror.CodeInvalidOption).
			WithOperation("timex.ParseBoundary").
			WithDetail("boundary", boundary)
	}
	return boundary[0] == '[', boundary[1] == ']', nil
}
