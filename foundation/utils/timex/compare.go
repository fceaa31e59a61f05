// File: compare.go
// Title: Precision Comparison
// Description: Compares instants by formatting both through the pattern of
//              a precision and comparing the strings. Easy mode keeps only
//              the field of the precision, so it compares positions within
//              a cycle rather than chronology.
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

// Comparer compares instants under fixed options
type Comparer struct {
	opts    Options
	pattern string
	left    bool
	right   bool
}

// NewComparer validates opts and returns a Comparer
func NewComparer(opts ...Option) (*Comparer, error) {
	o := NewOptions(opts...)
	pattern, err := o.Precision.Pattern(o.Easy)
	if err != nil {
		return nil, err
	}
	left, right, err := ParseBoundary(o.Boundary)
	if err != nil {
		return nil, err
	}
	return &Comparer{opts: o, pattern: pattern, left: left, right: right}, nil
}

// Options returns the options the comparer was built with
func (c *Comparer) Options() Options {
	return c.opts
}

// Key returns the string t is compared by, read in the comparer's
// location or else in t's own
func (c *Comparer) Key(t time.Time) string {
	return c.key(t, c.frame(t))
}

func (c *Comparer) frame(ref time.Time) *time.Location {
	if c.opts.Location != nil {
		return c.opts.Location
	}
	return ref.Location()
}

func (c *Comparer) key(t time.Time, loc *time.Location) string {
	return MustFormat(t.In(loc), c.pattern, defaultTable)
}

// IsSame reports whether a and b agree at the comparer's precision
func (c *Comparer) IsSame(a, b time.Time) bool {
	loc := c.frame(a)
	return c.key(a, loc) == c.key(b, loc)
}

// IsAfter reports whether a is after b, or equal to it with Self
func (c *Comparer) IsAfter(a, b time.Time) bool {
	return c.after(a, b, c.frame(a), c.opts.Self)
}

// IsBefore reports whether a is before b, or equal to it with Self
func (c *Comparer) IsBefore(a, b time.Time) bool {
	return c.after(b, a, c.frame(a), c.opts.Self)
}

func (c *Comparer) after(a, b time.Time, loc *time.Location, self bool) bool {
	ka, kb := c.key(a, loc), c.key(b, loc)
	return ka > kb || (self && ka == kb)
}

// IsBetween reports whether t lies between start and end under the
// comparer's boundary
func (c *Comparer) IsBetween(t, start, end time.Time) bool {
	loc := c.frame(t)
	return c.after(t, start, loc, c.left) && c.after(end, t, loc, c.right)
}

// Compare returns -1 if a is before b, 0 if they are the same and 1
// otherwise
func (c *Comparer) Compare(a, b time.Time) int {
	switch {
	case c.IsBefore(a, b):
		return -1
	case c.IsSame(a, b):
		return 0
	}
	return 1
}

// Max returns the greatest instant; the first one wins ties
func (c *Comparer) Max(times ...time.Time) (time.Time, error) {
	return c.extreme("timex.Max", times, func(current, best string) bool { return current > best })
}

// Min returns the least instant; the first one wins ties
func (c *Comparer) Min(times ...time.Time) (time.Time, error) {
	return c.extreme("timex.Min", times, func(current, best string) bool { return current < best })
}

func (c *Comparer) extreme(op string, times []time.Time, better func(current, best string) bool) (time.Time, error) {
	if len(times) == 0 {
		return time.Time{}, eiyaerror.New("no instants to compare").
			WithCode(eiyaerror.CodeInvalidOption).
			WithOperation(op)
	}
	loc := c.frame(times[0])
	best, bestKey := times[0], c.key(times[0], loc)
	for _, t := range times[1:] {
		if k := c.key(t, loc); better(k, bestKey) {
			best, bestKey = t, k
		}
	}
	return best, nil
}

// IsSame reports whether a and b agree at the precision in opts
func IsSame(a, b time.Time, opts ...Option) (bool, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return false, err
	}
	return c.IsSame(a, b), nil
}

// IsAfter reports whether a is after b at the precision in opts
func IsAfter(a, b time.Time, opts ...Option) (bool, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return false, err
	}
	return c.IsAfter(a, b), nil
}

// IsBefore reports whether a is before b at the precision in opts
func IsBefore(a, b time.Time, opts ...Option) (bool, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return false, err
	}
	return c.IsBefore(a, b), nil
}

// IsBetween reports whether t lies between start and end. The boundary in
// opts defaults to "[]".
func IsBetween(t, start, end time.Time, opts ...Option) (bool, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return false, err
	}
	return c.IsBetween(t, start, end), nil
}

// Compare returns -1, 0 or 1 at the precision in opts
func Compare(a, b time.Time, opts ...Option) (int, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return 0, err
	}
	return c.Compare(a, b), nil
}

// Max returns the greatest of times at the precision in opts
func Max(times []time.Time, opts ...Option) (time.Time, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return time.Time{}, err
	}
	return c.Max(times...)
}

// Min returns the least of times at the precision in opts
func Min(times []time.Time, opts ...Option) (time.Time, error) {
	c, err := NewComparer(opts...)
	if err != nil {
		return time.Time{}, err
	}
	return c.Min(times...)
}
