// Package almanac resolves values and value ranges through a chain of
// piecewise interval mappings, as described by an Advent of Code 2023
// day 5 almanac.
package almanac

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Interval is the half-open range [Start, End).
type Interval[T constraints.Integer] struct {
	Start, End T
}

// Span returns the interval of n values starting at start.
func Span[T constraints.Integer](start, n T) Interval[T] {
	return Interval[T]{start, start + n}
}

func (iv Interval[T]) Len() T      { return iv.End - iv.Start }
func (iv Interval[T]) Empty() bool { return iv.End <= iv.Start }

func (iv Interval[T]) Contains(v T) bool {
	return iv.Start <= v && v < iv.End
}

// Intersect returns the overlap of iv and o. The boolean is false if
// the overlap is empty.
func (iv Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	x := Interval[T]{max(iv.Start, o.Start), min(iv.End, o.End)}
	return x, !x.Empty()
}

// Shift moves iv by delta. Delta is applied with wrapping arithmetic so
// unsigned types can shift downward.
func (iv Interval[T]) Shift(delta T) Interval[T] {
	return Interval[T]{iv.Start + delta, iv.End + delta}
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

func compareStart[T constraints.Integer](a, b Interval[T]) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	}
	return 0
}

// Coalesce returns the non-empty intervals of ivs sorted by start, with
// overlapping or touching intervals merged. ivs is not modified.
func Coalesce[T constraints.Integer](ivs []Interval[T]) []Interval[T] {
	out := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			out = append(out, iv)
		}
	}
	slices.SortFunc(out, compareStart[T])
	n := 0
	for _, iv := range out {
		if n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out[n] = iv
		n++
	}
	return out[:n]
}

// TotalLen returns the sum of the lengths of ivs.
func TotalLen[T constraints.Integer](ivs []Interval[T]) T {
	var n T
	for _, iv := range ivs {
		if !iv.Empty() {
			n += iv.Len()
		}
	}
	return n
}
