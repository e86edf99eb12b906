package almanac

import "golang.org/x/exp/constraints"

// Pipeline is an ordered chain of tables. The output of each stage is
// the input of the next. A Pipeline with no stages is the identity.
//
// A Pipeline is immutable and safe for concurrent use.
type Pipeline[T constraints.Integer] struct {
	stages []*Table[T]
}

func NewPipeline[T constraints.Integer](stages ...*Table[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: append([]*Table[T](nil), stages...)}
}

// Stages returns the stage names in order.
func (p *Pipeline[T]) Stages() []string {
	names := make([]string, len(p.stages))
	for i, t := range p.stages {
		names[i] = t.Name()
	}
	return names
}

// Map resolves v through every stage.
func (p *Pipeline[T]) Map(v T) T {
	for _, t := range p.stages {
		v = t.Map(v)
	}
	return v
}

// MapRanges resolves a working set of intervals through every stage.
// The working set is coalesced after each stage, so the result is
// sorted and free of overlapping or touching intervals.
func (p *Pipeline[T]) MapRanges(ranges []Interval[T]) []Interval[T] {
	work := Coalesce(ranges)
	for _, t := range p.stages {
		work = Coalesce(t.MapRanges(work))
	}
	return work
}

// MinimumOverSeeds returns the smallest mapped value of seeds. The
// boolean is false if seeds is empty.
func (p *Pipeline[T]) MinimumOverSeeds(seeds []T) (T, bool) {
	var lo T
	for i, s := range seeds {
		v := p.Map(s)
		if i == 0 || v < lo {
			lo = v
		}
	}
	return lo, len(seeds) > 0
}

// MinimumOverRanges returns the smallest mapped value of any value in
// ranges, without visiting values one at a time. The boolean is false
// if ranges holds no values.
func (p *Pipeline[T]) MinimumOverRanges(ranges []Interval[T]) (T, bool) {
	out := p.MapRanges(ranges)
	if len(out) == 0 {
		var zero T
		return zero, false
	}
	// Coalesce sorts by start.
	return out[0].Start, true
}
