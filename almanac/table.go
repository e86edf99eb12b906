package almanac

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Entry maps Source onto Dest, which has the same length.
type Entry[T constraints.Integer] struct {
	Source Interval[T]
	Dest   Interval[T]
}

// NewEntry returns the entry mapping [src, src+n) to [dst, dst+n), in
// the order the values appear on an almanac line.
func NewEntry[T constraints.Integer](dst, src, n T) Entry[T] {
	return Entry[T]{Source: Span(src, n), Dest: Span(dst, n)}
}

func (e Entry[T]) delta() T { return e.Dest.Start - e.Source.Start }

// Table is one named stage of a Pipeline, such as "seed-to-soil".
// Values not covered by any entry map to themselves.
//
// A Table is immutable and safe for concurrent use.
type Table[T constraints.Integer] struct {
	name    string
	entries []Entry[T] // sorted by Source.Start, pairwise disjoint
}

// NewTable returns a table over a copy of entries, which may be in any
// order. Empty entries are dropped. It returns an error wrapping
// ErrOverlap if two sources overlap, or ErrLength if an entry's source
// and destination differ in length.
func NewTable[T constraints.Integer](name string, entries []Entry[T]) (*Table[T], error) {
	t := &Table[T]{name: name}
	for _, e := range entries {
		if e.Source.Len() != e.Dest.Len() || e.Source.End < e.Source.Start {
			return nil, fmt.Errorf("%s: entry %v -> %v: %w", name, e.Source, e.Dest, ErrLength)
		}
		if e.Source.Empty() {
			continue
		}
		t.entries = append(t.entries, e)
	}
	slices.SortFunc(t.entries, func(a, b Entry[T]) int {
		return compareStart(a.Source, b.Source)
	})
	for i := 1; i < len(t.entries); i++ {
		prev, cur := t.entries[i-1].Source, t.entries[i].Source
		if cur.Start < prev.End {
			return nil, fmt.Errorf("%s: sources %v and %v: %w", name, prev, cur, ErrOverlap)
		}
	}
	return t, nil
}

func (t *Table[T]) Name() string { return t.name }

// From and To split a "<from>-to-<to>" name. Both are empty if the
// name has another form.
func (t *Table[T]) From() string {
	from, _ := t.endpoints()
	return from
}

func (t *Table[T]) To() string {
	_, to := t.endpoints()
	return to
}

func (t *Table[T]) endpoints() (from, to string) {
	from, to, ok := strings.Cut(t.name, "-to-")
	if !ok || from == "" || to == "" {
		return "", ""
	}
	return from, to
}

// Entries returns a copy of the table's entries sorted by source start.
func (t *Table[T]) Entries() []Entry[T] {
	return slices.Clone(t.entries)
}

// Map resolves a single value through the table.
func (t *Table[T]) Map(v T) T {
	i, found := slices.BinarySearchFunc(t.entries, v, func(e Entry[T], v T) int {
		switch {
		case e.Source.End <= v:
			return -1
		case e.Source.Start > v:
			return 1
		}
		return 0
	})
	if !found {
		return v
	}
	e := t.entries[i]
	return v + e.delta()
}

// MapRanges resolves every value of ranges through the table and
// returns the resulting intervals, unordered and unmerged.
//
// Each input interval is split against the entries in source order.
// The part inside an entry is shifted and emitted as is. The parts
// below and above it are queued again, resuming at the following entry:
// sources are disjoint, so earlier entries cannot overlap them. A
// pending interval that no remaining entry overlaps passes through
// unchanged.
//
// The total length of the output equals that of the non-empty input,
// and outputs derived from disjoint inputs do not overlap.
func (t *Table[T]) MapRanges(ranges []Interval[T]) []Interval[T] {
	type pending struct {
		iv   Interval[T]
		next int // first entry still to try
	}
	work := make([]pending, 0, len(ranges))
	for _, iv := range ranges {
		if !iv.Empty() {
			work = append(work, pending{iv: iv})
		}
	}
	out := make([]Interval[T], 0, len(work))
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		mapped := false
		for i := p.next; i < len(t.entries); i++ {
			e := t.entries[i]
			if e.Source.Start >= p.iv.End {
				break
			}
			ov, ok := p.iv.Intersect(e.Source)
			if !ok {
				continue
			}
			out = append(out, ov.Shift(e.delta()))
			if lo := (Interval[T]{p.iv.Start, ov.Start}); !lo.Empty() {
				work = append(work, pending{lo, i + 1})
			}
			if hi := (Interval[T]{ov.End, p.iv.End}); !hi.Empty() {
				work = append(work, pending{hi, i + 1})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, p.iv)
		}
	}
	return out
}
