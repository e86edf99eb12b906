package almanac

import (
	"strings"

	"github.com/rangemap/aoc"
)

// Almanac is a parsed puzzle input: the seed line and the stage chain.
type Almanac struct {
	Seeds    []int
	Pipeline *Pipeline[int]
}

// SeedRanges reads Seeds two at a time as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval[int], error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &ParseError{Err: ErrOddSeeds}
	}
	ranges := make([]Interval[int], 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, n := a.Seeds[i], a.Seeds[i+1]
		if n < 0 {
			return nil, &ParseError{Err: ErrBadSeedRange}
		}
		ranges = append(ranges, Span(start, n))
	}
	return ranges, nil
}

// BuildPipeline parses input and returns only its stage chain.
func BuildPipeline(input []byte) (*Pipeline[int], error) {
	a, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return a.Pipeline, nil
}

// Parse parses an almanac of the form
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Stages keep the order in which they appear. Any error is a
// *ParseError.
func Parse(input []byte) (*Almanac, error) {
	var (
		a      Almanac
		seeded bool
		tables []*Table[int]

		// Stage being read.
		inStage bool
		name    string
		header  int
		hdrText string
		entries []Entry[int]
	)
	flush := func() error {
		if !inStage {
			return nil
		}
		t, err := NewTable(name, entries)
		if err != nil {
			return &ParseError{Line: header, Text: hdrText, Err: err}
		}
		tables = append(tables, t)
		entries = nil
		return nil
	}

	err := aoc.ForLinesY(input, func(y int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		bad := func(err error) error {
			return &ParseError{Line: y + 1, Text: line, Err: err}
		}

		if !seeded {
			rest, ok := strings.CutPrefix(line, "seeds:")
			if !ok {
				return bad(ErrMissingSeeds)
			}
			seeds, err := aoc.Ints(rest)
			if err != nil {
				return bad(ErrMissingSeeds)
			}
			a.Seeds, seeded = seeds, true
			return nil
		}

		if v, ok := strings.CutSuffix(line, "map:"); ok {
			if err := flush(); err != nil {
				return err
			}
			name = strings.TrimSpace(v)
			if name == "" {
				return bad(ErrBadHeader)
			}
			inStage, header, hdrText = true, y+1, line
			return nil
		}

		if !inStage {
			return bad(ErrBadHeader)
		}
		f, err := aoc.Ints(line)
		if err != nil || len(f) != 3 || f[2] < 0 {
			return bad(ErrBadEntry)
		}
		entries = append(entries, NewEntry(f[0], f[1], f[2]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !seeded {
		return nil, &ParseError{Err: ErrMissingSeeds}
	}
	if !inStage {
		return nil, &ParseError{Err: ErrBadHeader}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	a.Pipeline = NewPipeline(tables...)
	return &a, nil
}
