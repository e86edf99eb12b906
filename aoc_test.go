package aoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPuzzles(t *testing.T) {
	t.Helper()
	old, oldBy := puzzles, puzzleByName
	puzzles, puzzleByName = nil, map[string]*Puzzle{}
	t.Cleanup(func() { puzzles, puzzleByName = old, oldBy })
}

func day1(input []byte) (any, any, error) {
	n, err := Ints(string(input))
	if err != nil {
		return nil, nil, err
	}
	sum, prod := 0, 1
	for _, v := range n {
		sum += v
		prod *= v
	}
	return sum, prod, nil
}

func day12(input []byte) (any, any, error) {
	return len(input), "x", nil
}

func dayBroken(input []byte) (any, any, error) {
	return nil, nil, errors.New("boom")
}

const samplesSrc = `package main

/*
want=6 6

1 2 3
*/
func day1(input []byte) (any, any, error) { return nil, nil, nil }

// want=6 x
func day12(input []byte) (any, any, error) { return nil, nil, nil }

// Not a sample.
func helper() {}
`

func TestAddAndLookup(t *testing.T) {
	resetPuzzles(t)
	Add(day1, day12)

	assert.Equal(t, []string{"day1", "day12"}, Names())

	p, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "day12", p.Name)
	assert.Equal(t, 12, p.Day)

	p, err = Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "day1", p.Name)
	assert.Equal(t, 1, p.Day)

	_, err = Lookup("day7")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestLookupEmptyRegistry(t *testing.T) {
	resetPuzzles(t)
	_, err := Lookup("")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestAddRequiresDayNumber(t *testing.T) {
	resetPuzzles(t)
	assert.Panics(t, func() { Add(dayBroken) })
}

func TestExtractSamples(t *testing.T) {
	resetPuzzles(t)
	Add(day1, day12)
	require.NoError(t, ExtractSamples([]byte(samplesSrc)))

	p1, _ := Lookup("day1")
	require.NotNil(t, p1.Sample)
	assert.Equal(t, "6 6", p1.Sample.Want)
	assert.Equal(t, "1 2 3\n", p1.Sample.Input)
	assert.NoError(t, p1.CheckSample())

	// day12 has no input of its own and reuses day1's.
	p12, _ := Lookup("day12")
	require.NotNil(t, p12.Sample)
	assert.Equal(t, "1 2 3\n", p12.Sample.Input)
	assert.NoError(t, p12.CheckSample())
}

func TestExtractSamplesBadSource(t *testing.T) {
	assert.Error(t, ExtractSamples([]byte("package")))
}

func TestCheckSample(t *testing.T) {
	resetPuzzles(t)
	Add(day1)
	p, _ := Lookup("day1")

	assert.ErrorIs(t, p.CheckSample(), ErrNoSample)

	p.Sample = &Sample{Input: "2 3", Want: "5 7"}
	err := p.CheckSample()
	assert.ErrorIs(t, err, ErrSampleMismatch)
	assert.Contains(t, err.Error(), "got=5 6")

	p.Sample = &Sample{Input: "2 x", Want: "5 6"}
	assert.Error(t, p.CheckSample())
}

func TestRun(t *testing.T) {
	resetPuzzles(t)
	Add(day1)
	p, _ := Lookup("day1")
	got, err := p.Run([]byte("4 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "9 20", got)
}

func TestInts(t *testing.T) {
	got, err := Ints(" 1  -2\t30 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 30}, got)

	_, err = Ints("1 2x")
	assert.Error(t, err)
}

func TestForLinesY(t *testing.T) {
	var lines []string
	var ys []int
	err := ForLinesY([]byte("a\nb\n\nc"), func(y int, line string) error {
		ys = append(ys, y)
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
	assert.Equal(t, []int{0, 1, 2, 3}, ys)

	stop := errors.New("stop")
	n := 0
	err = ForLinesY([]byte("a\nb\nc\n"), func(int, string) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
}

func TestInt(t *testing.T) {
	assert.Equal(t, 42, Int("42"))
	assert.Panics(t, func() { Int("x") })
}
