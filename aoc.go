// Package aoc is a small harness for running Advent of Code solvers
// against their worked samples and the real puzzle input.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnknownPuzzle  = errors.New("puzzle not registered")
	ErrNoSample       = errors.New("no sample for puzzle")
	ErrSampleMismatch = errors.New("sample answer mismatch")
)

// Solver solves both parts of one day's puzzle from its raw input.
type Solver func(input []byte) (part1, part2 any, err error)

// Puzzle is a registered Solver.
type Puzzle struct {
	Name  string // func name, such as "day5"
	Day   int
	Solve Solver

	// Sample is the worked example from the solver's doc comment, if
	// any. See ExtractSamples.
	Sample *Sample
}

// Sample is a puzzle input with its known answers, formatted as by
// Answer.
type Sample struct {
	Input string
	Want  string
}

var (
	puzzles      []string
	puzzleByName = map[string]*Puzzle{} // func name -> puzzle
)

var dayRx = regexp.MustCompile(`\d+`)

func funcName(f Solver) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Add registers solvers under their func names. Each name must contain
// the day number, as in "day5".
func Add(solvers ...Solver) {
	for _, f := range solvers {
		name := funcName(f)
		m := dayRx.FindString(name)
		if m == "" {
			panic(fmt.Sprintf("no digits in func name %q from which to extract day number", name))
		}
		if _, dup := puzzleByName[name]; !dup {
			puzzles = append(puzzles, name)
		}
		puzzleByName[name] = &Puzzle{Name: name, Day: Int(m), Solve: f}
	}
}

// Names returns the registered puzzle names in registration order.
func Names() []string {
	return append([]string(nil), puzzles...)
}

// Lookup returns the puzzle called name. The empty name means the most
// recently registered puzzle. If name starts with a digit, the "day"
// prefix is assumed.
func Lookup(name string) (*Puzzle, error) {
	if name == "" {
		if len(puzzles) == 0 {
			return nil, ErrUnknownPuzzle
		}
		name = puzzles[len(puzzles)-1]
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}
	p, ok := puzzleByName[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownPuzzle)
	}
	return p, nil
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples reads the Go source src and attaches samples to the
// registered puzzles declared in it. A sample is a doc comment of the
// form
//
//	/*
//	want=35 46
//
//	seeds: 79 14 55 13
//	...
//	*/
//
// A sample without input text reuses the input of the previous one.
func ExtractSamples(src []byte) error {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			m := wantRx.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			in := Or(m[2], lastInput)
			lastInput = in
			if p, ok := puzzleByName[fd.Name.Name]; ok {
				p.Sample = &Sample{Input: in, Want: strings.TrimSpace(m[1])}
			}
		}
	}
	return nil
}

// Answer formats both parts the way samples state them.
func Answer(part1, part2 any) string {
	return fmt.Sprintf("%v %v", part1, part2)
}

// Run solves input and returns the formatted answer.
func (p *Puzzle) Run(input []byte) (string, error) {
	a, b, err := p.Solve(input)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.Name, err)
	}
	return Answer(a, b), nil
}

// CheckSample runs the puzzle's sample and compares the answer.
func (p *Puzzle) CheckSample() error {
	if p.Sample == nil {
		return fmt.Errorf("%s: %w", p.Name, ErrNoSample)
	}
	got, err := p.Run([]byte(p.Sample.Input))
	if err != nil {
		return err
	}
	if got != p.Sample.Want {
		return fmt.Errorf("%s sample: got=%v; want %v: %w", p.Name, got, p.Sample.Want, ErrSampleMismatch)
	}
	return nil
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

// Ints parses the whitespace-separated integers of s.
func Ints(s string) ([]int, error) {
	f := strings.Fields(s)
	v := make([]int, len(f))
	for i, w := range f {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return v, nil
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ForLinesY calls onLine for each line of input, stopping at the first
// error. The y value is the row number, starting with 0.
func ForLinesY(input []byte, onLine func(y int, line string) error) error {
	s := bufio.NewScanner(bytes.NewReader(input))
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
