package almanac

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSeeds = errors.New("missing seeds line")
	ErrBadHeader    = errors.New("malformed map header")
	ErrBadEntry     = errors.New("malformed map entry")
	ErrOddSeeds     = errors.New("odd number of seed values")
	ErrBadSeedRange = errors.New("negative seed range length")
	ErrOverlap      = errors.New("overlapping source ranges")
	ErrLength       = errors.New("source and destination lengths differ")
)

// ParseError reports a malformed almanac. Line is 1-based, or 0 when
// the problem is not tied to one line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("almanac: %v", e.Err)
	}
	return fmt.Sprintf("almanac: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
