package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const separator = "x"

var ErrMissingSeparator = errors.New("no 'x' separator found")

// ParseError reports a dimension pair that could not be parsed. Err is
// ErrMissingSeparator or the *strconv.NumError of the offending half.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMissingSeparator) {
		return fmt.Sprintf("invalid size: %v in %s", e.Err, e.Input)
	}
	return fmt.Sprintf("invalid size %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Size is a width and height pair in arbitrary units.
type Size struct {
	Width  uint32
	Height uint32
}

var _ pflag.Value = (*Size)(nil)

// Parse reads "<width>x<height>", splitting at the first 'x'.
func Parse(s string) (Size, error) {
	w, h, found := strings.Cut(s, separator)
	if !found {
		return Size{}, &ParseError{Input: s, Err: ErrMissingSeparator}
	}

	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return Size{}, &ParseError{Input: s, Err: err}
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return Size{}, &ParseError{Input: s, Err: err}
	}

	return Size{Width: uint32(width), Height: uint32(height)}, nil
}

func (s Size) String() string {
	return strconv.FormatUint(uint64(s.Width), 10) + separator + strconv.FormatUint(uint64(s.Height), 10)
}

// Set implements pflag.Value so malformed sizes fail during flag parsing.
func (s *Size) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Size) Type() string {
	return "WIDTHxHEIGHT"
}
