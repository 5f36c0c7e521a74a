// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/retroenv/ntcoord/internal/options"
)

const usage = "usage: ntcoord x y"

// ParseArgs parses the command line arguments without the program name.
// Flags end at the first argument that is not a flag, at "--" or at the
// first integer, so that negative coordinates are not taken for flags.
// The coordinates are parsed in order and parsing stops at the first
// argument that is not a number.
func ParseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("ntcoord", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	flagArgs, args := splitFlags(args)
	if err := flags.Parse(flagArgs); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, nil
	}

	// a lone "-" stops the flag parser and counts as a coordinate
	args = append(flags.Args(), args...)
	if len(args) < 2 {
		return opts, &UsageError{flags: flags, msg: "missing coordinates"}
	}

	var err error
	if opts.X, err = parseNumber(args[0]); err != nil {
		return opts, err
	}
	if opts.Y, err = parseNumber(args[1]); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage writes the usage line and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, usage)
	if e.flags == nil {
		return
	}
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
}

// ParseError is returned for a coordinate argument that is not a
// base 10 integer.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return "not a number: " + e.Value
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// splitFlags returns the leading flag arguments and the remaining
// arguments, with a terminating "--" removed.
func splitFlags(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(arg, "-") || isInteger(arg) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// isInteger returns whether s is an optionally signed run of decimal
// digits, regardless of whether it fits into an int.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parseNumber parses a base 10 integer. Values that do not fit into an
// int are clamped to the int range, which keeps large positive values
// out of bounds and large negative values unrejected.
func parseNumber(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err == nil {
		return i, nil
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, &ParseError{Value: s, Err: err}
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Attribute, "attr", false, "also print the attribute table address")
	flags.BoolVar(&opts.Decimal, "d", false, "print addresses in decimal instead of hex")
	flags.BoolVar(&opts.Debug, "v", false, "log the tile column and row to stderr")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}

func asUsageError(err error) (*UsageError, bool) {
	var usageErr *UsageError
	ok := errors.As(err, &usageErr)
	return usageErr, ok
}
