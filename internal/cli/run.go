package cli

import (
	"fmt"
	"io"

	"github.com/retroenv/ntcoord/internal/config"
	"github.com/retroenv/ntcoord/internal/nametable"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// BuildInfo holds the version details set at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Run executes the program for the given arguments and returns the
// process exit code. Results go to stdout, diagnostics and logs to stderr.
func Run(args []string, stdout, stderr io.Writer, build BuildInfo) int {
	opts, err := ParseArgs(args)
	if err != nil {
		if usageErr, ok := asUsageError(err); ok {
			usageErr.ShowUsage(stderr)
		} else {
			_, _ = fmt.Fprintf(stderr, "error: %s\n", err)
		}
		return 1
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "ntcoord version: %s\n", buildinfo.Version(build.Version, build.Commit, build.Date))
		return 0
	}

	logger := config.CreateLogger(stderr, opts.Debug)

	coord := nametable.Coordinate{X: opts.X, Y: opts.Y}
	if !coord.InBounds() {
		_, _ = fmt.Fprintln(stdout, "out of bounds")
		return 0
	}

	column, row := coord.Tile()
	logger.Debug("tile", log.Int("column", column), log.Int("row", row))

	_, _ = fmt.Fprintln(stdout, FormatAddress(coord.Address(), opts.Decimal))
	if opts.Attribute {
		_, _ = fmt.Fprintln(stdout, FormatAddress(coord.AttributeAddress(), opts.Decimal))
	}
	return 0
}

// FormatAddress returns the address in assembler hex notation like $23BF,
// or as a decimal number.
func FormatAddress(address uint16, decimal bool) string {
	if decimal {
		return fmt.Sprintf("%d", address)
	}
	return fmt.Sprintf("$%04X", address)
}
