package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/vitaminmoo/hexd/internal/config"
	"github.com/vitaminmoo/hexd/internal/hexdump"
	"github.com/vitaminmoo/hexd/internal/tui"
)

// CLI is the root command structure for hexd.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose debug output"`
	View    bool `help:"Browse the dump in an interactive pager"`

	// Arity is checked in Run so that any count other than one gets the
	// same usage message.
	Files []string `arg:"" optional:"" name:"file" help:"File to dump"`
}

// Run dumps the named file to stdout, or opens it in the pager.
func (c *CLI) Run(stdout io.Writer) error {
	config.Verbose = c.Verbose

	if len(c.Files) != 1 {
		return &UsageError{Args: len(c.Files)}
	}
	path := c.Files[0]

	f, err := os.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	config.Debugf("Opened %s (%s)", path, humanize.IBytes(uint64(size)))

	if c.View {
		return tui.Run(path, size, f, stdout)
	}

	d := hexdump.New(stdout)
	if err := d.Dump(f); err != nil {
		return err
	}
	st := d.Stats()
	config.Debugf("Dumped %d rows (%s)", st.Rows, humanize.Comma(st.Bytes))
	return nil
}

// exitRequest carries the code kong asks to exit with, e.g. after --help.
type exitRequest int

// Main parses args, runs the command and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) (code int) {
	config.SetDebugOutput(stderr)

	var c CLI
	parser, err := kong.New(&c,
		kong.Name("hexd"),
		kong.Description("Print a hex dump of a file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "hexd: %v\n", err)
		return config.ExitFailure
	}

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = int(req)
		}
	}()

	if _, err := parser.Parse(args); err != nil {
		return report(stdout, stderr, &UsageError{Args: len(args), Err: err})
	}
	return report(stdout, stderr, c.Run(stdout))
}

// report prints the user-facing message for err and returns its exit code.
func report(stdout, stderr io.Writer, err error) int {
	var usageErr *UsageError
	var openErr *OpenError

	switch {
	case err == nil:
	case errors.As(err, &usageErr):
		config.Debugf("%v", err)
		fmt.Fprintln(stdout, "Usage: hexd [file]")
	case errors.As(err, &openErr):
		config.Debugf("%v", err)
		fmt.Fprintf(stdout, "Error: Could not open [%s]\n", openErr.Path)
	default:
		fmt.Fprintf(stderr, "hexd: %v\n", err)
	}

	return config.ExitCode(err)
}
