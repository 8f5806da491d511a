package cli

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// inputOpts selects where a command reads its text from.
type inputOpts struct {
	file string // read from this file ("-" for stdin)
}

// readInput resolves the text to encrypt from, in order: positional args
// (joined with spaces), --file, or piped stdin. It returns nil when no source
// supplies any input, which callers report as INVALID_ARGUMENT.
func (c *CLI) readInput(args []string, opts inputOpts) (*string, error) {
	if len(args) > 0 && opts.file != "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "pass text as arguments or --file, not both")
	}

	if len(args) > 0 {
		text := strings.Join(args, " ")
		return &text, nil
	}

	if opts.file == "-" {
		return readAll(c.In)
	}

	if opts.file != "" {
		if err := errors.ValidatePath(opts.file); err != nil {
			return nil, err
		}
		f, err := os.Open(opts.file)
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s does not exist", opts.file)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", opts.file)
		}
		defer f.Close()
		return readAll(f)
	}

	if c.In == nil || isTerminal(c.In) {
		return nil, nil
	}
	return readAll(c.In)
}

func readAll(r io.Reader) (*string, error) {
	if r == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	text := string(data)
	return &text, nil
}

// isTerminal reports whether r is an interactive terminal, in which case
// nothing was piped in and reading would block on the user.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// noInputError is returned when no text source was supplied.
func noInputError() error {
	return errors.New(errors.ErrCodeInvalidArgument, "no input: pass text as arguments, use --file, or pipe it on stdin")
}
