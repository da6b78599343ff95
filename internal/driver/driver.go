// Package driver implements the monicelli command line.
package driver

import (
	"bytes"
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"monicelli/internal/errors"
	"monicelli/internal/parser"
	"monicelli/internal/repl"
	"monicelli/internal/toolchain"
	"monicelli/internal/translator"
	"monicelli/internal/watch"
)

var log = commonlog.GetLogger("monicelli.driver")

const Version = "0.1.0"

// Exit statuses.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Driver runs one invocation of the command line against the given streams.
type Driver struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Compiler overrides the system C++ compiler chosen from the options.
	Compiler toolchain.Compiler
}

// Run executes the command line with the process streams and returns the
// exit status. An interrupt cancels watch mode.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &Driver{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	return d.Run(ctx, args)
}

func (d *Driver) Run(ctx context.Context, args []string) int {
	opts, err := ParseArgs(args, d.Stderr)
	if stderrors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitUsage
	}

	if opts.Verbose {
		commonlog.Configure(2, nil)
	}

	switch {
	case opts.Version:
		fmt.Fprintf(d.Stdout, "monicelli %s\n", Version)
		return ExitOK
	case opts.REPL:
		repl.Start(d.Stdin, d.Stdout, opts.AST)
		return ExitOK
	case len(opts.Batch) > 0:
		return d.runBatch(ctx, opts)
	case opts.Watch:
		return d.runWatch(ctx, opts)
	default:
		return d.runSingle(ctx, opts)
	}
}

// runSingle translates -i into -o and optionally compiles the result.
func (d *Driver) runSingle(ctx context.Context, opts *Options) int {
	start := time.Now()

	name, source, err := d.readInput(opts.Input)
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}

	out, err := render(name, source, opts.AST)
	if err != nil {
		errors.NewErrorReporter(name, string(source)).Report(d.Stderr, err)
		color.New(color.FgRed).Fprintf(d.Stderr, "translation failed after %s\n", formatDuration(time.Since(start)))
		return ExitError
	}

	if err := d.writeOutput(opts.Output, out); err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}
	if opts.Output != Stdio {
		color.New(color.FgGreen).Fprintf(d.Stderr, "translated %s to %s in %s\n", name, opts.Output, formatDuration(time.Since(start)))
	}

	if !opts.Compile {
		return ExitOK
	}
	return d.compile(ctx, opts, out, opts.Executable)
}

// render runs the pipeline over source. Nothing is returned unless every
// phase succeeded.
func render(name string, source []byte, showAST bool) ([]byte, error) {
	if showAST {
		prog, err := parser.Parse(name, bytes.NewReader(source))
		if err != nil {
			return nil, err
		}
		return []byte(prog.String()), nil
	}

	var buf bytes.Buffer
	if err := translator.Translate(name, bytes.NewReader(source), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Driver) readInput(path string) (string, []byte, error) {
	if path == Stdio {
		source, err := io.ReadAll(d.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading standard input: %w", err)
		}
		return "<stdin>", source, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	return path, source, nil
}

func (d *Driver) writeOutput(path string, out []byte) error {
	if path == Stdio {
		_, err := d.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (d *Driver) compiler(opts *Options) toolchain.Compiler {
	if d.Compiler != nil {
		return d.Compiler
	}

	c := toolchain.FromEnv(opts.CXX)
	c.Stdout, c.Stderr = d.Stderr, d.Stderr
	return c
}

// compile hands the generated unit to the C++ compiler. The compiler's own
// exit status becomes the driver's.
func (d *Driver) compile(ctx context.Context, opts *Options, source []byte, exe string) int {
	c := d.compiler(opts)

	if ec, ok := c.(*toolchain.ExecCompiler); ok {
		if err := ec.Validate(ctx); err != nil {
			color.New(color.FgYellow).Fprintf(d.Stderr, "warning: %s\n", err)
		}
	}

	status, err := c.Compile(ctx, source, exe)
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}
	if status != 0 {
		color.New(color.FgRed).Fprintf(d.Stderr, "C++ compiler exited with status %d\n", status)
		return status
	}
	log.Infof("compiled %s", exe)
	return ExitOK
}

// runWatch translates once, then again after every change to the input,
// until ctx is cancelled. Failures are reported and watching continues.
func (d *Driver) runWatch(ctx context.Context, opts *Options) int {
	w, err := watch.New(opts.Input)
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}

	d.runSingle(ctx, opts)

	err = w.Run(ctx, func(string) {
		fmt.Fprintf(d.Stderr, "%s changed\n", opts.Input)
		d.runSingle(ctx, opts)
	})
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}
	return ExitOK
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
