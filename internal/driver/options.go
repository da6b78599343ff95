package driver

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"monicelli/internal/toolchain"
)

// Stdio names the default stream for -i and -o.
const Stdio = "-"

// Options is the parsed command line.
type Options struct {
	Input      string
	Output     string
	Compile    bool
	Executable string
	CXX        string
	Watch      bool
	REPL       bool
	AST        bool
	Verbose    bool
	Version    bool

	// Batch holds positional inputs, each translated to a .cpp next to it.
	Batch []string
}

// ParseArgs parses args, not including the program name. Every option has a
// short and a long spelling; both single and double dashes are accepted.
func ParseArgs(args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("monicelli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.Input, "i", Stdio, "input file")
	fs.StringVar(&opts.Input, "input", Stdio, "input file ('-' for standard input)")
	fs.StringVar(&opts.Output, "o", Stdio, "output file")
	fs.StringVar(&opts.Output, "output", Stdio, "output file ('-' for standard output)")
	fs.BoolVar(&opts.Compile, "c", false, "compile the generated C++")
	fs.BoolVar(&opts.Compile, "compile", false, "compile the generated C++ into an executable")
	fs.StringVar(&opts.Executable, "e", toolchain.DefaultOutput, "executable name")
	fs.StringVar(&opts.Executable, "exe", toolchain.DefaultOutput, "executable produced by --compile")
	fs.StringVar(&opts.CXX, "cxx", "", "C++ compiler command (default $"+toolchain.EnvCommand+" or the first of "+strings.Join(toolchain.Candidates, ", ")+" found)")
	fs.BoolVar(&opts.Watch, "watch", false, "translate again whenever the input changes")
	fs.BoolVar(&opts.REPL, "repl", false, "read programs interactively, each ended by a '.' line")
	fs.BoolVar(&opts.AST, "ast", false, "print the parsed program instead of C++")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&opts.Verbose, "verbose", false, "log pipeline progress to standard error")
	fs.BoolVar(&opts.Version, "version", false, "print the version and exit")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: monicelli [options] [file.mc ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.Batch = fs.Args()

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) validate() error {
	switch {
	case len(o.Batch) > 0 && (o.Input != Stdio || o.Output != Stdio):
		return fmt.Errorf("positional inputs cannot be combined with -i or -o")
	case len(o.Batch) > 0 && o.Watch:
		return fmt.Errorf("--watch needs a single input given with -i")
	case o.Watch && o.Input == Stdio:
		return fmt.Errorf("--watch needs an input file")
	case o.REPL && (o.Watch || len(o.Batch) > 0 || o.Compile):
		return fmt.Errorf("--repl cannot be combined with other modes")
	case o.AST && o.Compile:
		return fmt.Errorf("--ast cannot be combined with --compile")
	}
	return nil
}
