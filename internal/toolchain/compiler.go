package toolchain

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tliron/commonlog"

	"monicelli/internal/errors"
)

var log = commonlog.GetLogger("monicelli.toolchain")

const (
	DefaultCommand = "clang++"
	DefaultOutput  = "a.out"

	// Environment overrides for the external compiler.
	EnvCommand = "MONICELLI_CXX"
	EnvFlags   = "MONICELLI_CXXFLAGS"
)

// DefaultFlags select the dialect the generated code is written in.
var DefaultFlags = []string{"-std=c++11"}

// Candidates are the compiler commands tried, in order, when none is
// configured.
var Candidates = []string{DefaultCommand, "g++", "c++"}

// Detect returns the first of Candidates found on PATH, or DefaultCommand
// when there is none.
func Detect() string {
	for _, command := range Candidates {
		if _, err := exec.LookPath(command); err == nil {
			return command
		}
	}
	return DefaultCommand
}

// Compiler turns a generated C++ translation unit into an executable at
// outputPath and reports the compiler's exit status. A non-nil error means
// the compiler could not be run at all.
type Compiler interface {
	Compile(ctx context.Context, source []byte, outputPath string) (int, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, source []byte, outputPath string) (int, error)

func (f CompilerFunc) Compile(ctx context.Context, source []byte, outputPath string) (int, error) {
	return f(ctx, source, outputPath)
}

// ExecCompiler runs a system C++ compiler, feeding the source on stdin.
type ExecCompiler struct {
	Command string
	Flags   []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecCompiler runs command, or the detected compiler when command is
// empty, with flags or DefaultFlags.
func NewExecCompiler(command string, flags ...string) *ExecCompiler {
	if command == "" {
		command = Detect()
	}
	if len(flags) == 0 {
		flags = DefaultFlags
	}
	return &ExecCompiler{Command: command, Flags: flags, Stdout: os.Stderr, Stderr: os.Stderr}
}

// FromEnv builds an ExecCompiler honoring MONICELLI_CXX and
// MONICELLI_CXXFLAGS. command, when not empty, wins over the environment.
func FromEnv(command string) *ExecCompiler {
	if command == "" {
		command = os.Getenv(EnvCommand)
	}
	return NewExecCompiler(command, strings.Fields(os.Getenv(EnvFlags))...)
}

func (c *ExecCompiler) Compile(ctx context.Context, source []byte, outputPath string) (int, error) {
	if outputPath == "" {
		outputPath = DefaultOutput
	}

	args := append(append([]string{}, c.Flags...), "-x", "c++", "-o", outputPath, "-")
	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.Stdin = bytes.NewReader(source)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	log.Infof("running %s %s", c.Command, strings.Join(args, " "))
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case stderrors.As(err, &exitErr):
		log.Errorf("%s exited with status %d", c.Command, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	default:
		return -1, &errors.ToolchainError{Op: "run " + c.Command, Err: err}
	}
}

// Available reports whether the compiler command can be found.
func (c *ExecCompiler) Available() bool {
	_, err := exec.LookPath(c.Command)
	return err == nil
}
