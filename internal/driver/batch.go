package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"monicelli/internal/errors"
)

// SourceExt is the extension of Monicelli sources.
const SourceExt = ".mc"

// batchOutputs maps an input to the generated file and the executable built
// from it: "dir/prog.mc" gives "dir/prog.cpp" and "dir/prog". Neither may
// overwrite the input itself.
func batchOutputs(input string) (cpp, exe string, err error) {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	cpp, exe = base+".cpp", base
	if cpp == input {
		return "", "", fmt.Errorf("%s: input would be overwritten by its translation", input)
	}
	if exe == input {
		exe += ".out"
	}
	return cpp, exe, nil
}

// runBatch translates every positional input concurrently. Each file is
// all-or-nothing on its own; one failure does not stop the others.
func (d *Driver) runBatch(ctx context.Context, opts *Options) int {
	var (
		mu     sync.Mutex
		status = ExitOK
	)

	// Reports are buffered per file so that concurrent diagnostics do not
	// interleave on stderr.
	report := func(buf *bytes.Buffer, code int) {
		mu.Lock()
		defer mu.Unlock()
		d.Stderr.Write(buf.Bytes())
		if code != ExitOK && status == ExitOK {
			status = code
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, input := range opts.Batch {
		input := input
		g.Go(func() error {
			var buf bytes.Buffer
			code := d.translateFile(gctx, opts, input, &buf)
			report(&buf, code)
			return nil
		})
	}
	_ = g.Wait()

	return status
}

func (d *Driver) translateFile(ctx context.Context, opts *Options, input string, stderr *bytes.Buffer) int {
	cppPath, exePath, err := batchOutputs(input)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}

	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}

	out, err := render(input, source, false)
	if err != nil {
		errors.NewErrorReporter(input, string(source)).Report(stderr, err)
		return ExitError
	}

	if err := os.WriteFile(cppPath, out, 0o644); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", color.RedString("error"), err)
		return ExitError
	}
	log.Infof("%s -> %s", input, cppPath)

	if !opts.Compile {
		return ExitOK
	}

	sub := *d
	sub.Stderr = stderr
	return sub.compile(ctx, opts, out, exePath)
}
