// Command nu is the command-line driver for the interpreter: a script path
// or stdin fallback, tracing, and a run timeout, wired up with cobra the
// way CWBudde-go-dws's dwscript CLI is (cmd/dwscript/cmd/root.go, run.go),
// with the logf/exit-code plumbing kept in gothird's own style
// (internal/logio.Logger, main.go).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nustack/nu/internal/logio"
	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/loader"
	"github.com/nustack/nu/prim"
)

var (
	trace   bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "nu [script]",
	Short: "Run a nu program",
	Long: `nu is an interpreter for a small concatenative, stack-based language.

Run a script file, or omit the path to read from stdin interactively:

  nu script.nu
  nu --trace script.nu
  echo '1 2 + show' | nu`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log every dispatched call")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "stop the program after this long")
}

func main() {
	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	if err := rootCmd.Execute(); err != nil {
		log.ErrorIf(err)
	}
}

func run(_ *cobra.Command, args []string) error {
	var (
		source string
		argv   []string
		dir    string
	)

	if len(args) == 1 {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		source = string(data)
		argv = []string{path}
		dir = filepath.Dir(path)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		source = string(data)
		argv = []string{"<<INTERACTIVE>>"}
		dir = "."
	}

	opts := []interp.Option{
		interp.WithArgv(argv),
		interp.WithDir(dir),
		interp.WithOutput(os.Stdout),
	}
	if trace {
		log := logio.Logger{}
		log.SetOutput(os.Stderr)
		opts = append(opts, interp.WithTrace(log.Leveledf("TRACE")))
	}

	in := interp.New(opts...)
	defer in.Close()

	ld := loader.New()
	prim.Install(in, ld)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	errc := make(chan error, 1)
	go func() { errc <- in.Run(source) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
