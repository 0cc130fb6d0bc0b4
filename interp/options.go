package interp

import (
	"fmt"
	"io"

	"github.com/nustack/nu/internal/flushio"
)

// Option configures an Interpreter at construction time, following the same
// functional-options shape as gothird's VMOption (options.go/api.go).
type Option interface{ apply(in *Interpreter) }

type optionFunc func(in *Interpreter)

func (f optionFunc) apply(in *Interpreter) { f(in) }

// WithArgv sets argv; the first element should be a script path or the
// literal "<<INTERACTIVE>>" per spec.md §6.2.
func WithArgv(argv []string) Option {
	return optionFunc(func(in *Interpreter) { in.Argv = argv })
}

// WithDir sets the interpreter's current directory, used by the module
// loader as the first search-path entry (spec.md §4.G step 4).
func WithDir(dir string) Option {
	return optionFunc(func(in *Interpreter) { in.Dir = dir })
}

// WithInput queues an input reader (spec.md's ioCore-style input queue:
// multiple readers are consumed in order, so a REPL can prepend a banner or
// prelude ahead of stdin).
func WithInput(r io.Reader) Option {
	return optionFunc(func(in *Interpreter) { in.Queue = append(in.Queue, r) })
}

// WithOutput sets where show/peek/show.repr/peek.repr write to.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(in *Interpreter) {
		if in.out != nil {
			in.out.Flush()
		}
		in.out = flushio.NewWriteFlusher(w)
		if cl, ok := w.(io.Closer); ok {
			in.closers = append(in.closers, cl)
		}
	})
}

// WithTee adds an additional output writer alongside whatever is already
// set, the way gothird's withTee composes WriteFlushers.
func WithTee(w io.Writer) Option {
	return optionFunc(func(in *Interpreter) {
		in.out = flushio.WriteFlushers(in.out, flushio.NewWriteFlusher(w))
		if cl, ok := w.(io.Closer); ok {
			in.closers = append(in.closers, cl)
		}
	})
}

// WithTrace installs a word-level trace sink: every dispatched call is
// logged as "mark message" through logf, after gothird's
// logging.logf/core.go; the mark is not padded to a fixed width.
func WithTrace(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(in *Interpreter) {
		in.logf = func(mark, mess string, args ...interface{}) {
			if len(args) > 0 {
				mess = fmt.Sprintf(mess, args...)
			}
			logf("%s %s", mark, mess)
		}
	})
}
