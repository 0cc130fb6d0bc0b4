package interp

import (
	"io"
	"strings"

	"github.com/nustack/nu/internal/runeio"
)

// WriteString writes s to the interpreter's configured output, the way
// show/peek/show.repr/peek.repr do, using the same ANSI-safe rune encoding
// gothird's runeio.WriteANSIRune uses for its echo word.
func (in *Interpreter) WriteString(s string) error {
	_, err := runeio.WriteANSIString(in.out, s)
	return err
}

// Flush flushes the output writer; the interpreter never needs to call this
// itself mid-run (Close does it at the end), but `input`/`in` flushes before
// blocking on a read so a prompt is visible first.
func (in *Interpreter) Flush() error { return in.out.Flush() }

// ReadLine reads one newline-terminated line from the queued input
// (fileinput.Input, shared with the module loader's script-reading), for
// the `input`/`in` primitive. The trailing newline is stripped; io.EOF with
// no content read is returned as-is.
func (in *Interpreter) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.Input.ReadRune()
		if r == '\n' {
			return sb.String(), nil
		}
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return sb.String(), err
		}
		sb.WriteRune(r)
	}
}
