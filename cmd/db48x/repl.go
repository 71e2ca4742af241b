package main

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/camillew/db48x-core/internal/flushio"
	"github.com/camillew/db48x-core/internal/panicerr"
	"github.com/camillew/db48x-core/internal/runeio"
	"github.com/camillew/db48x-core/rpl"
)

const prompt = "db48x> "

// runREPL drives an interactive session: stdin is put into raw mode so
// every keystroke is seen immediately, with no line buffering and no
// local echo from the terminal driver itself, standing in for the
// physical key-matrix collaborator this engine otherwise has no opinion
// about.
func runREPL(rt *rpl.Runtime, interrupted *int32) error {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("stdin is not a terminal: %w", err)
	}
	defer term.Restore(fd, state)

	out := flushio.NewWriteFlusher(os.Stdout)
	in := runeio.NewReader(os.Stdin)

	fmt.Fprint(out, prompt)
	out.Flush()

	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			fmt.Fprint(out, "\r\n")
			out.Flush()
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case r == 0x03: // Ctrl-C: interrupt whatever is running and clear the line
			atomic.StoreInt32(interrupted, 1)
			echoControl(out, r)
			rt.EditorClear()
			fmt.Fprint(out, "\r\n"+prompt)

		case r == 0x04: // Ctrl-D: EXIT
			echoControl(out, r)
			fmt.Fprint(out, "\r\n")
			out.Flush()
			return nil

		case r == '\r' || r == '\n':
			line := rt.EditorText()
			rt.EditorClear()
			fmt.Fprint(out, "\r\n")
			runLine(rt, out, interrupted, line)
			fmt.Fprint(out, prompt)

		case r == 0x7f || r == 0x08: // Backspace / DEL
			if rt.EditorBackspace() {
				fmt.Fprint(out, "\b \b")
			}

		default:
			if err := rt.EditorInsert(string(r)); err != nil {
				fmt.Fprintf(out, "\r\n%s\r\n", err)
			} else {
				runeio.WriteANSIRune(out, r)
			}
		}
		out.Flush()
	}
}

// echoControl prints a caret-form mnemonic (e.g. "^C") for a control
// keypress, reusing the control-character naming internal/runeio already
// provides for rendering non-printable runes.
func echoControl(w io.Writer, r rune) {
	if s := runeio.CaretForm(r); s != "" {
		io.WriteString(w, s)
	}
}

// runLine parses and executes one committed command line, recovering any
// panic that escapes the evaluator's own fault boundary -- the same
// outermost safety net wrapping the whole top-level run.
func runLine(rt *rpl.Runtime, out io.Writer, interrupted *int32, line string) {
	defer atomic.StoreInt32(interrupted, 0)

	err := panicerr.Recover("rpl", func() error {
		obj, err := rt.Parse(line)
		if err != nil {
			return err
		}
		return rt.Execute(obj)
	})

	if err != nil {
		fmt.Fprintf(out, "%s\r\n", err)
		rt.ClearError()
		return
	}
	printStack(out, rt)
}

// printStack renders the data stack HP-style, deepest level first, level 1
// (top of stack) last.
func printStack(out io.Writer, rt *rpl.Runtime) {
	depth := rt.Depth()
	for level := depth; level >= 1; level-- {
		addr, err := rt.StackAt(level - 1)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "%d: %s\r\n", level, rt.Render(addr))
	}
}
