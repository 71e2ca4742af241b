// Command db48x is a demo CLI driving the rpl engine: either an
// interactive raw-terminal REPL, or a batch evaluator for one or more
// program files given as arguments. It is a thin stand-in for the real
// device's key matrix and display, not an implementation of either.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/camillew/db48x-core/internal/fileinput"
	"github.com/camillew/db48x-core/internal/panicerr"
	"github.com/camillew/db48x-core/rpl"
)

func main() {
	var (
		trace   bool
		memSize int
		timeout time.Duration
	)
	flag.BoolVar(&trace, "trace", false, "enable gc/eval trace logging")
	flag.IntVar(&memSize, "mem", 1<<20, "arena size in bytes")
	flag.DurationVar(&timeout, "timeout", 0, "abort evaluation after this long")
	flag.Parse()

	var interrupted int32
	opts := []rpl.RuntimeOption{
		rpl.WithInterruptSource(func() bool { return atomic.LoadInt32(&interrupted) != 0 }),
	}
	if trace {
		opts = append(opts, rpl.WithTrace(os.Stderr))
	}
	rt := rpl.NewRuntime(make([]byte, memSize), opts...)

	var err error
	if args := flag.Args(); len(args) > 0 {
		err = runFiles(rt, args, timeout, &interrupted)
	} else {
		err = runREPL(rt, &interrupted)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

// runFiles evaluates one or more program files in sequence as a single
// program. All files are read before parsing, so a syntax error is
// prefixed with internal/fileinput's location of the last line read, not
// the line the error is on.
func runFiles(rt *rpl.Runtime, paths []string, timeout time.Duration, interrupted *int32) error {
	in := &fileinput.Input{}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		in.Queue = append(in.Queue, f)
	}

	var text strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		text.WriteRune(r)
	}

	if timeout != 0 {
		timer := time.AfterFunc(timeout, func() { atomic.StoreInt32(interrupted, 1) })
		defer timer.Stop()
	}

	return panicerr.Recover("rpl", func() error {
		obj, err := rt.Parse(text.String())
		if err != nil {
			return fmt.Errorf("%v: %w", in.Last.Location, err)
		}
		if err := rt.Execute(obj); err != nil {
			return err
		}
		if top := rt.Top(); top != rpl.NullAddr {
			fmt.Println(rt.Render(top))
		}
		return nil
	})
}
