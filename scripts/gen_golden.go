// Command gen_golden reads a fixture file of "input|expected" render cases,
// one per line, and emits a generated _test.go file exercising
// rpl.Runtime.Parse/Render against each case. Mirrors the teacher's
// gen_vm_expects.go pipeline: a goimports subprocess piped concurrently
// with the generator itself via golang.org/x/sync/errgroup, so formatting
// never needs a separate pass.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open %v: %v", args[0], err)
		}
		args = args[1:]
		in = f
	}
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			log.Fatalf("failed to create %v: %v", args[0], err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

type goldenCase struct {
	input, expect string
}

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package rpl_test\n\n")
	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString(" by scripts/gen_golden.go\n\n")
	buf.WriteString("import (\n\t\"testing\"\n\n\t\"github.com/stretchr/testify/assert\"\n\n\t\"github.com/camillew/db48x-core/rpl\"\n)\n\n")

	var cases []goldenCase
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed fixture line %q: want \"input|expected\"", line)
		}
		cases = append(cases, goldenCase{input: parts[0], expect: parts[1]})
	}
	if err := sc.Err(); err != nil {
		return err
	}

	buf.WriteString("func TestGoldenRender(t *testing.T) {\n")
	buf.WriteString("\tcases := []struct {\n\t\tinput, expect string\n\t}{\n")
	for _, c := range cases {
		fmt.Fprintf(&buf, "\t\t{%q, %q},\n", c.input, c.expect)
	}
	buf.WriteString("\t}\n\n")
	buf.WriteString("\tfor _, c := range cases {\n")
	buf.WriteString("\t\tc := c\n")
	buf.WriteString("\t\tt.Run(c.input, func(t *testing.T) {\n")
	buf.WriteString("\t\t\trt := rpl.NewRuntime(make([]byte, 1<<16))\n")
	buf.WriteString("\t\t\tobj, err := rt.Parse(c.input)\n")
	buf.WriteString("\t\t\tif !assert.NoError(t, err) {\n\t\t\t\treturn\n\t\t\t}\n")
	buf.WriteString("\t\t\tassert.Equal(t, c.expect, rt.Render(obj))\n")
	buf.WriteString("\t\t})\n")
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	_, err := out.Write(buf.Bytes())
	return err
}
