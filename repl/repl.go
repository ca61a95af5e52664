package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lisplet/lisplet/lisp"
	"github.com/lisplet/lisplet/parser"
)

// Run reads expressions from the terminal and evaluates them against a
// single interpreter, so bindings persist across lines.  Input that ends
// mid-expression sets a continuation prompt and keeps reading.  Errors are
// printed and the loop continues; only EOF (or a read failure) ends it.
func Run(prompt string) {
	in := lisp.New(lisp.WithReader(parser.NewReader()))

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		exprs, err := parser.Parse("repl", line)
		if err != nil {
			if parser.IsIncomplete(err) {
				// ReadSlice reuses its buffer so the pending text
				// must be copied out before the next read.
				buf = append([]byte(nil), line...)
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(err)
			continue
		}
		for _, expr := range exprs {
			v, err := in.Eval(expr, in.Global())
			if err != nil {
				errln(err)
				break
			}
			fmt.Println(v)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
