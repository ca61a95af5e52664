package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lisplet/lisplet/lisp"
	"github.com/lisplet/lisplet/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		in := lisp.New()
		result := lisp.Nil()
		for i := range sources {
			exprs, err := parser.Parse(sources[i].name, sources[i].src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			result, err = in.EvalProgram(exprs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if runPrint {
			fmt.Println(result)
		}
	},
}

type runSource struct {
	name string
	src  []byte
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{name: "cli", src: []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{name: path, src: b}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false, "treat arguments as lisp expressions instead of file paths")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false, "print the value of the last expression")
}
