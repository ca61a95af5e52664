package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lisplet",
	Short: "A small embeddable lisp",
	Long: `lisplet is a small dynamically typed lisp with lexical scoping and
first-class closures.  It evaluates files with the run command or reads
expressions interactively with the repl command.`,
}

// Execute runs the root command.  It is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
