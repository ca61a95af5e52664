package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lisplet/lisplet/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate lisp expressions interactively",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run("> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
