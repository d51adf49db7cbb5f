package main

import (
	"fmt"
	"os"

	"github.com/boltlang/bolt/internal/object"
	"github.com/spf13/cobra"
)

// newRunCmd builds "bolt run --path <file>": read the file, evaluate
// it with the tree-walking evaluator, print the result. This plays the
// role of the teacher's evalFile/evalExpression pair, minus the
// base-directory plumbing gix needs for relative path literals — Bolt
// has no path literal type.
func newRunCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a Bolt source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			env := object.NewEnvironment()

			val, ok := evalSource(string(content), env)
			if !ok {
				os.Exit(1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), val.String())

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "path to a Bolt source file")
	cmd.MarkFlagRequired("path")

	return cmd
}
