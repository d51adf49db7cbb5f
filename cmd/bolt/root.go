package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the bolt command tree: start, run, jit, compile.
// Cobra (and its transitive pflag/mousetrap dependencies) replace the
// teacher CLI's hand-rolled "flag" package usage, in exchange for
// proper subcommands — Bolt's surface is wider than gix's single-mode
// expression evaluator, so it gets the richer dispatcher.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bolt",
		Short: "Bolt language interpreter and IR compiler",
		Long: "bolt runs Bolt programs with a tree-walking evaluator, or lowers them\n" +
			"to an LLVM-style IR module for an external native toolchain.",
		SilenceUsage: true,
	}

	root.AddCommand(newStartCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newJitCmd())
	root.AddCommand(newCompileCmd())

	return root
}
