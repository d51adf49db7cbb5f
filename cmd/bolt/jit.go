package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// newJitCmd builds "bolt jit --path --backend llvm": emit IR to a
// temporary file and shell out to "lli", LLVM's interpreter/JIT
// driver, to run it immediately. Per spec.md's scope boundary, the
// native execution step is entirely an external collaborator's job —
// internal/irgen only ever produces an in-memory ir.Module or, via
// this command, a textual .ll file on disk.
func newJitCmd() *cobra.Command {
	var (
		path    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "jit",
		Short: "Lower a Bolt source file to LLVM IR and run it immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			if backend != "llvm" {
				return fmt.Errorf("unsupported backend %q: only \"llvm\" is implemented", backend)
			}

			module, err := emitModule(path)
			if err != nil {
				return err
			}

			tmp, err := os.CreateTemp("", "bolt-jit-*.ll")
			if err != nil {
				return fmt.Errorf("creating temp file: %w", err)
			}
			defer os.Remove(tmp.Name())

			if _, err := tmp.WriteString(module.String()); err != nil {
				tmp.Close()

				return fmt.Errorf("writing IR: %w", err)
			}
			tmp.Close()

			run := exec.Command("lli", tmp.Name())
			run.Stdout = cmd.OutOrStdout()
			run.Stderr = cmd.ErrOrStderr()
			run.Stdin = os.Stdin

			if err := run.Run(); err != nil {
				return fmt.Errorf("running lli: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "path to a Bolt source file")
	cmd.Flags().StringVar(&backend, "backend", "llvm", "IR backend to use")
	cmd.MarkFlagRequired("path")

	return cmd
}
