package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/boltlang/bolt/internal/irgen"
	"github.com/boltlang/bolt/internal/lexer"
	"github.com/boltlang/bolt/internal/parser"
	llvmir "github.com/llir/llvm/ir"
	"github.com/spf13/cobra"
)

// newCompileCmd builds "bolt compile --path --backend llvm --out
// --target [--bytecode]". The core (internal/irgen) only produces
// textual LLVM IR; turning that into bitcode or a native object file
// is explicitly an external collaborator's job, so --bytecode shells
// out to "llvm-as" via os/exec rather than teaching internal/irgen a
// bitcode writer it has no library support for.
func newCompileCmd() *cobra.Command {
	var (
		path     string
		backend  string
		out      string
		target   string
		bytecode bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Lower a Bolt source file to LLVM IR (or bitcode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if backend != "llvm" {
				return fmt.Errorf("unsupported backend %q: only \"llvm\" is implemented", backend)
			}

			module, err := emitModule(path)
			if err != nil {
				return err
			}

			irPath := out
			if bytecode {
				irPath = out + ".ll"
			}

			if err := os.WriteFile(irPath, []byte(module.String()), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", irPath, err)
			}

			if !bytecode {
				return nil
			}

			assembleArgs := []string{"-o", out, irPath}
			if target != "" {
				assembleArgs = append([]string{"-mtriple=" + target}, assembleArgs...)
			}

			assemble := exec.Command("llvm-as", assembleArgs...)
			assemble.Stdout = cmd.OutOrStdout()
			assemble.Stderr = cmd.ErrOrStderr()

			if err := assemble.Run(); err != nil {
				return fmt.Errorf("running llvm-as: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "path to a Bolt source file")
	cmd.Flags().StringVar(&backend, "backend", "llvm", "IR backend to use")
	cmd.Flags().StringVar(&out, "out", "a.out", "output path")
	cmd.Flags().StringVar(&target, "target", "", "target triple, passed through to the external toolchain")
	cmd.Flags().BoolVar(&bytecode, "bytecode", false, "assemble to LLVM bitcode instead of writing textual IR")
	cmd.MarkFlagRequired("path")

	return cmd
}

// emitModule runs the scan -> parse -> irgen pipeline over the file at
// path.
func emitModule(path string) (*llvmir.Module, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	p := parser.New(lexer.New(string(content)))

	program, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	module, err := irgen.New().Emit(program)
	if err != nil {
		return nil, fmt.Errorf("ir emission error: %w", err)
	}

	return module, nil
}
