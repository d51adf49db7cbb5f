package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/boltlang/bolt/internal/object"
	"github.com/spf13/cobra"
)

// newStartCmd builds the "bolt start" REPL, a direct port of the
// teacher's startREPL: one persistent Environment across lines, a
// ":quit"/":q" exit command, and a ":help"/":h" command, prompting
// "bolt> " instead of "nix-repl> ".
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start an interactive Bolt REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			runREPL(cmd.OutOrStdout())

			return nil
		},
	}
}

func runREPL(out interface{ Write([]byte) (int, error) }) {
	fmt.Fprintln(out, "bolt repl - Type :quit to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(os.Stdin)
	env := object.NewEnvironment()

	for {
		fmt.Fprint(out, "bolt> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(out, line)

			continue
		}

		if val, ok := evalSource(line, env); ok {
			fmt.Fprintln(out, val.String())
		}
	}
}

func handleReplCommand(out interface{ Write([]byte) (int, error) }, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for available commands")
	}
}
