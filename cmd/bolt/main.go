// Command bolt is the Bolt language CLI: a REPL, a direct interpreter,
// and a thin driver around the IR emitter and an external native
// toolchain. The interpreter and IR emitter themselves live in
// internal/eval and internal/irgen; this command only wires them to
// the filesystem and to each other, the way the teacher interpreter's
// main.go wires its own lexer/parser/eval pipeline to flags and files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
