// Patchbay — terminal module patcher.
//
// Drag a cable from any socket and drop it anywhere inside a target
// window; the drop resolves to the first compatible slot, descending
// through group windows.
//
// Run: go run ./cmd/patchbay/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/patchbay/internal/patchui"
	"github.com/wesen/patchbay/internal/rulescript"
)

func main() {
	rulesExpr := flag.String("rules", "from.kind == to.kind",
		"JS compatibility expression over from/to (id, kind); empty admits all")
	logPath := flag.String("log", "", "append connection log lines to this file")
	flag.Parse()

	rules, err := rulescript.New(*rulesExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ws := patchui.MakeDemoRack(rules)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		ws.Graph().Logf = log.New(f, "", log.LstdFlags).Printf
	}

	p := tea.NewProgram(patchui.NewModel(ws))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
