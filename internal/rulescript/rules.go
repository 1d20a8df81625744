// Package rulescript implements patchgraph.Rules with a Goja-evaluated
// JavaScript expression, so domain compatibility can be scripted
// without recompiling. The expression sees `from` and `to` objects
// with `id` and `kind` fields, e.g. `from.kind == to.kind`.
package rulescript

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/wesen/patchbay/pkg/patchgraph"
)

// Engine evaluates one compiled compatibility expression. A Goja
// runtime is not safe for concurrent use; the patchbay calls Engine
// only from the UI event loop.
type Engine struct {
	runtime *goja.Runtime
	prog    *goja.Program
}

// New compiles the expression. An empty expression admits everything.
func New(expr string) (*Engine, error) {
	e := &Engine{runtime: goja.New()}
	if expr == "" {
		return e, nil
	}
	prog, err := goja.Compile("rules", expr, true)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}
	e.prog = prog
	return e, nil
}

// CanConnect implements patchgraph.Rules. Evaluation errors deny the
// connection; a non-boolean result is coerced the JS way.
func (e *Engine) CanConnect(from, to *patchgraph.Container) bool {
	if e.prog == nil {
		return true
	}
	e.runtime.Set("from", containerObject(from))
	e.runtime.Set("to", containerObject(to))
	val, err := e.runtime.RunProgram(e.prog)
	if err != nil {
		return false
	}
	return val.ToBoolean()
}

func containerObject(c *patchgraph.Container) map[string]any {
	return map[string]any{
		"id":   c.ID,
		"kind": c.Kind,
	}
}
