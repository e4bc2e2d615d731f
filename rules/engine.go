// Package rules decides when a skirmish is over. Conditions are expr-lang
// expressions evaluated against an Env built from the world each step.
package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Engine evaluates compiled end conditions in priority order.
type Engine struct {
	conditions []*Condition
}

// NewEngine compiles all conditions into expr bytecode and sorts by priority.
func NewEngine(conditions []*Condition) (*Engine, error) {
	compiled, err := compileConditions(conditions)
	if err != nil {
		return nil, err
	}
	return &Engine{conditions: compiled}, nil
}

// Evaluate returns the name of the highest priority condition that holds.
func (e *Engine) Evaluate(env Env) (string, bool) {
	for _, c := range e.conditions {
		result, err := vm.Run(c.program, env)
		if err != nil {
			slog.Warn("end condition error", "condition", c.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); ok && match {
			slog.Debug("end condition met", "condition", c.Name, "priority", c.Priority, "elapsed", env.Elapsed())
			return c.Name, true
		}
	}
	return "", false
}

// Names lists the conditions in evaluation order.
func (e *Engine) Names() []string {
	names := make([]string, len(e.conditions))
	for i, c := range e.conditions {
		names[i] = c.Name
	}
	return names
}

func compileConditions(conditions []*Condition) ([]*Condition, error) {
	out := make([]*Condition, 0, len(conditions))
	for _, c := range conditions {
		prog, err := expr.Compile(c.Src, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile condition %q: %w", c.Name, err)
		}
		cc := *c
		cc.program = prog
		out = append(out, &cc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}
