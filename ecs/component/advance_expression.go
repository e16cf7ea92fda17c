package component

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

const advanceResultVar = "__advance"

// AdvanceExpression is a tengo boolean expression guarding an automatic
// transition, e.g. `grounded && speed > 0.1`.
type AdvanceExpression struct {
	Source   string
	compiled *tengo.Compiled
}

// CompileAdvanceExpression compiles src. Every name in params becomes a
// variable the expression may read.
func CompileAdvanceExpression(src string, params map[string]any) (*AdvanceExpression, error) {
	script := tengo.NewScript([]byte(advanceResultVar + " := (" + src + ")"))
	for name, v := range params {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("advance expression %q: parameter %q: %w", src, name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("advance expression %q: %w", src, err)
	}
	return &AdvanceExpression{Source: src, compiled: compiled}, nil
}

// Eval runs the expression against params. Unknown parameters are ignored.
func (x *AdvanceExpression) Eval(params map[string]any) (bool, error) {
	if x == nil || x.compiled == nil {
		return true, nil
	}
	c := x.compiled.Clone()
	for name, v := range params {
		if !c.IsDefined(name) {
			continue
		}
		if err := c.Set(name, v); err != nil {
			return false, fmt.Errorf("advance expression %q: set %q: %w", x.Source, name, err)
		}
	}
	if err := c.Run(); err != nil {
		return false, fmt.Errorf("advance expression %q: %w", x.Source, err)
	}
	return c.Get(advanceResultVar).Bool(), nil
}
