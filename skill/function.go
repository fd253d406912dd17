package skill

import (
	"fmt"
	"time"

	"github.com/hupe1980/skcontext/core"
)

// Parameter documents one variable a function reads from the context.
type Parameter struct {
	Name         string
	Description  string
	DefaultValue string
}

// NativeFunction exposes a Go function as a skill function. The function
// receives the execution context and returns the context the pipeline should
// continue with: either the same context after in-place mutation, or the
// result of Update / UpdateVariables.
//
// A NativeFunction has no mutable state after construction and is safe for
// concurrent use.
type NativeFunction struct {
	skillName   string
	name        string
	description string
	parameters  []Parameter
	fn          func(ctx core.ExecutionContext) (core.ExecutionContext, error)
}

// NewNativeFunction constructs a NativeFunction.
//
// Example:
//
//	upper := skill.NewNativeFunction("text", "uppercase", "Uppercase the input",
//	  func(ctx core.ExecutionContext) (core.ExecutionContext, error) {
//	    in, _ := ctx.Result()
//	    return ctx.Update(strings.ToUpper(in)), nil
//	  },
//	  skill.Parameter{Name: "input", Description: "Text to convert"},
//	)
func NewNativeFunction(
	skillName, name, description string,
	fn func(ctx core.ExecutionContext) (core.ExecutionContext, error),
	parameters ...Parameter,
) *NativeFunction {
	return &NativeFunction{
		skillName:   skillName,
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// SkillName implements core.SkillFunction.
func (f *NativeFunction) SkillName() string { return f.skillName }

// Name implements core.SkillFunction.
func (f *NativeFunction) Name() string { return f.name }

// Description implements core.SkillFunction.
func (f *NativeFunction) Description() string { return f.description }

// Parameters returns a copy of the declared parameters.
func (f *NativeFunction) Parameters() []Parameter {
	return append([]Parameter(nil), f.parameters...)
}

// Invoke runs the function against ctx. Declared parameters missing from the
// context are filled with their default values first. Errors come back as
// *FunctionError.
//
// Logging Fields:
//
//	skill, function: identity
//	duration_ms: execution time in milliseconds
func (f *NativeFunction) Invoke(ctx core.ExecutionContext) (core.ExecutionContext, error) {
	logger := ctx.Logger()
	start := time.Now()

	logger.Debug("skill.invoke.start", "skill", f.skillName, "function", f.name)

	vars := ctx.Variables()
	for _, p := range f.parameters {
		if _, ok := vars.Get(p.Name); !ok && p.DefaultValue != "" {
			ctx.SetVariable(p.Name, p.DefaultValue)
		}
	}

	out, err := f.fn(ctx)
	if err != nil {
		logger.Error("skill.invoke.error", "skill", f.skillName, "function", f.name, "error", err.Error())

		return ctx, &FunctionError{Skill: f.skillName, Function: f.name, Err: err}
	}

	if out == nil {
		out = ctx
	}

	logger.Debug("skill.invoke.success", "skill", f.skillName, "function", f.name, "duration_ms", time.Since(start).Milliseconds())

	return out, nil
}

// FunctionError wraps a failure raised by a skill function.
type FunctionError struct {
	Skill    string
	Function string
	Err      error
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("function %s.%s: %v", e.Skill, e.Function, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *FunctionError) Unwrap() error { return e.Err }

var _ core.SkillFunction = (*NativeFunction)(nil)
