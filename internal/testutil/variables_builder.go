package testutil

import (
	"github.com/hupe1980/skcontext/core"
)

// VariablesBuilder helps construct variable sets with fluent chaining.
// Example:
//
//	vars := NewVariablesBuilder().Input("hello").Var("lang", "en").Build()
type VariablesBuilder struct {
	pairs [][2]string
}

// NewVariablesBuilder creates an empty builder.
func NewVariablesBuilder() *VariablesBuilder {
	return &VariablesBuilder{}
}

// Input sets the "input" entry (chainable).
func (b *VariablesBuilder) Input(v string) *VariablesBuilder {
	return b.Var(core.InputKey, v)
}

// Var appends a key/value pair; later pairs overwrite earlier ones (chainable).
func (b *VariablesBuilder) Var(key, val string) *VariablesBuilder {
	b.pairs = append(b.pairs, [2]string{key, val})
	return b
}

// Build returns a *core.ContextVariables holding the pairs in order.
func (b *VariablesBuilder) Build() *core.ContextVariables {
	vars := core.NewContextVariables()

	for _, p := range b.pairs {
		vars.Set(p[0], p[1])
	}

	return vars
}
