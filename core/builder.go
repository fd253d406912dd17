package core

import (
	"fmt"

	"github.com/hupe1980/skcontext/logging"
)

// ContextBuilder resolves an ExecutionContext from partial input. Anything
// recorded with a With* method wins; whatever is left unset is taken from the
// kernel passed to BuildFromKernel, or left empty by Build.
//
// A builder may be reused for several builds: every built context receives
// its own copy of the pending variables. It is not safe for concurrent use.
//
// Example:
//
//	ctx := core.NewContextBuilder().
//	    WithVariables(core.NewContextVariablesWithInput("hello")).
//	    BuildFromKernel(k)
type ContextBuilder struct {
	variables *ContextVariables
	memory    SemanticTextMemory
	skills    ReadOnlySkillCollection
	logger    logging.Logger
	variant   Variant
}

// NewContextBuilder returns a builder with nothing recorded.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// WithVariables records the variables to use (cloned). Nil resets the
// override so the fallback source is consulted again.
func (b *ContextBuilder) WithVariables(variables *ContextVariables) *ContextBuilder {
	if variables == nil {
		b.variables = nil
		return b
	}

	b.variables = variables.Clone()

	return b
}

// WithMemory records the semantic memory. A nil argument is ignored and does
// not clear an earlier override.
func (b *ContextBuilder) WithMemory(memory SemanticTextMemory) *ContextBuilder {
	if memory != nil {
		b.memory = memory
	}

	return b
}

// WithSkills records the skill collection. A nil argument is ignored and does
// not clear an earlier override.
func (b *ContextBuilder) WithSkills(skills ReadOnlySkillCollection) *ContextBuilder {
	if skills != nil {
		b.skills = skills
	}

	return b
}

// WithLogger records the logger. A nil argument is ignored.
func (b *ContextBuilder) WithLogger(logger logging.Logger) *ContextBuilder {
	if logger != nil {
		b.logger = logger
	}

	return b
}

// WithVariant selects the context implementation used by Build and
// BuildFromKernel. An empty variant is ignored. An unregistered variant makes
// those methods fall back to DefaultVariant; use BuildVariant to get an error
// instead.
func (b *ContextBuilder) WithVariant(v Variant) *ContextBuilder {
	if v != "" {
		b.variant = v
	}

	return b
}

// Clone seeds the builder from ctx: its variables (copied), memory, skills,
// logger and variant. A nil ctx is ignored.
func (b *ContextBuilder) Clone(ctx ExecutionContext) *ContextBuilder {
	if ctx == nil {
		return b
	}

	b.variables = ctx.Variables()
	b.memory = ctx.SemanticMemory()
	b.skills = ctx.Skills()
	b.logger = ctx.Logger()
	b.variant = ctx.Variant()

	return b
}

// Build creates a context from the recorded overrides only. Unset parts stay
// empty: no variables, no memory, no skills.
func (b *ContextBuilder) Build() ExecutionContext {
	return b.construct(b.resolvedVariant(), b.variables, b.memory, b.skills, b.logger)
}

// BuildWithSkills is shorthand for WithSkills(skills).Build().
func (b *ContextBuilder) BuildWithSkills(skills ReadOnlySkillCollection) ExecutionContext {
	return b.WithSkills(skills).Build()
}

// BuildFromKernel creates a context taking every part that was not recorded
// from k. Recorded overrides always win. A nil kernel behaves like Build.
func (b *ContextBuilder) BuildFromKernel(k Kernel) ExecutionContext {
	if k == nil {
		return b.Build()
	}

	variables := b.variables
	if variables == nil {
		variables = k.Variables()
	}

	memory := b.memory
	if memory == nil {
		memory = k.Memory()
	}

	skills := b.skills
	if skills == nil {
		skills = k.Skills()
	}

	logger := b.logger
	if logger == nil {
		logger = k.Logger()
	}

	return b.construct(b.resolvedVariant(), variables, memory, skills, logger)
}

// BuildVariant creates a context of the given variant from the recorded
// overrides. It fails with ErrUnknownVariant when v is not registered.
func (b *ContextBuilder) BuildVariant(v Variant) (ExecutionContext, error) {
	if _, ok := lookupVariant(v); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}

	return b.construct(v, b.variables, b.memory, b.skills, b.logger), nil
}

func (b *ContextBuilder) resolvedVariant() Variant {
	if b.variant == "" {
		return DefaultVariant
	}

	return b.variant
}

func (b *ContextBuilder) construct(
	v Variant,
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) ExecutionContext {
	ctx := constructVariant(v, variables.Clone(), memory, skills, logger)

	newLoggerAdapter(logger).logDebug("context.build",
		"variant", string(ctx.Variant()),
		"variables", variables.Len(),
		"has_memory", memory != nil,
		"has_skills", skills != nil,
	)

	return ctx
}
