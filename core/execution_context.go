package core

import "github.com/hupe1980/skcontext/logging"

// ExecutionContext is the per-step state carrier passed into and returned out
// of every function in a pipeline. It owns its variables and borrows the
// semantic memory and skill collection from the orchestrator.
//
// Mutators (SetVariable, AppendToVariable) change the receiver and return it
// for chaining; the return value can be discarded. Update and UpdateVariables
// never touch the receiver: they always return a new context that callers
// must use.
type ExecutionContext interface {
	// Result returns the "input" variable, or false if it was never set.
	Result() (string, bool)

	// Variables returns a copy of the variables. Changing the copy does not
	// affect the context.
	Variables() *ContextVariables

	// SemanticMemory returns the borrowed memory service, nil when absent.
	SemanticMemory() SemanticTextMemory

	// Skills returns the borrowed skill collection. Callers upstream treat a
	// context without skills as a usage error; the context itself does not.
	Skills() ReadOnlySkillCollection

	// Logger returns the logger resolved when the context was built.
	Logger() logging.Logger

	// Variant reports which registered constructor produced the context.
	Variant() Variant

	// SetVariable inserts or overwrites key. An empty key means "input".
	SetVariable(key, content string) ExecutionContext

	// AppendToVariable concatenates content onto key, treating an absent key
	// as empty. An empty key means "input".
	AppendToVariable(key, content string) ExecutionContext

	// Update returns a new context whose "input" is content.
	Update(content string) ExecutionContext

	// UpdateVariables returns a new context with newData merged over the
	// current variables.
	UpdateVariables(newData *ContextVariables) ExecutionContext

	// Copy returns a context with its own copy of the variables and the same
	// memory, skills and logger.
	Copy() ExecutionContext

	// Build materializes a context of the same variant from explicit parts.
	Build(variables *ContextVariables, memory SemanticTextMemory, skills ReadOnlySkillCollection) ExecutionContext
}

// DefaultContext is the stock ExecutionContext registered as DefaultVariant.
// Custom variants usually embed it and override what they need.
type DefaultContext struct {
	variables *ContextVariables
	memory    SemanticTextMemory
	skills    ReadOnlySkillCollection
	variant   Variant

	*loggerAdapter
}

// NewDefaultContext constructs a DefaultContext. The variables are cloned so
// the caller keeps ownership of what it passed in; nil means empty.
func NewDefaultContext(
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) *DefaultContext {
	return newDefaultContext(DefaultVariant, variables.Clone(), memory, skills, logger)
}

// NewDefaultContextFor is meant for ContextConstructor implementations of
// custom variants that embed *DefaultContext: the result reports v as its
// variant, so Copy, Update and Build on the embedding type go back through
// v's constructor. The variables are taken over without cloning.
func NewDefaultContextFor(
	v Variant,
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) *DefaultContext {
	return newDefaultContext(v, variables, memory, skills, logger)
}

func newDefaultContext(
	variant Variant,
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) *DefaultContext {
	if variables == nil {
		variables = NewContextVariables()
	}

	return &DefaultContext{
		variables:     variables,
		memory:        memory,
		skills:        skills,
		variant:       variant,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Result implements ExecutionContext.
func (c *DefaultContext) Result() (string, bool) { return c.variables.Input() }

// Variables implements ExecutionContext.
func (c *DefaultContext) Variables() *ContextVariables { return c.variables.Clone() }

// SemanticMemory implements ExecutionContext.
func (c *DefaultContext) SemanticMemory() SemanticTextMemory { return c.memory }

// Skills implements ExecutionContext.
func (c *DefaultContext) Skills() ReadOnlySkillCollection { return c.skills }

// Variant implements ExecutionContext.
func (c *DefaultContext) Variant() Variant { return c.variant }

// SetVariable implements ExecutionContext.
func (c *DefaultContext) SetVariable(key, content string) ExecutionContext {
	c.variables.Set(resolveKey(key), content)
	return c
}

// AppendToVariable implements ExecutionContext.
func (c *DefaultContext) AppendToVariable(key, content string) ExecutionContext {
	c.variables.Append(resolveKey(key), content)
	return c
}

// Update implements ExecutionContext.
func (c *DefaultContext) Update(content string) ExecutionContext {
	vars := c.variables.Clone().Set(InputKey, content)
	return c.rebuild(vars)
}

// UpdateVariables implements ExecutionContext.
func (c *DefaultContext) UpdateVariables(newData *ContextVariables) ExecutionContext {
	vars := c.variables.Clone().Merge(newData)
	return c.rebuild(vars)
}

// Copy implements ExecutionContext.
func (c *DefaultContext) Copy() ExecutionContext {
	return c.rebuild(c.variables.Clone())
}

// Build implements ExecutionContext.
func (c *DefaultContext) Build(
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
) ExecutionContext {
	return constructVariant(c.variant, variables.Clone(), memory, skills, c.Logger())
}

// rebuild produces a context of the same variant sharing collaborators.
func (c *DefaultContext) rebuild(vars *ContextVariables) ExecutionContext {
	return constructVariant(c.variant, vars, c.memory, c.skills, c.Logger())
}

func resolveKey(key string) string {
	if key == "" {
		return InputKey
	}

	return key
}

var _ ExecutionContext = (*DefaultContext)(nil)
