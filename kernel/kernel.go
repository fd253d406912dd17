package kernel

import (
	"github.com/google/uuid"
	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/logging"
	"github.com/hupe1980/skcontext/memory"
	"github.com/hupe1980/skcontext/skill"
)

// Options configures a Kernel using the functional options pattern.
//
// Example:
//
//	k := kernel.New(func(o *kernel.Options) {
//	    o.Memory = memory.NewVolatileMemory()
//	    o.Variables = core.NewContextVariablesWithInput("hello")
//	})
type Options struct {
	// Variables are the defaults every context built from the kernel starts
	// with unless the builder overrides them. Copied at construction.
	Variables *core.ContextVariables

	// Memory defaults to memory.NullMemory when nil.
	Memory core.SemanticTextMemory

	// Skills defaults to an empty skill.Collection when nil.
	Skills *skill.Collection

	// Variant selects the context implementation handed out by NewContext.
	// Defaults to core.DefaultVariant.
	Variant core.Variant

	// Logger defaults to NoOpLogger when nil.
	Logger logging.Logger
}

// Kernel holds the shared collaborators of a set of pipelines.
type Kernel struct {
	id        string
	variables *core.ContextVariables
	memory    core.SemanticTextMemory
	skills    *skill.Collection
	variant   core.Variant
	logger    logging.Logger
}

// New creates a Kernel. Any unset collaborator gets an empty default.
func New(optFns ...func(o *Options)) *Kernel {
	opts := Options{
		Variant: core.DefaultVariant,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Memory == nil {
		opts.Memory = memory.NullMemory{}
	}

	if opts.Skills == nil {
		opts.Skills = skill.NewCollection()
	}

	if opts.Variant == "" {
		opts.Variant = core.DefaultVariant
	}

	id := uuid.NewString()

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	if kl, ok := logger.(*logging.KernelLogger); ok {
		logger = kl.WithKernelID(id)
	}

	k := &Kernel{
		id:        id,
		variables: opts.Variables.Clone(),
		memory:    opts.Memory,
		skills:    opts.Skills,
		variant:   opts.Variant,
		logger:    logger,
	}

	logger.Debug("kernel.created", "variables", k.variables.Len(), "variant", string(k.variant))

	return k
}

// ID returns the random identifier assigned at construction.
func (k *Kernel) ID() string { return k.id }

// Variables returns a copy of the default variables.
func (k *Kernel) Variables() *core.ContextVariables { return k.variables.Clone() }

// Memory returns the shared semantic memory.
func (k *Kernel) Memory() core.SemanticTextMemory { return k.memory }

// Skills returns the shared skill collection as a read-only view.
func (k *Kernel) Skills() core.ReadOnlySkillCollection { return k.skills }

// Logger returns the kernel logger.
func (k *Kernel) Logger() logging.Logger { return k.logger }

// Variant returns the context variant handed out by NewContext.
func (k *Kernel) Variant() core.Variant { return k.variant }

// RegisterFunctions adds functions to the skill collection. It stops at the
// first failure.
func (k *Kernel) RegisterFunctions(fns ...core.SkillFunction) error {
	for _, fn := range fns {
		if err := k.skills.AddFunction(fn); err != nil {
			return err
		}

		k.logger.Debug("kernel.function.registered", "skill", fn.SkillName(), "function", fn.Name())
	}

	return nil
}

// ContextBuilder returns a fresh builder preset with the kernel's variant.
// Pass the kernel to BuildFromKernel to fall back on its collaborators.
func (k *Kernel) ContextBuilder() *core.ContextBuilder {
	return core.NewContextBuilder().WithVariant(k.variant)
}

// NewContext builds a context entirely from the kernel's defaults.
func (k *Kernel) NewContext() core.ExecutionContext {
	return k.ContextBuilder().BuildFromKernel(k)
}

// NewContextWithInput builds a context from the kernel's defaults with
// "input" set to content.
func (k *Kernel) NewContextWithInput(content string) core.ExecutionContext {
	vars := k.Variables().Set(core.InputKey, content)
	return k.ContextBuilder().WithVariables(vars).BuildFromKernel(k)
}

var _ core.Kernel = (*Kernel)(nil)
