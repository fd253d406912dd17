package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/hupe1980/skcontext/logging"
)

var (
	// ErrUnknownVariant is returned when no constructor is registered for the
	// requested context variant.
	ErrUnknownVariant = errors.New("unknown context variant")

	// ErrInvalidVariant is returned by RegisterVariant for an empty name, a nil
	// constructor or a name that is already taken.
	ErrInvalidVariant = errors.New("invalid context variant")
)

// Variant names a concrete ExecutionContext implementation.
type Variant string

// DefaultVariant produces *DefaultContext.
const DefaultVariant Variant = "default"

// ContextConstructor creates a context of one variant. It receives variables
// it may keep without cloning, and a non-nil logger.
type ContextConstructor func(
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) ExecutionContext

var (
	variantsMu sync.RWMutex
	variants   = map[Variant]ContextConstructor{
		DefaultVariant: func(v *ContextVariables, m SemanticTextMemory, s ReadOnlySkillCollection, l logging.Logger) ExecutionContext {
			return newDefaultContext(DefaultVariant, v, m, s, l)
		},
	}
)

// RegisterVariant makes a context implementation available to
// ContextBuilder.BuildVariant and ContextBuilder.WithVariant.
func RegisterVariant(v Variant, ctor ContextConstructor) error {
	if v == "" || ctor == nil {
		return fmt.Errorf("%w: empty name or nil constructor", ErrInvalidVariant)
	}

	variantsMu.Lock()
	defer variantsMu.Unlock()

	if _, exists := variants[v]; exists {
		return fmt.Errorf("%w: %q already registered", ErrInvalidVariant, v)
	}

	variants[v] = ctor

	return nil
}

// Variants lists the registered variant names in sorted order.
func Variants() []Variant {
	variantsMu.RLock()
	defer variantsMu.RUnlock()

	return slices.Sorted(maps.Keys(variants))
}

func lookupVariant(v Variant) (ContextConstructor, bool) {
	variantsMu.RLock()
	defer variantsMu.RUnlock()

	ctor, ok := variants[v]

	return ctor, ok
}

// constructVariant builds a context of variant v, falling back to the default
// variant when v is no longer registered.
func constructVariant(
	v Variant,
	variables *ContextVariables,
	memory SemanticTextMemory,
	skills ReadOnlySkillCollection,
	logger logging.Logger,
) ExecutionContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	if variables == nil {
		variables = NewContextVariables()
	}

	ctor, ok := lookupVariant(v)
	if !ok {
		logger.Debug("context.variant.fallback", "variant", string(v))
		return newDefaultContext(DefaultVariant, variables, memory, skills, logger)
	}

	return ctor(variables, memory, skills, logger)
}
