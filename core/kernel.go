package core

import "github.com/hupe1980/skcontext/logging"

// Kernel is the orchestrator view consulted by ContextBuilder.BuildFromKernel
// for whatever the builder was not told explicitly.
type Kernel interface {
	// Variables returns the kernel's default variables. Implementations
	// should return a copy; the builder clones it again regardless.
	Variables() *ContextVariables
	Memory() SemanticTextMemory
	Skills() ReadOnlySkillCollection
	Logger() logging.Logger
}
