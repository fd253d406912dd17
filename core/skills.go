package core

import "errors"

// ErrFunctionNotFound is returned when a skill collection has no function
// registered under the requested skill / function pair.
var ErrFunctionNotFound = errors.New("function not found")

// SkillFunction describes an invocable function registered in a skill
// collection. How functions run is up to the orchestrator; the context only
// exposes the registry.
type SkillFunction interface {
	SkillName() string
	Name() string
	Description() string
}

// ReadOnlySkillCollection is the registry of functions borrowed by an
// ExecutionContext. Lookups are case-insensitive.
type ReadOnlySkillCollection interface {
	// Function returns the function or an error wrapping ErrFunctionNotFound.
	Function(skillName, functionName string) (SkillFunction, error)
	HasFunction(skillName, functionName string) bool
	// Functions lists the functions of one skill.
	Functions(skillName string) []SkillFunction
	AllFunctions() []SkillFunction
	Skills() []string
}
