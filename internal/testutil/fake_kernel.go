package testutil

import (
	"context"

	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/logging"
)

// FakeKernel is a static core.Kernel. Variables returns a copy of Vars on
// every call and counts how often it was consulted.
type FakeKernel struct {
	Vars         *core.ContextVariables
	Mem          core.SemanticTextMemory
	SkillSet     core.ReadOnlySkillCollection
	Log          logging.Logger
	VarsRequests int
}

// Variables implements core.Kernel.
func (k *FakeKernel) Variables() *core.ContextVariables {
	k.VarsRequests++
	return k.Vars.Clone()
}

// Memory implements core.Kernel.
func (k *FakeKernel) Memory() core.SemanticTextMemory { return k.Mem }

// Skills implements core.Kernel.
func (k *FakeKernel) Skills() core.ReadOnlySkillCollection { return k.SkillSet }

// Logger implements core.Kernel.
func (k *FakeKernel) Logger() logging.Logger { return k.Log }

// StubMemory is a core.SemanticTextMemory that remembers nothing. Name makes
// instances distinguishable in identity assertions.
type StubMemory struct {
	Name string
}

// SaveInformation implements core.SemanticTextMemory.
func (m *StubMemory) SaveInformation(_ context.Context, _, _, id, _, _ string) (string, error) {
	return id, nil
}

// SaveReference implements core.SemanticTextMemory.
func (m *StubMemory) SaveReference(_ context.Context, _, _, externalID, _, _, _ string) (string, error) {
	return externalID, nil
}

// Get implements core.SemanticTextMemory.
func (m *StubMemory) Get(context.Context, string, string) (*core.MemoryQueryResult, error) {
	return nil, nil
}

// Remove implements core.SemanticTextMemory.
func (m *StubMemory) Remove(context.Context, string, string) error { return nil }

// Search implements core.SemanticTextMemory.
func (m *StubMemory) Search(context.Context, string, string, int, float64) ([]core.MemoryQueryResult, error) {
	return []core.MemoryQueryResult{}, nil
}

// Collections implements core.SemanticTextMemory.
func (m *StubMemory) Collections(context.Context) ([]string, error) { return []string{}, nil }

// StubSkills is an empty core.ReadOnlySkillCollection.
type StubSkills struct {
	Name string
}

// Function implements core.ReadOnlySkillCollection.
func (s *StubSkills) Function(string, string) (core.SkillFunction, error) {
	return nil, core.ErrFunctionNotFound
}

// HasFunction implements core.ReadOnlySkillCollection.
func (s *StubSkills) HasFunction(string, string) bool { return false }

// Functions implements core.ReadOnlySkillCollection.
func (s *StubSkills) Functions(string) []core.SkillFunction { return nil }

// AllFunctions implements core.ReadOnlySkillCollection.
func (s *StubSkills) AllFunctions() []core.SkillFunction { return nil }

// Skills implements core.ReadOnlySkillCollection.
func (s *StubSkills) Skills() []string { return nil }

var (
	_ core.Kernel                  = (*FakeKernel)(nil)
	_ core.SemanticTextMemory      = (*StubMemory)(nil)
	_ core.ReadOnlySkillCollection = (*StubSkills)(nil)
)
