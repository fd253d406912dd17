package skill

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/hupe1980/skcontext/core"
)

// ErrDuplicateFunction is returned when a skill / function pair is registered twice.
var ErrDuplicateFunction = errors.New("function already registered")

// GlobalSkill is the skill name used for functions registered without one.
const GlobalSkill = "_global_functions_"

// Collection is a thread-safe registry of skill functions keyed by
// case-insensitive skill and function names. It satisfies
// core.ReadOnlySkillCollection; contexts only ever see that read-only view.
type Collection struct {
	mu     sync.RWMutex
	skills map[string]map[string]core.SkillFunction // skill -> function -> fn
}

// NewCollection returns an empty registry.
func NewCollection() *Collection {
	return &Collection{skills: make(map[string]map[string]core.SkillFunction)}
}

// AddFunction registers fn. A function reporting an empty skill name lands in
// GlobalSkill.
func (c *Collection) AddFunction(fn core.SkillFunction) error {
	if fn == nil || fn.Name() == "" {
		return fmt.Errorf("function must have a name")
	}

	skillKey := normalize(fn.SkillName())
	fnKey := normalize(fn.Name())

	c.mu.Lock()
	defer c.mu.Unlock()

	fns, ok := c.skills[skillKey]
	if !ok {
		fns = make(map[string]core.SkillFunction)
		c.skills[skillKey] = fns
	}

	if _, exists := fns[fnKey]; exists {
		return fmt.Errorf("%w: %s.%s", ErrDuplicateFunction, skillKey, fnKey)
	}

	fns[fnKey] = fn

	return nil
}

// Function implements core.ReadOnlySkillCollection.
func (c *Collection) Function(skillName, functionName string) (core.SkillFunction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn, ok := c.skills[normalize(skillName)][normalize(functionName)]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", core.ErrFunctionNotFound, skillName, functionName)
	}

	return fn, nil
}

// HasFunction implements core.ReadOnlySkillCollection.
func (c *Collection) HasFunction(skillName, functionName string) bool {
	_, err := c.Function(skillName, functionName)
	return err == nil
}

// Functions implements core.ReadOnlySkillCollection. Results are sorted by name.
func (c *Collection) Functions(skillName string) []core.SkillFunction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedFunctions(c.skills[normalize(skillName)])
}

// AllFunctions implements core.ReadOnlySkillCollection. Results are sorted by
// skill, then function name.
func (c *Collection) AllFunctions() []core.SkillFunction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []core.SkillFunction
	for _, skillKey := range slices.Sorted(maps.Keys(c.skills)) {
		out = append(out, sortedFunctions(c.skills[skillKey])...)
	}

	return out
}

// Skills implements core.ReadOnlySkillCollection.
func (c *Collection) Skills() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.skills))
}

func sortedFunctions(fns map[string]core.SkillFunction) []core.SkillFunction {
	out := make([]core.SkillFunction, 0, len(fns))
	for _, k := range slices.Sorted(maps.Keys(fns)) {
		out = append(out, fns[k])
	}

	return out
}

func normalize(name string) string {
	if name == "" {
		return GlobalSkill
	}

	return strings.ToLower(name)
}

var _ core.ReadOnlySkillCollection = (*Collection)(nil)
