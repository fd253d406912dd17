package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// InputKey is the reserved variable holding the default execution result.
const InputKey = "input"

// ContextVariables is an ordered string → string mapping threaded through a
// pipeline of functions. Keys are case-insensitive and stored lower-cased.
// Overwriting a key keeps its original position.
//
// A nil *ContextVariables reads as an empty set. ContextVariables is not safe
// for concurrent mutation; it is owned by exactly one ExecutionContext.
type ContextVariables struct {
	vars *orderedmap.OrderedMap[string, string]
}

// NewContextVariables returns an empty variable set.
func NewContextVariables() *ContextVariables {
	return &ContextVariables{vars: orderedmap.New[string, string]()}
}

// NewContextVariablesWithInput returns a set whose "input" entry is content.
func NewContextVariablesWithInput(content string) *ContextVariables {
	return NewContextVariables().Set(InputKey, content)
}

// ContextVariablesFromMap creates a set from m. Go maps are unordered, so the
// entries are inserted in sorted key order.
func ContextVariablesFromMap(m map[string]string) *ContextVariables {
	cv := NewContextVariables()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		cv.Set(k, m[k])
	}

	return cv
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Get returns the value stored under key and whether it is present.
func (cv *ContextVariables) Get(key string) (string, bool) {
	if cv == nil || cv.vars == nil {
		return "", false
	}

	return cv.vars.Get(normalizeKey(key))
}

// Input returns the "input" entry.
func (cv *ContextVariables) Input() (string, bool) { return cv.Get(InputKey) }

// Set inserts or overwrites key (chainable).
func (cv *ContextVariables) Set(key, value string) *ContextVariables {
	cv.ensure()
	cv.vars.Set(normalizeKey(key), value)

	return cv
}

// Append concatenates value onto the entry at key. An absent key is treated as
// the empty string.
func (cv *ContextVariables) Append(key, value string) *ContextVariables {
	current, _ := cv.Get(key)
	return cv.Set(key, current+value)
}

// Delete removes key and reports whether it was present.
func (cv *ContextVariables) Delete(key string) bool {
	if cv == nil || cv.vars == nil {
		return false
	}

	_, ok := cv.vars.Delete(normalizeKey(key))

	return ok
}

// Len returns the number of entries.
func (cv *ContextVariables) Len() int {
	if cv == nil || cv.vars == nil {
		return 0
	}

	return cv.vars.Len()
}

// Keys returns the keys in insertion order.
func (cv *ContextVariables) Keys() []string {
	keys := make([]string, 0, cv.Len())
	cv.Range(func(k, _ string) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (cv *ContextVariables) Range(fn func(key, value string) bool) {
	if cv == nil || cv.vars == nil {
		return
	}

	for p := cv.vars.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Clone returns an independent copy preserving order.
func (cv *ContextVariables) Clone() *ContextVariables {
	c := NewContextVariables()
	cv.Range(func(k, v string) bool {
		c.vars.Set(k, v)
		return true
	})

	return c
}

// Merge copies every entry of other into cv. On collision the value from
// other wins; new keys are appended in other's order.
func (cv *ContextVariables) Merge(other *ContextVariables) *ContextVariables {
	cv.ensure()
	other.Range(func(k, v string) bool {
		cv.vars.Set(k, v)
		return true
	})

	return cv
}

// AsMap returns the entries as a plain map (order is lost).
func (cv *ContextVariables) AsMap() map[string]string {
	m := make(map[string]string, cv.Len())
	cv.Range(func(k, v string) bool {
		m[k] = v
		return true
	})

	return m
}

// Equal reports whether both sets hold the same entries. Order is ignored.
func (cv *ContextVariables) Equal(other *ContextVariables) bool {
	if cv.Len() != other.Len() {
		return false
	}

	equal := true
	cv.Range(func(k, v string) bool {
		ov, ok := other.Get(k)
		equal = ok && ov == v
		return equal
	})

	return equal
}

// String renders the set as {k1: v1, k2: v2} in insertion order.
func (cv *ContextVariables) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	cv.Range(func(k, v string) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %q", k, v)
		return true
	})
	b.WriteByte('}')

	return b.String()
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (cv *ContextVariables) MarshalJSON() ([]byte, error) {
	if cv == nil || cv.vars == nil {
		return []byte("{}"), nil
	}

	return cv.vars.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object of strings, keeping document order.
func (cv *ContextVariables) UnmarshalJSON(data []byte) error {
	decoded := orderedmap.New[string, string]()
	if err := decoded.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode context variables: %w", err)
	}

	cv.vars = orderedmap.New[string, string]()
	for p := decoded.Oldest(); p != nil; p = p.Next() {
		cv.vars.Set(normalizeKey(p.Key), p.Value)
	}

	return nil
}

// UnmarshalYAML decodes a YAML mapping of scalars, keeping document order.
func (cv *ContextVariables) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("decode context variables: expected mapping, got line %d", value.Line)
	}

	cv.vars = orderedmap.New[string, string]()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("decode context variables: value of %q must be a scalar (line %d)", k.Value, v.Line)
		}
		cv.vars.Set(normalizeKey(k.Value), v.Value)
	}

	return nil
}

func (cv *ContextVariables) ensure() {
	if cv.vars == nil {
		cv.vars = orderedmap.New[string, string]()
	}
}

var _ json.Marshaler = (*ContextVariables)(nil)
