package core

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestContextVariables_AbsentVersusEmpty(t *testing.T) {
	cv := NewContextVariables()
	if _, ok := cv.Get("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}
	cv.Set("empty", "")
	v, ok := cv.Get("empty")
	if !ok || v != "" {
		t.Fatalf("expected present empty value, got %q (present=%v)", v, ok)
	}
}

func TestContextVariables_CaseInsensitiveKeys(t *testing.T) {
	cv := NewContextVariables().Set("City", "Berlin")
	v, ok := cv.Get("CITY")
	if !ok || v != "Berlin" {
		t.Fatalf("expected case-insensitive lookup, got %q", v)
	}
	cv.Set("city", "Paris")
	if cv.Len() != 1 {
		t.Fatalf("expected keys to collapse, got %d entries", cv.Len())
	}
}

func TestContextVariables_OrderPreservedOnOverwrite(t *testing.T) {
	cv := NewContextVariables().Set("a", "1").Set("b", "2").Set("c", "3")
	cv.Set("a", "10")
	keys := cv.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, keys)
		}
	}
}

func TestContextVariables_Append(t *testing.T) {
	cv := NewContextVariables()
	cv.Append("log", "x")
	cv.Append("log", "y")
	if v, _ := cv.Get("log"); v != "xy" {
		t.Fatalf("expected xy, got %q", v)
	}
}

func TestContextVariables_MergeOtherWins(t *testing.T) {
	cv := NewContextVariables().Set("a", "1").Set("b", "2")
	cv.Merge(NewContextVariables().Set("b", "3").Set("c", "4"))
	want := map[string]string{"a": "1", "b": "3", "c": "4"}
	if !cv.Equal(ContextVariablesFromMap(want)) {
		t.Fatalf("unexpected merge result: %s", cv)
	}
	if keys := cv.Keys(); keys[2] != "c" {
		t.Fatalf("expected new key appended last, got %v", keys)
	}
}

func TestContextVariables_CloneIsIndependent(t *testing.T) {
	cv := NewContextVariablesWithInput("hello")
	clone := cv.Clone()
	clone.Set(InputKey, "changed")
	clone.Set("extra", "1")
	if v, _ := cv.Input(); v != "hello" {
		t.Fatalf("original changed through clone: %q", v)
	}
	if _, ok := cv.Get("extra"); ok {
		t.Fatal("original gained clone's key")
	}
}

func TestContextVariables_NilReadsAsEmpty(t *testing.T) {
	var cv *ContextVariables
	if cv.Len() != 0 || len(cv.Keys()) != 0 {
		t.Fatal("nil set should be empty")
	}
	if _, ok := cv.Input(); ok {
		t.Fatal("nil set has no input")
	}
	if cv.Clone().Len() != 0 {
		t.Fatal("clone of nil should be empty")
	}
	if cv.Delete("x") {
		t.Fatal("delete on nil should report false")
	}
}

func TestContextVariables_Delete(t *testing.T) {
	cv := NewContextVariables().Set("a", "1")
	if !cv.Delete("A") {
		t.Fatal("expected delete to report presence")
	}
	if _, ok := cv.Get("a"); ok {
		t.Fatal("key should be gone")
	}
}

func TestContextVariables_JSONRoundTripKeepsOrder(t *testing.T) {
	cv := NewContextVariables().Set("z", "1").Set("a", "2")
	data, err := json.Marshal(cv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"z":"1","a":"2"}` {
		t.Fatalf("unexpected json %s", data)
	}

	var decoded ContextVariables
	if err := json.Unmarshal([]byte(`{"Z":"1","a":"2"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if keys := decoded.Keys(); len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Fatalf("unexpected decoded keys %v", keys)
	}
}

func TestContextVariables_YAMLKeepsDocumentOrder(t *testing.T) {
	var holder struct {
		Variables *ContextVariables `yaml:"variables"`
	}
	doc := "variables:\n  input: hello\n  Style: terse\n  count: 3\n"
	if err := yaml.Unmarshal([]byte(doc), &holder); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := holder.Variables.Keys()
	if len(keys) != 3 || keys[0] != "input" || keys[1] != "style" || keys[2] != "count" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if v, _ := holder.Variables.Get("count"); v != "3" {
		t.Fatalf("expected scalar kept as text, got %q", v)
	}
}

func TestContextVariables_YAMLRejectsNestedValues(t *testing.T) {
	var holder struct {
		Variables *ContextVariables `yaml:"variables"`
	}
	doc := "variables:\n  input:\n    nested: true\n"
	if err := yaml.Unmarshal([]byte(doc), &holder); err == nil {
		t.Fatal("expected error for nested mapping")
	}
}

func TestContextVariables_String(t *testing.T) {
	cv := NewContextVariables().Set("a", "1").Set("b", "x y")
	if got := cv.String(); got != `{a: "1", b: "x y"}` {
		t.Fatalf("unexpected String(): %s", got)
	}
}
