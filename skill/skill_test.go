package skill

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hupe1980/skcontext/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upperFunction() *NativeFunction {
	return NewNativeFunction("Text", "Uppercase", "Uppercase the input",
		func(ctx core.ExecutionContext) (core.ExecutionContext, error) {
			in, _ := ctx.Result()
			return ctx.Update(strings.ToUpper(in)), nil
		},
		Parameter{Name: "input", Description: "Text to convert"},
	)
}

// -------------------- Collection Tests --------------------

func TestCollection_CaseInsensitiveLookup(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.AddFunction(upperFunction()))

	fn, err := c.Function("TEXT", "uppercase")
	require.NoError(t, err)
	assert.Equal(t, "Uppercase", fn.Name())
	assert.True(t, c.HasFunction("text", "UPPERCASE"))
	assert.False(t, c.HasFunction("text", "lowercase"))
}

func TestCollection_NotFound(t *testing.T) {
	c := NewCollection()
	_, err := c.Function("text", "missing")
	assert.True(t, errors.Is(err, core.ErrFunctionNotFound))
}

func TestCollection_Duplicate(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.AddFunction(upperFunction()))
	err := c.AddFunction(upperFunction())
	assert.ErrorIs(t, err, ErrDuplicateFunction)
}

func TestCollection_RejectsUnnamed(t *testing.T) {
	c := NewCollection()
	assert.Error(t, c.AddFunction(nil))
	assert.Error(t, c.AddFunction(NewNativeFunction("s", "", "", nil)))
}

func TestCollection_GlobalSkill(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.AddFunction(NewNativeFunction("", "echo", "", nil)))
	assert.True(t, c.HasFunction(GlobalSkill, "echo"))
	assert.True(t, c.HasFunction("", "echo"))
}

func TestCollection_Listing(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.AddFunction(NewNativeFunction("b", "two", "", nil)))
	require.NoError(t, c.AddFunction(NewNativeFunction("b", "one", "", nil)))
	require.NoError(t, c.AddFunction(NewNativeFunction("a", "three", "", nil)))

	assert.Equal(t, []string{"a", "b"}, c.Skills())

	names := []string{}
	for _, fn := range c.Functions("B") {
		names = append(names, fn.Name())
	}
	assert.Equal(t, []string{"one", "two"}, names)

	all := []string{}
	for _, fn := range c.AllFunctions() {
		all = append(all, fn.SkillName()+"."+fn.Name())
	}
	assert.Equal(t, []string{"a.three", "b.one", "b.two"}, all)
	assert.Empty(t, c.Functions("unknown"))
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := NewCollection()
	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.AddFunction(NewNativeFunction("s", string(rune('a'+i)), "", nil))
			_ = c.AllFunctions()
			_ = c.HasFunction("s", "a")
		}(i)
	}
	wg.Wait()
	assert.Len(t, c.Functions("s"), 20)
}

// -------------------- NativeFunction Tests --------------------

func TestNativeFunction_InvokeUsesUpdateResult(t *testing.T) {
	ctx := core.NewContextBuilder().
		WithVariables(core.NewContextVariablesWithInput("hello")).
		Build()

	out, err := upperFunction().Invoke(ctx)
	require.NoError(t, err)

	got, _ := out.Result()
	assert.Equal(t, "HELLO", got)
	orig, _ := ctx.Result()
	assert.Equal(t, "hello", orig, "Update must leave the input context untouched")
}

func TestNativeFunction_DefaultParameters(t *testing.T) {
	fn := NewNativeFunction("greet", "hello", "",
		func(ctx core.ExecutionContext) (core.ExecutionContext, error) {
			name, _ := ctx.Variables().Get("name")
			return ctx.SetVariable("", "hello "+name), nil
		},
		Parameter{Name: "name", DefaultValue: "world"},
	)

	out, err := fn.Invoke(core.NewContextBuilder().Build())
	require.NoError(t, err)
	got, _ := out.Result()
	assert.Equal(t, "hello world", got)

	out, err = fn.Invoke(core.NewContextBuilder().
		WithVariables(core.NewContextVariables().Set("name", "gopher")).Build())
	require.NoError(t, err)
	got, _ = out.Result()
	assert.Equal(t, "hello gopher", got)
}

func TestNativeFunction_ErrorWrapping(t *testing.T) {
	boom := errors.New("boom")
	fn := NewNativeFunction("s", "fail", "", func(core.ExecutionContext) (core.ExecutionContext, error) {
		return nil, boom
	})

	ctx := core.NewContextBuilder().Build()
	out, err := fn.Invoke(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var fnErr *FunctionError
	require.ErrorAs(t, err, &fnErr)
	assert.Equal(t, "fail", fnErr.Function)
	assert.Equal(t, ctx, out)
}

func TestNativeFunction_NilResultKeepsContext(t *testing.T) {
	fn := NewNativeFunction("s", "noop", "", func(ctx core.ExecutionContext) (core.ExecutionContext, error) {
		ctx.SetVariable("touched", "yes")
		return nil, nil
	})
	ctx := core.NewContextBuilder().Build()
	out, err := fn.Invoke(ctx)
	require.NoError(t, err)
	assert.Same(t, ctx, out)
}

func TestNativeFunction_ParametersCopy(t *testing.T) {
	fn := upperFunction()
	ps := fn.Parameters()
	ps[0].Name = "changed"
	assert.Equal(t, "input", fn.Parameters()[0].Name)
}
