package skcontext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	k := New(func(o *kernel.Options) {
		o.Variables = core.NewContextVariables().Set("lang", "en")
	})

	ctx := NewContext(k, "hello")
	got, _ := ctx.Result()
	assert.Equal(t, "hello", got)
	lang, _ := ctx.Variables().Get("lang")
	assert.Equal(t, "en", lang)
}

func TestNewFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variables:\n  input: hello\nlogging:\n  level: error\n"), 0o600))

	k, err := NewFromConfigFile(path)
	require.NoError(t, err)

	ctx := k.NewContext()
	ctx.AppendToVariable(core.InputKey, " world")
	got, _ := ctx.Result()
	assert.Equal(t, "hello world", got)
}

func TestNewFromConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory:\n  provider: nope\n"), 0o600))

	_, err := NewFromConfigFile(path)
	assert.Error(t, err)
}
