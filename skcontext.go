// Package skcontext provides a high-level façade over the kernel and the
// execution context it hands to pipeline steps. Most applications interact
// with this package by:
//  1. Creating a kernel via New() or NewFromConfigFile()
//  2. Registering skill functions on it
//  3. Building an ExecutionContext per pipeline run and threading it through
//     each step
//
// Defaults (null memory, empty skill collection, no-op logger) are safe for
// local development and testing; production deployments typically supply a
// semantic memory backed by embeddings and a structured logger.
package skcontext

import (
	"os"

	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/kernel"
)

// New creates a kernel with optional overrides. Any unset collaborator is
// initialized with an empty default.
func New(optFns ...func(o *kernel.Options)) *kernel.Kernel {
	return kernel.New(optFns...)
}

// NewFromConfigFile loads a YAML kernel config from path (defaults when the
// file is missing) and creates a kernel logging to stderr.
func NewFromConfigFile(path string, optFns ...func(o *kernel.Options)) (*kernel.Kernel, error) {
	cfg, err := kernel.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return kernel.NewFromConfig(cfg, os.Stderr, optFns...)
}

// NewContext is shorthand for building a context from k's defaults with
// "input" set to content.
func NewContext(k *kernel.Kernel, content string) core.ExecutionContext {
	return k.NewContextWithInput(content)
}
