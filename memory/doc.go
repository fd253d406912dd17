// Package memory contains concrete core.SemanticTextMemory implementations.
// The interface itself lives in the core package; depend on
// core.SemanticTextMemory in your code and select an implementation (null,
// volatile) at wiring time.
//
// Embedding backends plug into VolatileMemory through the Embedder interface;
// see the openai sub-package.
package memory
