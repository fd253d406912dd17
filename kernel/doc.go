// Package kernel provides the orchestrator that owns the default variables,
// semantic memory and skill collection execution contexts fall back to.
//
// A Kernel is immutable after construction apart from skill registration, and
// is safe for concurrent use: many pipelines may build contexts from the same
// kernel at once.
package kernel
