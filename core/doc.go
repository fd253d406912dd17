// Package core provides the execution context threaded through a pipeline of
// skill functions, and the builder that resolves it. It defines:
//
//   - ContextVariables, the ordered variable set with the reserved "input" key
//   - ExecutionContext / DefaultContext, the per-step state carrier
//   - ContextBuilder, resolving variables, memory and skills from explicit
//     overrides first and a Kernel second
//   - A registry of ContextConstructor keyed by Variant for custom contexts
//   - The collaborator interfaces a context borrows: SemanticTextMemory,
//     ReadOnlySkillCollection and Kernel
//
// Contexts and builders are plain data holders without locks; a context is
// meant to flow linearly through one pipeline. The borrowed collaborators are
// shared and must handle their own synchronization.
package core
