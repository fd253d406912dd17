// Package skill implements the in-memory skill registry handed to execution
// contexts as a core.ReadOnlySkillCollection, plus NativeFunction, a plain Go
// function exposed as a skill function.
package skill
