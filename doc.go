// Package golessons is a small, executable introduction to Go's binding
// semantics: declaration, mutability, and shadowing.
//
// Instead of a loose folder of snippets, the course is organized as a
// progression of runnable lessons:
//
//   - hello: the smallest possible program (one println)
//   - variables: immutable bindings, mutable bindings, and shadowing
//   - guess: a number guessing game (loops, input, conversions)
//   - fizzbuzz / password / sum: three beginner challenges
//
// The goal is to keep every lesson deterministic and testable: lessons write
// to an explicit output stream, never to os.Stdout directly, so the exact
// printed text is asserted byte-for-byte in the test suite.
//
// See subpackages:
//   - lesson: the lesson type, registry, runner, and curriculum loader
//   - lessons/*: the lesson content itself
//   - cmd/golessons: CLI to list, run, and verify the curriculum
//   - examples/*: one standalone main per lesson group, for running lessons
//     without the CLI
package golessons
