// Package basics holds the first lessons of the course: printing and the
// three binding states (immutable, mutable, shadowed).
//
// Every lesson here is deterministic: fixed values in, fixed text out. The
// exact lines are part of each lesson's contract and are asserted in the
// package tests.
package basics

import (
	"github.com/hbenali/golessons/lesson"
)

// Hello is the canonical first program: write one line and exit.
func Hello() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "hello",
		Title:   "Hello, World!",
		Summary: "The smallest possible program: print one line.",
		Topics:  []string{"printing"},
		Run:     runHello,
	}
}

func runHello(s lesson.Streams) error {
	p := lesson.NewPrinter(s.Out)
	p.Println("Hello, World!")
	return p.Err()
}
