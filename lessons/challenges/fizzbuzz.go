// Package challenges holds three classic beginner exercises with worked
// solutions: FizzBuzz, a password checker, and a running sum.
package challenges

import (
	"io"

	"github.com/hbenali/golessons/lesson"
)

// FizzBuzzTo writes the FizzBuzz sequence for 1..n to w, one line per number.
//
// Multiples of 15 print "FizzBuzz" and must be checked before the 3 and 5
// cases, or they would be swallowed by "Fizz".
func FizzBuzzTo(w io.Writer, n int) error {
	p := lesson.NewPrinter(w)
	for i := 1; i <= n; i++ {
		switch {
		case i%15 == 0:
			p.Println("FizzBuzz")
		case i%3 == 0:
			p.Println("Fizz")
		case i%5 == 0:
			p.Println("Buzz")
		default:
			p.Println(i)
		}
	}
	return p.Err()
}

// FizzBuzz is the classic 1..100 exercise as a course lesson.
func FizzBuzz() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "fizzbuzz",
		Title:   "FizzBuzz",
		Summary: "Loops and the modulo operator: the classic interview warm-up.",
		Topics:  []string{"loops", "branching"},
		Run: func(s lesson.Streams) error {
			return FizzBuzzTo(s.Out, 100)
		},
	}
}
