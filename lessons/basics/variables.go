package basics

import (
	"github.com/hbenali/golessons/lesson"
)

// Variables demonstrates the three binding states:
//
//   - immutable: a const is bound once and can never be reassigned
//   - mutable: a var may be reassigned, but its type is fixed for life
//   - shadowed: a new declaration reuses the name; the old binding is
//     untouched, merely unreachable, and the new one may change type
//
// The printed lines are the lesson's contract; see variables_test.go.
func Variables() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "variables",
		Title:   "Variables, Mutability, and Shadowing",
		Summary: "Immutable bindings, mutable bindings, and shadowing.",
		Topics:  []string{"bindings", "mutability", "shadowing"},
		Run:     runVariables,
	}
}

func runVariables(s lesson.Streams) error {
	p := lesson.NewPrinter(s.Out)

	// Immutable binding. A const cannot be assigned to after declaration;
	// `x = 6` below it would not compile.
	const x = 5
	p.Println("The value of x is:", x)

	// Mutable binding. A var (or :=) may be reassigned any number of times,
	// but only with values of its declared type.
	y := 10
	p.Println("The value of y is:", y)

	y = 15
	p.Println("The new value of y is:", y)

	// Shadowing. Each inner-block := introduces a brand new binding that
	// reuses the name z. The right-hand side still reads the enclosing z,
	// so the chain evaluates (5+1)*2 = 12. The outer bindings are never
	// mutated; they just become unreachable inside the block.
	z := 5
	{
		z := z + 1
		{
			z := z * 2
			p.Println("The value of z is:", z)
		}
	}

	// Shadowing, unlike mutation, may change the type: the outer spaces is
	// a string, the inner one an int. The literal holds exactly three
	// spaces.
	spaces := "   "
	{
		spaces := len(spaces)
		p.Println("Number of spaces:", spaces)
	}

	return p.Err()
}
