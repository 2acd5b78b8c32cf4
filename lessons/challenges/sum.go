package challenges

import (
	"github.com/hbenali/golessons/lesson"
)

// SumTo returns the sum of the integers 1..n. For n < 1 the sum is 0.
func SumTo(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}

// Sum prints the running-sum exercise for two inputs.
func Sum() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "sum",
		Title:   "Sum of Numbers",
		Summary: "Accumulate a value across loop iterations.",
		Topics:  []string{"loops", "arithmetic"},
		Run: func(s lesson.Streams) error {
			p := lesson.NewPrinter(s.Out)
			for _, n := range []int{100, 10} {
				p.Printf("The sum of numbers from 1 to %d is: %d\n", n, SumTo(n))
			}
			return p.Err()
		},
	}
}
