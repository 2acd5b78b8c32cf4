package challenges_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hbenali/golessons/lesson"
	"github.com/hbenali/golessons/lessons/challenges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToString(t *testing.T, l *lesson.Lesson) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, l.Run(lesson.Streams{Out: &out}))
	return out.String()
}

// FizzBuzz
func TestFizzBuzzTo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, challenges.FizzBuzzTo(&out, 100))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 100)

	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "2", lines[1])
	assert.Equal(t, "Fizz", lines[2])
	assert.Equal(t, "Buzz", lines[4])
	assert.Equal(t, "Fizz", lines[8])
	assert.Equal(t, "Buzz", lines[9])
	assert.Equal(t, "FizzBuzz", lines[14])
	assert.Equal(t, "FizzBuzz", lines[89])
	assert.Equal(t, "Buzz", lines[99])
}

func TestFizzBuzzTo_CountsMatch(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, challenges.FizzBuzzTo(&out, 100))
	s := out.String()

	// 1..100: 6 multiples of 15; 33 of 3 minus those; 20 of 5 minus those.
	assert.Equal(t, 6, strings.Count(s, "FizzBuzz"))
	assert.Equal(t, 33, strings.Count(s, "Fizz")) // includes FizzBuzz lines
	assert.Equal(t, 20, strings.Count(s, "Buzz")) // includes FizzBuzz lines
}

func TestFizzBuzzTo_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, challenges.FizzBuzzTo(&out, 0))
	assert.Empty(t, out.String())
}

// Password checker
func TestCheckPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		pw    string
		want  challenges.Report
		valid bool
	}{
		{"valid", "Password123", challenges.Report{HasMinLength: true, HasUppercase: true, HasNumber: true}, true},
		{"too short", "Ab1", challenges.Report{HasUppercase: true, HasNumber: true}, false},
		{"no uppercase or number", "longpassword", challenges.Report{HasMinLength: true}, false},
		{"no number", "LongPassword", challenges.Report{HasMinLength: true, HasUppercase: true}, false},
		{"no uppercase", "password123", challenges.Report{HasMinLength: true, HasNumber: true}, false},
		{"empty", "", challenges.Report{}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := challenges.CheckPassword(tc.pw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.valid, got.Valid())
		})
	}
}

func TestPassword_LessonOutput(t *testing.T) {
	t.Parallel()

	out := runToString(t, challenges.Password())

	assert.Contains(t, out, "Checking password: 'Password123'")
	assert.Equal(t, 1, strings.Count(out, "-> Password is valid."))
	assert.Equal(t, 4, strings.Count(out, "-> Password is NOT valid. Issues found:"))
	assert.Equal(t, 1, strings.Count(out, "- Must be at least 8 characters long."))
	assert.Equal(t, 2, strings.Count(out, "- Must contain at least one uppercase letter."))
	assert.Equal(t, 2, strings.Count(out, "- Must contain at least one number."))
}

// Sum
func TestSumTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5050, challenges.SumTo(100))
	assert.Equal(t, 55, challenges.SumTo(10))
	assert.Equal(t, 1, challenges.SumTo(1))
	assert.Equal(t, 0, challenges.SumTo(0))
	assert.Equal(t, 0, challenges.SumTo(-5))
}

func TestSum_LessonOutput(t *testing.T) {
	t.Parallel()

	out := runToString(t, challenges.Sum())
	want := "The sum of numbers from 1 to 100 is: 5050\n" +
		"The sum of numbers from 1 to 10 is: 55\n"
	assert.Equal(t, want, out)
}

func TestChallengeLessonsAreValid(t *testing.T) {
	t.Parallel()

	for _, l := range []*lesson.Lesson{
		challenges.FizzBuzz(),
		challenges.Password(),
		challenges.Sum(),
	} {
		require.NoError(t, l.Validate(), l.Slug)
	}
}
