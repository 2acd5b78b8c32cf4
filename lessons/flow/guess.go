// Package flow teaches control flow through a number guessing game: a loop,
// conditional branches, console input, and string-to-int conversion.
package flow

import (
	"bufio"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/hbenali/golessons/lesson"
)

var (
	// ErrInputClosed is returned when the input stream ends mid-game.
	ErrInputClosed = errors.New("flow: input closed before the game ended")

	// ErrSecretOutOfRange is returned when a Game is configured with a
	// secret outside [1, 100].
	ErrSecretOutOfRange = errors.New("flow: secret must be in [1, 100]")

	// ErrNoTries is returned when a Game is configured with MaxTries < 1.
	ErrNoTries = errors.New("flow: max tries must be at least 1")
)

// Game is one round of the guessing game.
//
// The secret is a field, not a hidden global, so tests fix it and script the
// player's input. An invalid guess line still consumes a try, matching the
// lesson text ("you have N tries", not "N valid tries").
type Game struct {
	Secret   int
	MaxTries int
}

// NewGame returns a game with the given secret and the standard 10 tries.
func NewGame(secret int) *Game {
	return &Game{Secret: secret, MaxTries: 10}
}

// Play runs the game over the lesson streams until the player wins, loses,
// or the input ends.
func (g *Game) Play(s lesson.Streams) error {
	if g.Secret < 1 || g.Secret > 100 {
		return ErrSecretOutOfRange
	}
	if g.MaxTries < 1 {
		return ErrNoTries
	}

	p := lesson.NewPrinter(s.Out)
	p.Println("I've chosen a random number between 1 and 100.")
	p.Printf("Can you guess it? You have %d tries.\n", g.MaxTries)

	scanner := bufio.NewScanner(s.In)
	for try := 1; try <= g.MaxTries; try++ {
		p.Printf("Guess #%d (You have %d guesses left): ", try, g.MaxTries+1-try)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return ErrInputClosed
		}

		guess, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			p.Println("Invalid input. Please enter a number.")
			continue
		}

		switch {
		case guess < g.Secret:
			p.Println("Oops. Your guess was LOW.")
		case guess > g.Secret:
			p.Println("Oops. Your guess was HIGH.")
		default:
			p.Println("Good job! You guessed it!")
			return p.Err()
		}
	}

	p.Println("Sorry, you didn't guess my number. It was:", g.Secret)
	return p.Err()
}

// Guess wraps the game as a course lesson, drawing the secret from a locally
// seeded generator so no global random state leaks between lessons.
func Guess() *lesson.Lesson {
	return &lesson.Lesson{
		Slug:    "guess",
		Title:   "The Guessing Game",
		Summary: "Loops, branching, and reading input: guess a number in 10 tries.",
		Topics:  []string{"loops", "branching", "input"},
		Run: func(s lesson.Streams) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return NewGame(rng.Intn(100) + 1).Play(s)
		},
	}
}
