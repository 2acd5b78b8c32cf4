// Package lesson provides the small framework the course is built on.
//
// It models a runnable lesson (Lesson) plus the plumbing to run it: explicit
// I/O streams (Streams), a registry keyed by slug (Registry), a sequential
// runner (Runner), and a YAML curriculum loader (Curriculum).
//
// Design goals:
//   - Deterministic: lessons write to an explicit io.Writer, never straight
//     to os.Stdout, so tests assert output byte-for-byte.
//   - Explicit wiring: lessons are registered intentionally in a composition
//     root; there is no init() based self-registration.
//   - Safe defaults: invalid lessons and duplicate slugs are rejected early
//     with typed errors.
//
// Notes on errors:
//   - Lookup/registration failures return small typed errors and avoid
//     fmt.Errorf, so callers can match with errors.As without paying
//     formatting costs on expected paths.
package lesson

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNilLesson is returned when a nil *Lesson is registered.
	ErrNilLesson = errors.New("lesson: nil lesson")

	// ErrNilWriter is returned by Runner when no output stream was wired.
	ErrNilWriter = errors.New("lesson: nil output writer")
)

// InvalidLessonError is returned when a lesson fails structural validation
// (empty slug, slug with spaces, missing title, nil Run).
type InvalidLessonError struct {
	Slug   string
	Reason string
}

// Error implements the error interface.
func (e InvalidLessonError) Error() string {
	// Example: lesson: invalid lesson "hello": nil Run func
	return "lesson: invalid lesson " + strconv.Quote(e.Slug) + ": " + e.Reason
}

// Streams carries the input and output a running lesson sees.
//
// Entry points wire os.Stdin/os.Stdout; tests wire buffers. Lessons must not
// reach for the process streams themselves.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// Func is a lesson body. It writes the lesson's output to s.Out and may read
// interactive input from s.In.
type Func func(s Streams) error

// Lesson is one runnable unit of the course.
//
// Slug is the stable identifier used for registration, lookup, and the
// curriculum file. Title and Summary are shown by the CLI listing. Topics is
// a short free-form tag list ("bindings", "loops", ...).
type Lesson struct {
	Slug    string
	Title   string
	Summary string
	Topics  []string
	Run     Func
}

// Validate checks the lesson is structurally usable.
//
// It returns an InvalidLessonError describing the first problem found, or nil.
func (l *Lesson) Validate() error {
	if l == nil {
		return ErrNilLesson
	}
	if strings.TrimSpace(l.Slug) == "" {
		return InvalidLessonError{Slug: l.Slug, Reason: "empty slug"}
	}
	if strings.ContainsAny(l.Slug, " \t\n") {
		return InvalidLessonError{Slug: l.Slug, Reason: "slug contains whitespace"}
	}
	if strings.TrimSpace(l.Title) == "" {
		return InvalidLessonError{Slug: l.Slug, Reason: "empty title"}
	}
	if l.Run == nil {
		return InvalidLessonError{Slug: l.Slug, Reason: "nil Run func"}
	}
	return nil
}
