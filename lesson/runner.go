package lesson

import "strconv"

// Runner executes lessons from a registry against a fixed pair of streams.
//
// Decorate, when set, produces a header string written before each lesson
// body (the CLI wires a styled header; tests leave it nil for raw output).
// The header is the runner's own chrome; lesson bodies never see it.
type Runner struct {
	Registry *Registry
	Streams  Streams

	// Decorate renders the per-lesson header. A nil Decorate (or an empty
	// result) writes no header.
	Decorate func(l *Lesson) string
}

// LessonFailedError wraps an error returned by a lesson body, adding the slug.
type LessonFailedError struct {
	Slug string
	Err  error
}

// Error implements the error interface.
func (e LessonFailedError) Error() string {
	// Example: lesson: lesson "guess" failed: unexpected end of input
	return "lesson: lesson " + strconv.Quote(e.Slug) + " failed: " + e.Err.Error()
}

// Unwrap exposes the underlying lesson error to errors.Is / errors.As.
func (e LessonFailedError) Unwrap() error { return e.Err }

// NewRunner returns a Runner over reg writing to streams.
func NewRunner(reg *Registry, streams Streams) *Runner {
	return &Runner{Registry: reg, Streams: streams}
}

// Run looks up slug and executes that lesson.
//
// It returns UnknownLessonError when the slug is not registered, ErrNilWriter
// when no output stream was wired, and LessonFailedError when the body fails.
func (r *Runner) Run(slug string) error {
	l, err := r.Registry.Lookup(slug)
	if err != nil {
		return err
	}
	return r.runOne(l)
}

// RunAll executes the given slugs in order, stopping at the first error.
//
// With no arguments it runs every registered lesson in registration order.
func (r *Runner) RunAll(slugs ...string) error {
	if len(slugs) == 0 {
		for _, l := range r.Registry.All() {
			if err := r.runOne(l); err != nil {
				return err
			}
		}
		return nil
	}
	for _, slug := range slugs {
		if err := r.Run(slug); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runOne(l *Lesson) error {
	if r.Streams.Out == nil {
		return ErrNilWriter
	}
	if r.Decorate != nil {
		if header := r.Decorate(l); header != "" {
			if _, err := r.Streams.Out.Write([]byte(header)); err != nil {
				return LessonFailedError{Slug: l.Slug, Err: err}
			}
		}
	}
	if err := l.Run(r.Streams); err != nil {
		return LessonFailedError{Slug: l.Slug, Err: err}
	}
	return nil
}
