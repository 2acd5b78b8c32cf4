package lesson

import "strconv"

// Registry holds the registered lessons, keyed by slug.
//
// It is intentionally:
// - append-only (no unregister)
// - order-preserving (All returns registration order)
// - not safe for concurrent mutation (wiring happens once, in main)
//
// Expected usage:
//
//	reg := lesson.NewRegistry()
//	if err := reg.RegisterAll(hello, variables); err != nil { ... }
type Registry struct {
	bySlug map[string]*Lesson
	order  []string
}

// DuplicateSlugError is returned when registering a slug that already exists.
type DuplicateSlugError struct{ Slug string }

// Error implements the error interface.
func (e DuplicateSlugError) Error() string {
	// Example: lesson: duplicate slug "hello"
	return "lesson: duplicate slug " + strconv.Quote(e.Slug)
}

// UnknownLessonError is returned when a lookup slug is not registered.
type UnknownLessonError struct{ Slug string }

// Error implements the error interface.
func (e UnknownLessonError) Error() string {
	// Example: lesson: unknown lesson "helo"
	return "lesson: unknown lesson " + strconv.Quote(e.Slug)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bySlug: map[string]*Lesson{}}
}

// Register validates the lesson and stores it under its slug.
//
// It fails with the lesson's validation error, or with DuplicateSlugError if
// the slug is already taken.
func (r *Registry) Register(l *Lesson) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, exists := r.bySlug[l.Slug]; exists {
		return DuplicateSlugError{Slug: l.Slug}
	}
	r.bySlug[l.Slug] = l
	r.order = append(r.order, l.Slug)
	return nil
}

// RegisterAll registers lessons in order and stops at the first error.
func (r *Registry) RegisterAll(ls ...*Lesson) error {
	for _, l := range ls {
		if err := r.Register(l); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether a slug is registered.
func (r *Registry) Has(slug string) bool {
	_, ok := r.bySlug[slug]
	return ok
}

// Lookup returns the lesson for slug, or UnknownLessonError.
func (r *Registry) Lookup(slug string) (*Lesson, error) {
	l, ok := r.bySlug[slug]
	if !ok {
		return nil, UnknownLessonError{Slug: slug}
	}
	return l, nil
}

// MustLookup returns the lesson or panics. Useful in examples/tests where a
// missing slug should fail fast.
func (r *Registry) MustLookup(slug string) *Lesson {
	l, err := r.Lookup(slug)
	if err != nil {
		panic(err)
	}
	return l
}

// All returns the lessons in registration order.
//
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) All() []*Lesson {
	out := make([]*Lesson, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug])
	}
	return out
}

// Len returns the number of registered lessons.
func (r *Registry) Len() int { return len(r.order) }
