package lesson

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Curriculum is the ordered course definition, loaded from YAML.
//
// The YAML is the single source of truth for lesson ordering; the registry is
// the source of truth for lesson behavior. Validate cross-checks the two so
// the course file cannot silently drift from the code.
//
// File shape:
//
//	lessons:
//	  - slug: hello
//	    title: Hello, World!
//	  - slug: variables
//	    title: Variables, Mutability, and Shadowing
type Curriculum struct {
	Lessons []Entry `yaml:"lessons"`
}

// Entry is one curriculum row.
type Entry struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
}

// CurriculumMismatchError is returned by Validate when an entry disagrees
// with the registry (missing lesson or diverging title).
type CurriculumMismatchError struct {
	Slug   string
	Reason string
}

// Error implements the error interface.
func (e CurriculumMismatchError) Error() string {
	// Example: lesson: curriculum entry "hello" mismatch: not registered
	return "lesson: curriculum entry " + strconv.Quote(e.Slug) + " mismatch: " + e.Reason
}

// LoadCurriculum parses raw YAML and checks the file's internal shape:
// at least one entry, no empty slugs or titles, no duplicate slugs.
func LoadCurriculum(raw []byte) (*Curriculum, error) {
	var c Curriculum
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("lesson: parse curriculum: %w", err)
	}
	if len(c.Lessons) == 0 {
		return nil, fmt.Errorf("lesson: curriculum has no lessons")
	}
	seen := make(map[string]bool, len(c.Lessons))
	for i, e := range c.Lessons {
		if e.Slug == "" {
			return nil, fmt.Errorf("lesson: curriculum entry %d has empty slug", i)
		}
		if e.Title == "" {
			return nil, CurriculumMismatchError{Slug: e.Slug, Reason: "empty title"}
		}
		if seen[e.Slug] {
			return nil, DuplicateSlugError{Slug: e.Slug}
		}
		seen[e.Slug] = true
	}
	return &c, nil
}

// Validate cross-checks every entry against the registry.
//
// Each entry's slug must be registered and its title must match the
// registered lesson's title. Lessons registered but absent from the
// curriculum are reported too, so the course file stays complete.
func (c *Curriculum) Validate(reg *Registry) error {
	inCourse := make(map[string]bool, len(c.Lessons))
	for _, e := range c.Lessons {
		l, err := reg.Lookup(e.Slug)
		if err != nil {
			return CurriculumMismatchError{Slug: e.Slug, Reason: "not registered"}
		}
		if l.Title != e.Title {
			return CurriculumMismatchError{
				Slug:   e.Slug,
				Reason: "title is " + strconv.Quote(e.Title) + ", lesson says " + strconv.Quote(l.Title),
			}
		}
		inCourse[e.Slug] = true
	}
	for _, l := range reg.All() {
		if !inCourse[l.Slug] {
			return CurriculumMismatchError{Slug: l.Slug, Reason: "registered but missing from curriculum"}
		}
	}
	return nil
}

// Slugs returns the curriculum order as a slug list, ready for Runner.RunAll.
func (c *Curriculum) Slugs() []string {
	out := make([]string, 0, len(c.Lessons))
	for _, e := range c.Lessons {
		out = append(out, e.Slug)
	}
	return out
}
