// Package lessons assembles the built-in course.
//
// Wiring is explicit: every lesson is registered here, in course order, and
// the embedded curriculum.yaml is cross-validated against the registry. There
// is no init() based self-registration anywhere in the repo.
package lessons

import (
	_ "embed"

	"github.com/hbenali/golessons/lesson"
	"github.com/hbenali/golessons/lessons/basics"
	"github.com/hbenali/golessons/lessons/challenges"
	"github.com/hbenali/golessons/lessons/flow"
)

// CurriculumYAML is the embedded course definition. The CLI's verify command
// prints its checksum so a reader can confirm which course a binary carries.
//
//go:embed curriculum.yaml
var CurriculumYAML []byte

// Default builds the registry of built-in lessons plus the parsed embedded
// curriculum, cross-validated against each other.
func Default() (*lesson.Registry, *lesson.Curriculum, error) {
	reg := lesson.NewRegistry()
	err := reg.RegisterAll(
		basics.Hello(),
		basics.Variables(),
		flow.Guess(),
		challenges.FizzBuzz(),
		challenges.Password(),
		challenges.Sum(),
	)
	if err != nil {
		return nil, nil, err
	}

	course, err := lesson.LoadCurriculum(CurriculumYAML)
	if err != nil {
		return nil, nil, err
	}
	if err := course.Validate(reg); err != nil {
		return nil, nil, err
	}
	return reg, course, nil
}

// MustDefault is Default for mains and tests where wiring errors are fatal
// programming mistakes, not runtime conditions.
func MustDefault() (*lesson.Registry, *lesson.Curriculum) {
	reg, course, err := Default()
	if err != nil {
		panic(err)
	}
	return reg, course
}
