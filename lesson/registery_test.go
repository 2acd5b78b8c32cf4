package lesson_test

import (
	"errors"
	"testing"

	"github.com/hbenali/golessons/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopLesson(slug, title string) *lesson.Lesson {
	return &lesson.Lesson{
		Slug:  slug,
		Title: title,
		Run:   func(lesson.Streams) error { return nil },
	}
}

// Validate
func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("nil lesson", func(t *testing.T) {
		t.Parallel()
		var l *lesson.Lesson
		require.ErrorIs(t, l.Validate(), lesson.ErrNilLesson)
	})

	t.Run("empty slug", func(t *testing.T) {
		t.Parallel()
		l := noopLesson("", "Title")
		var inv lesson.InvalidLessonError
		require.ErrorAs(t, l.Validate(), &inv)
		assert.Equal(t, "empty slug", inv.Reason)
	})

	t.Run("slug with whitespace", func(t *testing.T) {
		t.Parallel()
		l := noopLesson("hello world", "Title")
		var inv lesson.InvalidLessonError
		require.ErrorAs(t, l.Validate(), &inv)
		assert.Equal(t, "slug contains whitespace", inv.Reason)
	})

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		l := noopLesson("hello", "  ")
		var inv lesson.InvalidLessonError
		require.ErrorAs(t, l.Validate(), &inv)
		assert.Equal(t, "empty title", inv.Reason)
	})

	t.Run("nil run", func(t *testing.T) {
		t.Parallel()
		l := &lesson.Lesson{Slug: "hello", Title: "Title"}
		var inv lesson.InvalidLessonError
		require.ErrorAs(t, l.Validate(), &inv)
		assert.Equal(t, "nil Run func", inv.Reason)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, noopLesson("hello", "Title").Validate())
	})
}

// Register / RegisterAll
func TestRegister_RejectsInvalidAndDuplicate(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()

	require.Error(t, reg.Register(&lesson.Lesson{Slug: "x", Title: "X"}))
	assert.Equal(t, 0, reg.Len())

	require.NoError(t, reg.Register(noopLesson("x", "X")))
	assert.Equal(t, 1, reg.Len())

	err := reg.Register(noopLesson("x", "X again"))
	var dup lesson.DuplicateSlugError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "x", dup.Slug)
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterAll_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()
	err := reg.RegisterAll(
		noopLesson("a", "A"),
		noopLesson("a", "A duplicate"),
		noopLesson("b", "B"),
	)
	require.Error(t, err)

	// a applied, b not reached
	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("b"))
}

// Lookup / MustLookup / All
func TestLookup(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()
	require.NoError(t, reg.Register(noopLesson("hello", "Hello")))

	got, err := reg.Lookup("hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)

	_, err = reg.Lookup("helo")
	var unknown lesson.UnknownLessonError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "helo", unknown.Slug)
	assert.Equal(t, `lesson: unknown lesson "helo"`, err.Error())
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()
	require.NoError(t, reg.Register(noopLesson("hello", "Hello")))

	assert.NotPanics(t, func() { reg.MustLookup("hello") })
	assert.Panics(t, func() { reg.MustLookup("missing") })
}

func TestAll_PreservesRegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()
	require.NoError(t, reg.RegisterAll(
		noopLesson("c", "C"),
		noopLesson("a", "A"),
		noopLesson("b", "B"),
	))

	var slugs []string
	for _, l := range reg.All() {
		slugs = append(slugs, l.Slug)
	}
	assert.Equal(t, []string{"c", "a", "b"}, slugs)
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := lesson.NewRegistry()
	require.NoError(t, reg.Register(noopLesson("a", "A")))

	all := reg.All()
	all[0] = nil

	require.NotNil(t, reg.All()[0])
	assert.Equal(t, "a", reg.All()[0].Slug)
}
