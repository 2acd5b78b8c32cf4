package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbenali/golessons/lesson"
	"github.com/hbenali/golessons/lessons"
	"github.com/hbenali/golessons/ux"
)

// Exit codes.
const (
	exitOK           = 0
	exitLessonFailed = 1
	exitError        = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		plain := hasPlainFlag(args)
		_, _ = fmt.Fprintln(stderr, ux.Failure(err, plain))

		var failed lesson.LessonFailedError
		if errors.As(err, &failed) {
			return exitLessonFailed
		}
		return exitError
	}
	return exitOK
}

// hasPlainFlag scans raw args so error rendering honors --plain even when
// flag parsing itself failed.
func hasPlainFlag(args []string) bool {
	for _, a := range args {
		if a == "--plain" {
			return true
		}
	}
	return false
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:   "golessons",
		Short: "Run the golessons course from your terminal",
		Long: "golessons is a small interactive course on Go's binding semantics:\n" +
			"declaration, mutability, and shadowing, plus a few classic exercises.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled output")

	root.AddCommand(newListCmd(stdout, &plain))
	root.AddCommand(newRunCmd(stdin, stdout, &plain))
	root.AddCommand(newAllCmd(stdin, stdout, &plain))
	root.AddCommand(newVerifyCmd(stdout))
	return root
}

// newListCmd lists the curriculum in course order.
func newListCmd(stdout io.Writer, plain *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lessons in course order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, course, err := lessons.Default()
			if err != nil {
				return err
			}
			for i, entry := range course.Lessons {
				l, err := reg.Lookup(entry.Slug)
				if err != nil {
					return err
				}
				row := ux.ListRow(i+1, l.Slug, l.Title, l.Topics, *plain)
				if _, err := fmt.Fprintln(stdout, row); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newRunCmd runs a single lesson by slug.
func newRunCmd(stdin io.Reader, stdout io.Writer, plain *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run <slug>",
		Short: "Run one lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, course, err := lessons.Default()
			if err != nil {
				return err
			}
			r := newCourseRunner(reg, course, stdin, stdout, *plain)
			return r.Run(args[0])
		},
	}
}

// newAllCmd runs the whole course in curriculum order.
func newAllCmd(stdin io.Reader, stdout io.Writer, plain *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every lesson in course order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, course, err := lessons.Default()
			if err != nil {
				return err
			}
			r := newCourseRunner(reg, course, stdin, stdout, *plain)
			if err := r.RunAll(course.Slugs()...); err != nil {
				return err
			}
			done := fmt.Sprintf("Course complete (%d lessons).", len(course.Lessons))
			if !*plain {
				done = ux.Styles.Success.Render(done)
			}
			_, err = fmt.Fprintln(stdout, done)
			return err
		},
	}
}

// newVerifyCmd prints the checksum of the embedded curriculum, so operators
// can confirm which course definition a binary carries.
func newVerifyCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Print byte size and SHA256 of the embedded curriculum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := lessons.Default(); err != nil {
				return err
			}
			hash := sha256.Sum256(lessons.CurriculumYAML)
			_, _ = fmt.Fprintln(stdout, "--- Embedded Curriculum Verification ---")
			_, _ = fmt.Fprintf(stdout, "Curriculum byte size: %d bytes\n", len(lessons.CurriculumYAML))
			_, _ = fmt.Fprintf(stdout, "SHA256 Fingerprint: %x\n", hash)
			_, err := fmt.Fprintln(stdout, "-----------------------------------------")
			return err
		},
	}
}

// newCourseRunner wires a lesson.Runner with the per-lesson header, numbered
// by curriculum position.
func newCourseRunner(reg *lesson.Registry, course *lesson.Curriculum, stdin io.Reader, stdout io.Writer, plain bool) *lesson.Runner {
	position := make(map[string]int, len(course.Lessons))
	for i, entry := range course.Lessons {
		position[entry.Slug] = i + 1
	}

	r := lesson.NewRunner(reg, lesson.Streams{In: stdin, Out: stdout})
	r.Decorate = func(l *lesson.Lesson) string {
		return ux.Header(position[l.Slug], l.Title, plain)
	}
	return r
}
