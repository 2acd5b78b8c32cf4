package lesson

import (
	"fmt"
	"io"
)

// Printer writes lesson output lines, remembering the first write error.
//
// Lesson bodies print many lines in a row; threading an error check through
// every line would bury the teaching content. Printer keeps the body linear:
// print freely, return p.Err() once at the end. After the first failure all
// further prints are no-ops.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer over w.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		return &Printer{err: ErrNilWriter}
	}
	return &Printer{w: w}
}

// Println prints operands separated by spaces, followed by a newline.
func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// Printf prints according to the format specifier.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Err returns the first write error, or nil.
func (p *Printer) Err() error { return p.err }
