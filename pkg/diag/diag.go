// Package diag defines the diagnostics reported by the forjery lexer, the
// machine and the command line front end.
package diag

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies a diagnostic.
type Kind uint8

const (
	KindUsage Kind = iota
	KindLex
	KindStackUnderflow
	KindTypeMismatch
	KindDivisionByZero
	KindInvalidToken
	KindIO
)

var kindNames = [...]string{
	KindUsage:          "usage error",
	KindLex:            "lexical error",
	KindStackUnderflow: "stack underflow",
	KindTypeMismatch:   "type mismatch",
	KindDivisionByZero: "division by zero",
	KindInvalidToken:   "invalid token",
	KindIO:             "i/o error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("diag.Kind(%d)", uint8(k))
}

// ExitCode is the process status a front end should exit with.
func (k Kind) ExitCode() int {
	return 1
}

// Pos marks a 1-based line/column location in a source file.
type Pos struct{ Line, Col int }

// IsValid reports whether the position refers to a real location.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Diagnostic is a fatal condition with an optional position. Err, when
// set, is the sentinel the condition was raised for.
type Diagnostic struct {
	Kind Kind
	Pos  Pos
	Msg  string
	Err  error

	frame xerrors.Frame
}

// New returns a diagnostic raised at the caller's frame.
func New(kind Kind, pos Pos, msg string, err error) *Diagnostic {
	return &Diagnostic{
		Kind:  kind,
		Pos:   pos,
		Msg:   msg,
		Err:   err,
		frame: xerrors.Caller(1),
	}
}

// Errorf is New with a formatted message and no underlying sentinel.
func Errorf(kind Kind, pos Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:  kind,
		Pos:   pos,
		Msg:   fmt.Sprintf(format, args...),
		frame: xerrors.Caller(1),
	}
}

// Error renders the diagnostic as "line:col msg".
func (d *Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return fmt.Sprintf("%d:%d %s", d.Pos.Line, d.Pos.Col, d.Msg)
}

func (d *Diagnostic) Unwrap() error { return d.Err }

func (d *Diagnostic) Format(s fmt.State, v rune) { xerrors.FormatError(d, s, v) }

// FormatError prints d as Error does. With %+v it also prints the frame
// that raised d and continues into the wrapped sentinel.
func (d *Diagnostic) FormatError(p xerrors.Printer) error {
	p.Print(d.Error())
	if !p.Detail() {
		return nil
	}
	d.frame.Format(p)
	return d.Err
}

// KindOf returns the kind of the first Diagnostic in err's chain.
func KindOf(err error) (Kind, bool) {
	var d *Diagnostic
	if xerrors.As(err, &d) {
		return d.Kind, true
	}
	return 0, false
}

// ExitCode maps err to a process exit status: 0 for nil, the kind's code
// for a Diagnostic and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if k, ok := KindOf(err); ok {
		return k.ExitCode()
	}
	return 1
}
