package vm

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/agenthands/forjery/pkg/compiler/lexer"
	"github.com/agenthands/forjery/pkg/core/value"
	"github.com/agenthands/forjery/pkg/diag"
)

var (
	ErrStackUnderflow = xerrors.New("vm: stack underflow")
	ErrTypeMismatch   = xerrors.New("vm: type mismatch")
	ErrDivisionByZero = xerrors.New("vm: division by zero")
	ErrInvalidToken   = xerrors.New("vm: invalid token")
)

// Machine evaluates emitted code against an unbounded operand stack.
// Everything it prints goes to Out.
type Machine struct {
	Stack []value.Value
	Code  *lexer.Code
	Out   io.Writer
}

// NewMachine returns an empty machine printing to out.
func NewMachine(out io.Writer) *Machine {
	return &Machine{Out: out}
}

// Load sets the code the next Run drains.
func (m *Machine) Load(code *lexer.Code) {
	m.Code = code
}

// Reset clears the machine state for reuse.
func (m *Machine) Reset() {
	// Zero out the stack so old strings can be collected
	for i := range m.Stack {
		m.Stack[i] = value.Value{}
	}
	m.Stack = m.Stack[:0]
	m.Code = nil
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int {
	return len(m.Stack)
}

// Push adds a value to the stack.
func (m *Machine) Push(v value.Value) {
	m.Stack = append(m.Stack, v)
}

// Pop removes and returns the top value from the stack. Panics with
// ErrStackUnderflow when the stack is empty; Step recovers it.
func (m *Machine) Pop() value.Value {
	n := len(m.Stack)
	if n == 0 {
		panic(ErrStackUnderflow)
	}
	v := m.Stack[n-1]
	m.Stack[n-1] = value.Value{}
	m.Stack = m.Stack[:n-1]
	return v
}

// Run drains the loaded code from the bottom, evaluating each token until
// the code is exhausted or a token fails. Output written before a failure
// is not retracted.
func (m *Machine) Run() error {
	if m.Code == nil {
		return nil
	}
	for {
		tok, ok := m.Code.Next()
		if !ok {
			return nil
		}
		if err := m.Step(tok); err != nil {
			return err
		}
	}
}

// Step evaluates a single token. Failures are returned as
// *diag.Diagnostic values positioned at tok and wrapping one of the
// package's sentinel errors.
func (m *Machine) Step(tok lexer.Token) (err error) {
	// Convert stack panics raised by Pop to errors
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && e == ErrStackUnderflow {
				err = fail(tok, diag.KindStackUnderflow, "Stack underflow", ErrStackUnderflow)
				return
			}
			panic(r)
		}
	}()

	switch tok.Kind {
	case lexer.KindNum:
		m.Push(value.Int(tok.Num))

	case lexer.KindStr:
		m.Push(value.String(tok.Str))

	case lexer.KindPop:
		m.Pop()

	case lexer.KindShowStack:
		return m.showStack()

	case lexer.KindAdd, lexer.KindSub, lexer.KindMul, lexer.KindDiv:
		return m.arith(tok)

	case lexer.KindPrintln:
		// ( val -- )
		v := m.Pop()
		if _, err := io.WriteString(m.Out, v.Text()+"\n"); err != nil {
			return xerrors.Errorf("vm: writing output: %w", err)
		}

	default:
		return fail(tok, diag.KindInvalidToken, "Invalid token tk="+tok.Kind.String(), ErrInvalidToken)
	}
	return nil
}

// arith: ( b a -- b op a )
func (m *Machine) arith(tok lexer.Token) error {
	a := m.Pop()
	if !a.IsInt() {
		return mismatch(tok, a)
	}
	b := m.Pop()
	if !b.IsInt() {
		return mismatch(tok, b)
	}

	res, err := binaryOps[tok.Kind](b.Int, a.Int)
	if err != nil {
		return fail(tok, diag.KindDivisionByZero, "Division by zero", err)
	}
	m.Push(value.Int(res))
	return nil
}

// showStack prints "<depth> ", the values from top to bottom and "ok".
func (m *Machine) showStack() error {
	var b strings.Builder
	fmt.Fprintf(&b, "<%d> ", len(m.Stack))
	for i := len(m.Stack) - 1; i >= 0; i-- {
		b.WriteString(m.Stack[i].Quote())
		b.WriteByte(' ')
	}
	b.WriteString("ok\n")

	if _, err := io.WriteString(m.Out, b.String()); err != nil {
		return xerrors.Errorf("vm: writing output: %w", err)
	}
	return nil
}

func mismatch(tok lexer.Token, v value.Value) error {
	msg := fmt.Sprintf("Type mismatch: %s expects int operands, got %s", tok.Kind, v.Type)
	return fail(tok, diag.KindTypeMismatch, msg, ErrTypeMismatch)
}

func fail(tok lexer.Token, kind diag.Kind, msg string, err error) error {
	pos := diag.Pos{Line: int(tok.Line), Col: int(tok.Col)}
	return diag.New(kind, pos, msg, err)
}
