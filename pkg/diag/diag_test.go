package diag_test

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/xerrors"

	"github.com/agenthands/forjery/pkg/diag"
)

var errSentinel = xerrors.New("sentinel")

func TestDiagnosticError(t *testing.T) {
	tests := []struct {
		d    *diag.Diagnostic
		want string
	}{
		{diag.Errorf(diag.KindLex, diag.Pos{Line: 2, Col: 7}, "Invalid identifier %q", "x"), `2:7 Invalid identifier "x"`},
		{diag.New(diag.KindUsage, diag.Pos{}, "Usage: forjery file", nil), "Usage: forjery file"},
	}
	for _, tt := range tests {
		if got := tt.d.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
		if got := fmt.Sprintf("%v", tt.d); got != tt.want {
			t.Errorf("%%v: expected %q, got %q", tt.want, got)
		}
	}
}

func TestDiagnosticWrapping(t *testing.T) {
	d := diag.New(diag.KindStackUnderflow, diag.Pos{Line: 1, Col: 1}, "Stack underflow", errSentinel)
	wrapped := xerrors.Errorf("running: %w", d)

	if !xerrors.Is(wrapped, errSentinel) {
		t.Errorf("expected sentinel in chain")
	}
	if k, ok := diag.KindOf(wrapped); !ok || k != diag.KindStackUnderflow {
		t.Errorf("expected KindStackUnderflow, got %v (ok=%v)", k, ok)
	}

	detail := fmt.Sprintf("%+v", d)
	if !strings.Contains(detail, "1:1 Stack underflow") || !strings.Contains(detail, "sentinel") {
		t.Errorf("unexpected detail output %q", detail)
	}
	if !strings.Contains(detail, "diag_test.go") {
		t.Errorf("expected raising frame in detail output, got %q", detail)
	}
}

func TestExitCode(t *testing.T) {
	if diag.ExitCode(nil) != 0 {
		t.Errorf("expected 0 for nil")
	}
	for k := diag.KindUsage; k <= diag.KindIO; k++ {
		if got := diag.ExitCode(diag.New(k, diag.Pos{}, k.String(), nil)); got != 1 {
			t.Errorf("%v: expected exit code 1, got %d", k, got)
		}
	}
	if diag.ExitCode(xerrors.New("plain")) != 1 {
		t.Errorf("expected 1 for a plain error")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if _, ok := diag.KindOf(xerrors.New("plain")); ok {
		t.Errorf("plain errors carry no kind")
	}
}
