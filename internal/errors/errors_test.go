package errors

import "testing"

func TestExitError_Unwrap(t *testing.T) {
	base := New("base failure")
	exitErr := NewExitError(Wrap(base, "context"), ExitSystem)

	if !Is(exitErr, base) {
		t.Error("errors.Is must see through ExitError to the base error")
	}

	var target *ExitError
	if !As(exitErr, &target) {
		t.Fatal("errors.As failed to extract ExitError")
	}
	if target.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", target.Code, ExitSystem)
	}
}

func TestExitError_Codes(t *testing.T) {
	if e := NewUserError(New("x"), "try y"); e.Code != ExitUser || e.Suggestion != "try y" {
		t.Errorf("NewUserError = %+v", e)
	}
	if e := NewSystemError(New("x"), ""); e.Code != ExitSystem {
		t.Errorf("NewSystemError code = %d", e.Code)
	}
	if e := NewConfigError(New("x")); e.Code != ExitUser || e.Suggestion == "" {
		t.Errorf("NewConfigError = %+v", e)
	}
}

func TestExitError_NilErr(t *testing.T) {
	e := NewExitError(nil, ExitUser)
	if e.Error() == "" {
		t.Error("Error() must describe the exit even with a nil cause")
	}
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrapf(ErrUnknownShell, "%q", "tcsh")
	if !Is(err, ErrUnknownShell) {
		t.Error("wrapped sentinel must still match with errors.Is")
	}
}
