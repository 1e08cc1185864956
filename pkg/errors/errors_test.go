package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeClipboard, Message: "clipboard error", Underlying: errors.New("no display")},
			expected: "clipboard error: no display",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeGeneral,
		Message:    "test error",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("socket closed")
	wrapped := Wrap(underlying, "write failed")

	if wrapped.Code != ExitCodeGeneral {
		t.Errorf("Code = %d, want %d", wrapped.Code, ExitCodeGeneral)
	}
	if wrapped.Underlying != underlying {
		t.Errorf("Underlying = %v, want %v", wrapped.Underlying, underlying)
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := NoTextError()
	wrapped := Wrap(inner, "scrub cycle")

	if wrapped.Code != ExitCodeNoText {
		t.Errorf("Code = %d, want %d", wrapped.Code, ExitCodeNoText)
	}
	if wrapped.Suggestion != inner.Suggestion {
		t.Errorf("Suggestion = %q, want %q", wrapped.Suggestion, inner.Suggestion)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "no-op") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsExitCode(t *testing.T) {
	err := NoTextError()

	if !IsExitCode(err, ExitCodeNoText) {
		t.Error("IsExitCode should match ExitCodeNoText")
	}
	if IsExitCode(err, ExitCodeClipboard) {
		t.Error("IsExitCode should not match ExitCodeClipboard")
	}
	if IsExitCode(nil, ExitCodeSuccess) {
		t.Error("IsExitCode(nil) should be false")
	}
	if IsExitCode(errors.New("plain"), ExitCodeGeneral) {
		t.Error("IsExitCode should be false for non-typed errors")
	}
}

func TestHandleReturn(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil error", nil, ExitCodeSuccess},
		{"typed error", ClipboardReadError(errors.New("boom")), ExitCodeClipboard},
		{"no text", NoTextError(), ExitCodeNoText},
		{"plain error", errors.New("plain"), ExitCodeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleReturn(tt.err); got != tt.want {
				t.Errorf("HandleReturn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	if ConfigError("bad config").Code != ExitCodeConfig {
		t.Error("ConfigError should carry ExitCodeConfig")
	}
	if ValidationError("bad flag").Code != ExitCodeValidation {
		t.Error("ValidationError should carry ExitCodeValidation")
	}
	if HistoryError(errors.New("locked")).Code != ExitCodeHistory {
		t.Error("HistoryError should carry ExitCodeHistory")
	}
	if CancelledError("watch").Code != ExitCodeCancellation {
		t.Error("CancelledError should carry ExitCodeCancellation")
	}
	if ClipboardWriteError(errors.New("x")).Code != ExitCodeClipboard {
		t.Error("ClipboardWriteError should carry ExitCodeClipboard")
	}
}
