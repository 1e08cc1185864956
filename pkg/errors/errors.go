package errors

import (
	"fmt"
	"os"
	"strings"

	"clipscrub/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeNoText        ExitCode = 3
	ExitCodeClipboard     ExitCode = 4
	ExitCodeHistory       ExitCode = 5
	ExitCodeValidation    ExitCode = 6
	ExitCodeFileOperation ExitCode = 7
	ExitCodeCancellation  ExitCode = 8
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgClipboardRead  = "Failed to read clipboard"
	ErrMsgClipboardWrite = "Failed to write clipboard"
	ErrMsgNoText         = "Clipboard has no text to scrub"
	ErrMsgHistoryFailed  = "Audit history operation failed"
	ErrMsgInvalidInput   = "Invalid input provided"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn processes an error, renders it to stderr, and returns the
// exit code. It does not call os.Exit; the caller owns process termination.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	// "Nothing to do" is a warning, not a failure banner.
	if exitCode == ExitCodeNoText {
		yellow := color.New(color.FgYellow)
		yellow.Fprint(os.Stderr, "Nothing to do: ")
		fmt.Fprintln(os.Stderr, message)
		return exitCode
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				fmt.Fprintln(os.Stderr, "           "+line)
			}
		}
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

// NoTextError reports an empty or non-text clipboard. This aborts the scrub
// cycle without treating it as a crash.
func NoTextError() *Error {
	return &Error{
		Code:       ExitCodeNoText,
		Message:    ErrMsgNoText,
		Suggestion: "Copy some text first, or pipe input through 'clipscrub pipe'.",
	}
}

func ClipboardReadError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    ErrMsgClipboardRead,
		Underlying: err,
		Suggestion: "On Linux, install xclip, xsel or wl-clipboard so the clipboard is reachable.",
	}
}

func ClipboardWriteError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    ErrMsgClipboardWrite,
		Underlying: err,
	}
}

func HistoryError(err error) *Error {
	return &Error{
		Code:       ExitCodeHistory,
		Message:    ErrMsgHistoryFailed,
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or run 'clipscrub config init'.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("Operation cancelled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}
