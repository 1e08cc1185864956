// Package clipboard is the scrubber's only I/O boundary: read the text
// clipboard once, write it once. On Linux/Wayland writing daemonizes a
// small clipboard-owner process so the cleaned text outlives this CLI's
// exit without requiring wl-clipboard to be installed.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrNoText reports a clipboard that holds no text (empty, or a non-text
// format such as an image). Callers treat this as "nothing to do".
var ErrNoText = errors.New("clipboard: no text available")

// ReadText returns the current plain-text clipboard contents.
func ReadText() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
