//go:build !linux

package clipboard

import atotto "github.com/atotto/clipboard"

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	return atotto.WriteAll(text)
}

// ServeText is not used on non-Linux platforms.
func ServeText(text string) error {
	return nil
}
