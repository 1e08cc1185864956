// Package notify delivers the audible cue and desktop toast after a scrub
// that changed the clipboard. Everything here is best-effort: a missing
// notification tool or a failed command degrades to a silent no-op and
// never affects the scrub result or the exit code.
package notify

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"clipscrub/pkg/logger"
	"clipscrub/pkg/scrub"
)

type Options struct {
	SuppressSound bool
	SuppressToast bool
}

// Notify fires the configured cues for a finished run. Nothing happens when
// the scrub made no change.
func Notify(res scrub.Result, opts Options) {
	if !res.Changed() {
		return
	}

	if !opts.SuppressSound {
		playCue()
	}
	if !opts.SuppressToast {
		showToast("Clipboard scrubbed", res.Summary())
	}
}

// playCue rings the terminal bell.
func playCue() {
	fmt.Fprint(os.Stderr, "\a")
}

func showToast(title, body string) {
	cmd := toastCommand(title, body)
	if cmd == nil {
		logger.Debug().Str("os", runtime.GOOS).Msg("no toast command for this platform")
		return
	}
	if cmd.Err != nil {
		logger.Debug().Err(cmd.Err).Msg("toast tool not installed")
		return
	}
	if err := cmd.Run(); err != nil {
		logger.Debug().Err(err).Msg("toast command failed")
	}
}

func toastCommand(title, body string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", "--app-name=clipscrub", title, body)
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		return exec.Command("osascript", "-e", script)
	default:
		return nil
	}
}
