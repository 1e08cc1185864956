//go:build linux

package clipboard

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"clipscrub/pkg/clipboard/internal/wayland"

	atotto "github.com/atotto/clipboard"
)

// WriteText puts text on the clipboard. On Wayland a detached owner process
// keeps serving the selection after this process exits; on X11 the external
// clipboard tools atotto shells out to hold it instead.
func WriteText(text string) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return atotto.WriteAll(text)
	}
	return spawnOwner(text)
}

func spawnOwner(text string) error {
	// Re-exec this binary as a daemonised subprocess, text on stdin.
	cmd := exec.Command(os.Args[0], "__clipboard-serve")
	cmd.Stdin = strings.NewReader(text)
	// Detach from the parent's process group so the child survives parent exit.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start() // don't Wait — parent returns immediately
}

// ServeText is called by the __clipboard-serve hidden command. It claims
// the Wayland clipboard and blocks until another program takes ownership.
func ServeText(text string) error {
	return wayland.ServeText([]byte(text))
}
