package cmd

import (
	"io"
	"os"

	"clipscrub/pkg/clipboard"

	"github.com/spf13/cobra"
)

var clipboardServeCmd = &cobra.Command{
	Use:    "__clipboard-serve",
	Hidden: true,
	Short:  "Internal: own the Wayland clipboard selection (do not call directly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return clipboard.ServeText(string(text))
	},
}
