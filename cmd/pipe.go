package cmd

import (
	"fmt"
	"io"
	"os"

	"clipscrub/pkg/errors"
	"clipscrub/pkg/scrub"

	"github.com/spf13/cobra"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Scrub stdin to stdout",
	Long: `Reads text from stdin, applies the same scrub pipeline as the clipboard
cycle, and writes the cleaned text to stdout. The report goes to stderr so
the command composes in shell pipelines.`,
	Example: `  # Clean a file in a pipeline
  clipscrub pipe < pasted.txt > clean.txt

  # Keep ZWJ sequences (emoji) intact
  cat notes.md | clipscrub pipe --keep-format-marks`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRunOptions()
		if err != nil {
			return err
		}

		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read stdin", err)
		}

		res := scrub.Scrub(string(raw), opts.policy)

		if _, err := io.WriteString(os.Stdout, res.CleanedText); err != nil {
			return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write stdout", err)
		}

		fmt.Fprint(os.Stderr, res.Report())
		return nil
	},
}
