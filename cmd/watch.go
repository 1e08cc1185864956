package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipscrub/pkg/clipboard"
	"clipscrub/pkg/errors"
	"clipscrub/pkg/logger"
	"clipscrub/pkg/progress"
	"clipscrub/pkg/scrub"

	"github.com/spf13/cobra"
)

var watchIntervalSec int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scrub the clipboard whenever it changes",
	Long: `Polls the clipboard and runs a scrub cycle each time new text appears.
Cycles are serialized: there is one clipboard, so there is one scrub at a
time. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRunOptions()
		if err != nil {
			return err
		}

		interval := time.Duration(watchIntervalSec) * time.Second
		if interval <= 0 {
			interval = 2 * time.Second
		}

		return runWatch(interval, opts)
	},
}

func runWatch(interval time.Duration, opts runOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spinner := progress.NewSpinner("watching clipboard")
	spinner.Start()
	defer spinner.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// lastSeen tracks what we last observed or wrote, so our own clipboard
	// write does not trigger another cycle.
	var lastSeen string

	for {
		select {
		case <-ctx.Done():
			spinner.Stop()
			logger.Info().Msg("watch stopped")
			return nil
		case <-ticker.C:
		}

		text, err := clipboard.ReadText()
		if err != nil {
			// Empty or non-text clipboard: nothing to do this tick.
			if err != clipboard.ErrNoText {
				logger.Debug().Err(err).Msg("clipboard read failed")
			}
			continue
		}
		if text == lastSeen {
			continue
		}

		res := scrub.Scrub(text, opts.policy)
		lastSeen = res.CleanedText

		if !res.Changed() {
			continue
		}

		if dryRunFlag {
			spinner.Stop()
			PrintDryRun("would write %d code points back to the clipboard", res.CleanedLength)
			fmt.Print(res.Report())
			spinner.Start()
			continue
		}

		if err := clipboard.WriteText(res.CleanedText); err != nil {
			spinner.Stop()
			return errors.ClipboardWriteError(err)
		}

		spinner.Stop()
		fmt.Print(res.Report())
		spinner.Start()

		finishRun(res, opts)
	}
}

func init() {
	watchCmd.Flags().IntVar(&watchIntervalSec, "interval", 2, "Poll interval in seconds")
}
