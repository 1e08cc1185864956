package cmd

import (
	"fmt"

	"clipscrub/pkg/clipboard"
	"clipscrub/pkg/config"
	"clipscrub/pkg/errors"
	"clipscrub/pkg/history"
	"clipscrub/pkg/logger"
	"clipscrub/pkg/notify"
	"clipscrub/pkg/scrub"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrub the clipboard once",
	Long: `Reads the clipboard, removes invisible code points per the active policy,
writes the cleaned text back, and reports what changed. An empty or
non-text clipboard is a warning, not a failure.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScrubCycle()
	},
}

// runOptions is the merged flag/config view a scrub cycle runs under.
type runOptions struct {
	policy  scrub.Policy
	notify  notify.Options
	audit   bool
	auditDB string
}

// loadRunOptions layers explicit flags over the config file. A flag wins
// only when the user actually set it.
func loadRunOptions() (runOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return runOptions{}, err
	}

	opts := runOptions{
		policy: scrub.Policy{
			KeepFormatMarks:  cfg.Policy.KeepFormatMarks,
			KeepNoBreakSpace: cfg.Policy.KeepNoBreakSpace,
		},
		notify: notify.Options{
			SuppressSound: cfg.Notify.SuppressSound,
			SuppressToast: cfg.Notify.SuppressToast,
		},
		audit:   !cfg.History.Disabled,
		auditDB: cfg.History.Path,
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("keep-format-marks") {
		opts.policy.KeepFormatMarks = keepFormatFlag
	}
	if flags.Changed("keep-nbsp") {
		opts.policy.KeepNoBreakSpace = keepNBSPFlag
	}
	if flags.Changed("no-sound") {
		opts.notify.SuppressSound = noSoundFlag
	}
	if flags.Changed("no-toast") {
		opts.notify.SuppressToast = noToastFlag
	}
	if flags.Changed("no-audit") {
		opts.audit = !noAuditFlag
	}

	return opts, nil
}

// runScrubCycle is one full pass: clipboard in, scrub, clipboard out,
// then report, notify and audit.
func runScrubCycle() error {
	opts, err := loadRunOptions()
	if err != nil {
		return err
	}

	raw, err := clipboard.ReadText()
	if err != nil {
		if err == clipboard.ErrNoText {
			return errors.NoTextError()
		}
		return errors.ClipboardReadError(err)
	}

	res := scrub.Scrub(raw, opts.policy)
	logger.Debug().
		Int("original", res.OriginalLength).
		Int("removed", res.RemovedCount).
		Bool("nbsp_normalized", res.NBSPNormalized).
		Msg("scrub complete")

	if res.Changed() {
		if dryRunFlag {
			PrintDryRun("would write %d code points back to the clipboard", res.CleanedLength)
		} else if err := clipboard.WriteText(res.CleanedText); err != nil {
			return errors.ClipboardWriteError(err)
		}
	}

	fmt.Print(res.Report())

	finishRun(res, opts)
	return nil
}

// finishRun drives the best-effort collaborators. Their failures are
// logged and swallowed; the scrub already succeeded.
func finishRun(res scrub.Result, opts runOptions) {
	if dryRunFlag || !res.Changed() {
		return
	}

	notify.Notify(res, opts.notify)

	if opts.audit {
		if err := appendHistory(res, opts.auditDB); err != nil {
			logger.Warn().Err(err).Msg("failed to record audit entry")
		}
	}
}

func appendHistory(res scrub.Result, dbPath string) error {
	if dbPath == "" {
		var err error
		dbPath, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Append(res)
	if err != nil {
		return err
	}

	logger.Info().
		Str("run_id", entry.RunID).
		Int("event_id", entry.EventID).
		Int("removed", entry.RemovedCount).
		Bool("nbsp_normalized", entry.NBSPNormalized).
		Msg("audit entry recorded")
	return nil
}
