package cmd

import (
	"fmt"
	"os"

	"clipscrub/pkg/errors"
	"clipscrub/pkg/logger"

	"github.com/spf13/cobra"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

var (
	logLevel       string
	dryRunFlag     bool
	assumeYesFlag  bool
	keepFormatFlag bool
	keepNBSPFlag   bool
	noSoundFlag    bool
	noToastFlag    bool
	noAuditFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "clipscrub",
	Short: "Clipboard text sanitizer",
	Long: `Removes invisible and non-printing Unicode code points from the clipboard:
control characters, format marks (zero-width spaces, ZWJ, directional
overrides), lone surrogates, private-use and unassigned code points.
Non-breaking spaces become plain spaces; CR/LF always survive.

Running clipscrub with no subcommand scrubs the clipboard once.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("CLIPSCRUB_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("clipscrub version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle: runScrubCycle reads rootCmd's flags.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runScrubCycle()
	}

	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would change without writing the clipboard")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&keepFormatFlag, "keep-format-marks", false, "Keep format-category code points (ZWJ, ZWSP, directional marks)")
	rootCmd.PersistentFlags().BoolVar(&keepNBSPFlag, "keep-nbsp", false, "Keep non-breaking spaces unchanged")
	rootCmd.PersistentFlags().BoolVar(&noSoundFlag, "no-sound", false, "Suppress the audible cue")
	rootCmd.PersistentFlags().BoolVar(&noToastFlag, "no-toast", false, "Suppress the desktop notification")
	rootCmd.PersistentFlags().BoolVar(&noAuditFlag, "no-audit", false, "Skip the audit-history entry")
}
