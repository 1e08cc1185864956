package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(clipboardServeCmd)

	root.AddCommand(runCmd)
	root.AddCommand(pipeCmd)
	root.AddCommand(watchCmd)
	root.AddCommand(historyCmd)
	root.AddCommand(configCmd)

	historyCmd.AddCommand(
		historyListCmd,
		historyClearCmd,
	)

	configCmd.AddCommand(
		configShowCmd,
		configPathCmd,
		configInitCmd,
	)
}
