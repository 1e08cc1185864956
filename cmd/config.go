package cmd

import (
	"fmt"
	"os"

	"clipscrub/pkg/config"
	"clipscrub/pkg/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clipscrub configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the merged configuration: file values with environment overrides applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to render config", err)
		}

		fmt.Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}

		if _, err := os.Stat(path); err == nil {
			return errors.NewWithSuggestion(errors.ExitCodeConfig,
				fmt.Sprintf("config file already exists at %s", path),
				"Edit it directly, or delete it and run 'clipscrub config init' again.")
		}

		if err := config.Save(&config.Config{}); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
