package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abatilo/todo/internal/config"
)

// configCmd implements 'todo config' command group.
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(configInitCmd(), configPathCmd())
	return cmd
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// configInitCmd implements 'todo config init'.
func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Run: func(_ *cobra.Command, _ []string) {
			path := resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				printError(ConfigExistsError{Path: path})
			}
			if err := config.Write(path, config.Default()); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Wrote config to %s", path)))
		},
	}
}

// configPathCmd implements 'todo config path'.
func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file and task list locations",
		Run: func(_ *cobra.Command, _ []string) {
			e, err := loadEnv()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("config: %s\ndata:   %s", resolvedConfigPath(), e.base)))
		},
	}
}
