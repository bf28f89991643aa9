package main

import (
	"github.com/spf13/cobra"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/session"
	"github.com/abatilo/todo/internal/tui"
)

const uiSource = "tui"

// uiCmd implements 'todo ui'.
func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task list",
		Run: func(_ *cobra.Command, _ []string) {
			e, err := loadEnv()
			if err != nil {
				printError(err)
			}
			base := e.base
			id := session.NewID()

			claimed, owner, err := session.Claim(base, id, uiSource)
			if err != nil {
				printError(err)
			}
			if !claimed {
				if !force {
					printError(todoerrors.SessionActiveError{SessionID: owner})
				}
				e.log.Warn("taking over interactive session", "previous", owner)
				if err = session.Delete(base); err != nil {
					printError(err)
				}
				if _, _, err = session.Claim(base, id, uiSource); err != nil {
					printError(err)
				}
			}
			e.log.Debug("claimed session", "session", id)

			runErr := tui.Run(e.open(), e.cfg.Priority())
			closeEnv()
			if _, err = session.Release(base, id); err != nil {
				e.log.Warn("releasing session failed", "session", id, "error", err)
			}
			if runErr != nil {
				printError(runErr)
			}
		},
	}
}

// sessionCmd implements 'todo session' command group.
func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the interactive session claim",
	}
	cmd.AddCommand(sessionShowCmd(), sessionPruneCmd())
	return cmd
}

// sessionShowCmd implements 'todo session show'.
func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show which session holds the task list",
		Run: func(_ *cobra.Command, _ []string) {
			e, err := loadEnv()
			if err != nil {
				printError(err)
			}
			owner := session.Owner(e.base)
			if owner == "" {
				printOutput(formatter.FormatMessage("No active session"))
				return
			}
			printOutput(formatter.FormatMessage("Held by session " + owner))
		},
	}
}

// sessionPruneCmd implements 'todo session prune'.
func sessionPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove a stale session file (manual cleanup)",
		Run: func(_ *cobra.Command, _ []string) {
			e, err := loadEnv()
			if err != nil {
				printError(err)
			}

			if !session.Exists(e.base) {
				printOutput(formatter.FormatMessage("No session file to prune"))
				return
			}

			if deleteErr := session.Delete(e.base); deleteErr != nil {
				printError(deleteErr)
			}

			printOutput(formatter.FormatMessage("Session file pruned"))
		},
	}
}
