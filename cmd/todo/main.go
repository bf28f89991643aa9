package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abatilo/todo/internal/config"
	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/logging"
	"github.com/abatilo/todo/internal/output"
	"github.com/abatilo/todo/internal/session"
	"github.com/abatilo/todo/internal/storage"
	"github.com/abatilo/todo/internal/store"
	"github.com/abatilo/todo/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	force      bool
	formatter  output.Formatter
	active     *env
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A small persistent task list",
		Long:  "todo - add, complete, search and reorder tasks from the command line or an interactive UI.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeEnv()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Ignore an open interactive session")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		doneCmd(),
		editCmd(),
		rmCmd(),
		clearCmd(),
		mvCmd(),
		progressCmd(),
		uiCmd(),
		configCmd(),
		sessionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is the per-invocation wiring: settings, logger and the storage
// directory the selected list lives in.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	base    string
	kv      storage.KV
	closeKV func() error
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	base, err := cfg.BasePath()
	if err != nil {
		return nil, err
	}
	log.Debug("using task list", "path", base, "scope", cfg.Scope, "backend", cfg.Backend)

	kv, closeKV, err := storage.Open(storage.Backend(cfg.Backend), base)
	if err != nil {
		return nil, err
	}
	active = &env{cfg: cfg, log: log, base: base, kv: kv, closeKV: closeKV}
	return active, nil
}

// closeEnv releases the storage opened by loadEnv, if any. It is safe to call
// more than once.
func closeEnv() {
	if active == nil {
		return
	}
	e := active
	active = nil
	if err := e.closeKV(); err != nil {
		e.log.Warn("closing storage failed", "error", err)
	}
}

func (e *env) open() *store.Store {
	return store.Open(e.kv, store.WithLogger(e.log), store.WithTheme(e.cfg.StartTheme()))
}

// writable opens the store for a mutating command. An interactive session
// holding the list blocks the write unless --force is set.
func writable() (*env, *store.Store) {
	e, err := loadEnv()
	if err != nil {
		printError(err)
	}
	if owner := session.Owner(e.base); owner != "" {
		if !force {
			printError(todoerrors.SessionActiveError{SessionID: owner})
		}
		e.log.Warn("writing while an interactive session is open", "session", owner)
	}
	return e, e.open()
}

func readable() *store.Store {
	e, err := loadEnv()
	if err != nil {
		printError(err)
	}
	return e.open()
}

func dialog() store.Dialog {
	return newTerminalDialog(os.Stdin, os.Stderr)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	closeEnv()
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

func requireID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		printError(MissingArgumentError{Name: "task id"})
	}
	return id
}

// addCmd implements 'todo add'.
func addCmd() *cobra.Command {
	var priority string
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			e, s := writable()

			p := e.cfg.Priority()
			if priority != "" {
				parsed, ok := task.ParsePriority(priority)
				if !ok {
					printError(todoerrors.InvalidPriorityError{Value: priority})
				}
				p = parsed
			}

			// The empty-text alert comes back as the returned error.
			t, err := s.Add(strings.Join(args, " "), p, &store.Scripted{})
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (high, medium, low; default from config)")
	return cmd
}

// listCmd implements 'todo list'.
func listCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Run: func(_ *cobra.Command, _ []string) {
			s := readable()
			s.Search(search)
			printOutput(formatter.FormatList(s.View()))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Show only tasks containing this text (case-insensitive)")
	return cmd
}

// doneCmd implements 'todo done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			_, s := writable()
			t, err := s.Toggle(requireID(args[0]))
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// editCmd implements 'todo edit'.
func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> [text...]",
		Short: "Replace a task's text (prompts when text is omitted)",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			_, s := writable()
			id := requireID(args[0])

			d := dialog()
			if len(args) > 1 {
				d = &store.Scripted{Text: strings.Join(args[1:], " ")}
			}

			changed, err := s.Edit(id, d)
			if err != nil {
				printError(err)
			}
			if !changed {
				printOutput(formatter.FormatMessage("Task unchanged"))
				return
			}
			t, err := s.Get(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// rmCmd implements 'todo rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			_, s := writable()
			id := requireID(args[0])
			if err := s.Delete(id); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Removed task %s", id)))
		},
	}
}

// clearCmd implements 'todo clear'.
func clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		Run: func(_ *cobra.Command, _ []string) {
			_, s := writable()

			d := dialog()
			if yes {
				d = &store.Scripted{Confirmed: true}
			}

			n := len(s.Tasks())
			cleared, err := s.ClearAll(d)
			if err != nil {
				printError(err)
			}
			if !cleared {
				printOutput(formatter.FormatMessage("Kept all tasks"))
				return
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Cleared %d task(s)", n)))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// mvCmd implements 'todo mv'.
func mvCmd() *cobra.Command {
	var before, after string
	cmd := &cobra.Command{
		Use:   "mv <id>",
		Short: "Move a task directly before or after another",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			_, s := writable()
			id := requireID(args[0])

			target, side := before, task.SideBefore
			if after != "" {
				target, side = after, task.SideAfter
			}

			if err := s.Move(id, strings.TrimSpace(target), side); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatList(s.View()))
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "Place the task before this task ID")
	cmd.Flags().StringVar(&after, "after", "", "Place the task after this task ID")
	cmd.MarkFlagsMutuallyExclusive("before", "after")
	cmd.MarkFlagsOneRequired("before", "after")
	return cmd
}

// progressCmd implements 'todo progress'.
func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the percentage of completed tasks",
		Run: func(_ *cobra.Command, _ []string) {
			printOutput(formatter.FormatProgress(readable().Progress()))
		},
	}
}
