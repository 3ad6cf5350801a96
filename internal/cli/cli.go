package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/buildwire/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds the defaults read from the environment. Flags override them.
type envConfig struct {
	Workspace string   `env:"BUILDWIRE_WORKSPACE"`
	Tasks     []string `env:"BUILDWIRE_TASKS" envSeparator:","`
	Describe  bool     `env:"BUILDWIRE_DESCRIBE"`
	LogFormat string   `env:"BUILDWIRE_LOG_FORMAT" envDefault:"json"`
	LogLevel  string   `env:"BUILDWIRE_LOG_LEVEL"  envDefault:"info"`
}

// taskList collects repeated -task flags. Each value may itself be a comma
// separated list.
type taskList struct {
	tasks []string
	set   bool
}

func (l *taskList) String() string {
	return strings.Join(l.tasks, ",")
}

func (l *taskList) Set(value string) error {
	if !l.set {
		l.tasks = nil
		l.set = true
	}
	for _, task := range strings.Split(value, ",") {
		task = strings.TrimSpace(task)
		if task == "" {
			return errors.New("task selector cannot be empty")
		}
		l.tasks = append(l.tasks, task)
	}
	return nil
}

// Parse processes command-line arguments on top of BUILDWIRE_* environment
// variables. It returns a populated Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("buildwire", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
buildwire - Configures a multi-module build: shared output root, evaluation
order, clean task and JVM target normalization.

Usage:
  buildwire [options] [WORKSPACE_PATH]

Arguments:
  WORKSPACE_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Environment:
  BUILDWIRE_WORKSPACE, BUILDWIRE_TASKS, BUILDWIRE_DESCRIBE,
  BUILDWIRE_LOG_FORMAT, BUILDWIRE_LOG_LEVEL provide defaults for the
  matching options.

Options:
`)
		flagSet.PrintDefaults()
	}

	tasks := &taskList{tasks: defaults.Tasks}
	workspaceFlag := flagSet.String("workspace", "", "Path to the workspace file or directory.")
	wFlag := flagSet.String("w", "", "Path to the workspace file or directory (shorthand).")
	flagSet.Var(tasks, "task", "Task to run after configuration, e.g. ':clean'. Repeatable; accepts a comma separated list.")
	describeFlag := flagSet.Bool("describe", defaults.Describe, "Print the effective configuration as HCL.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := defaults.Workspace
	if *workspaceFlag != "" {
		path = *workspaceFlag
	} else if *wFlag != "" {
		path = *wFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Workspace path determined.", "path", path)

	if path == "" {
		slog.Debug("No workspace path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		WorkspacePath: path,
		Tasks:         tasks.tasks,
		Describe:      *describeFlag,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
