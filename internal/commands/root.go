package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// LogLevelEnv is the environment variable providing the default log level.
const LogLevelEnv = "JSONSCHEMA_BEAN_GENERATOR_LOG_LEVEL"

// app holds state shared by the commands of one invocation.
type app struct {
	getenv    func(string) string
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv, logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:           "jsonschema-bean-generator",
		Short:         "Generate Java beans from JSON schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn or error (default info, or $"+LogLevelEnv+")")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	registerGenerateCmd(rootCmd, a)
	registerCheckMappingsCmd(rootCmd, a)

	return rootCmd
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := NewRootCmd(getenv)
	return rootCmd.ExecuteContext(ctx)
}

func (a *app) newLogger(w io.Writer) (*slog.Logger, error) {
	name := a.logLevel
	if name == "" && a.getenv != nil {
		name = a.getenv(LogLevelEnv)
	}

	level := slog.LevelInfo
	if name != "" {
		err := level.UnmarshalText([]byte(name))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q", name)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(a.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q, expected text or json", a.logFormat)
	}
}
