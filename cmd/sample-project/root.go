package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var closeLog func() error

	rootCmd := &cobra.Command{
		Use:   "sample-project",
		Short: "Serve the sample application and measure it in a browser",
		Long: `Serve the sample application and measure it in a browser.

The application has a home page, an about page, a shallow routing demo and a
rendering heavy performance test page.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := newLogger(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}
			closeLog = closer
			slog.SetDefault(logger)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "also write JSON logs to this file")

	rootCmd.AddCommand(
		newServeCmd(),
		newMeasureCmd(),
		newInstallCmd(),
	)

	return rootCmd
}

// newLogger logs text to stderr and, with --log-file, JSON with debug level to the file.
func newLogger(stderr io.Writer, flags *globalFlags) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	closer := func() error { return nil }

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
