package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands once the root pre-run has
// loaded configuration.
type app struct {
	// configDir is where the ddbclone.yaml lookup starts. Defaults to the
	// working directory.
	configDir string

	cfg      Config
	logger   *zap.Logger
	closeLog func() error

	logLevel string
	logFile  string
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ddbclone",
		Short:         "Copy the schema of a DynamoDB table into a new table",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "also write logs to this file, rotated")

	rootCmd.AddCommand(
		newCloneCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	dir := a.configDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := a.logLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	file := a.logFile
	if !cmd.Flags().Changed("log-file") && cfg.LogFile != "" {
		file = cfg.LogFile
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), level, file)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog
	return nil
}

// close flushes the logger. It runs whether or not the command succeeded.
func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ddbclone version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ddbclone version %s\n", version)
		},
	}
}
