package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

// RootCmd represents the base "doboz" command.
var RootCmd = &cobra.Command{
	Use:          "doboz",
	Short:        "Compress and decompress files using the doboz container format",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level: debug, info, warn, error")
}

func parseLogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(logLevel)
}

func newLogger(verbose bool) (*logrus.Logger, error) {
	level, err := parseLogLevel()
	if err != nil {
		return nil, err
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(level)
	return log, nil
}
