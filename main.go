package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/teichholz/texte/application"
	"github.com/teichholz/texte/config"
	"github.com/teichholz/texte/terminal"
)

var version = "0.1.0"

var errNotTerminal = errors.New("stdin is not a terminal")

func NewLogger(path string) (*log.Logger, io.Closer, error) {
	// Open a file for logging
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(file, "", log.LstdFlags|log.Lshortfile), file, nil
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		logFile string
	)

	cmd := &cobra.Command{
		Use:          "texte [file]",
		Short:        "A minimal terminal text editor",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return run(file, cfgFile, logFile)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/texte/config.json)")
	cmd.Flags().StringVar(&logFile, "log", filepath.Join(os.TempDir(), "texte.log"),
		"file to write the debug log to")
	return cmd
}

func run(file, cfgFile, logFile string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	logger, closer, err := NewLogger(logFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	cfg := config.NewConfig(logger)
	if err := cfg.Init(cfgFile); err != nil {
		return err
	}

	t, err := terminal.Open()
	if err != nil {
		return err
	}
	// You have to catch panics in a defer, clean up, and
	// re-raise them - otherwise your application can
	// die without leaving any diagnostic trace.
	defer t.Close()

	if err := cfg.Watch(func(config.EditorConfig) { t.Interrupt() }); err != nil {
		logger.Printf("Config reload disabled: %v", err)
	}
	defer cfg.Cleanup()

	application.New(t, cfg, logger, application.Options{Path: file, Version: version}).Run()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
