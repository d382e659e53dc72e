package main

import (
	"errors"
	"fmt"
	"os"

	"biasai-icongen/internal/appicon"
	"biasai-icongen/internal/config"
	"biasai-icongen/internal/logging"

	flags "github.com/jessevdk/go-flags"
)

func main() {
	opts, err := config.ParseOptions()
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.Validate(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(opts.Debug)
	os.Exit(run(opts, logger))
}

func run(opts config.Options, logger *logging.Logger) int {
	lockPath := exportLockPath(opts.OutputDir)
	lock, lockedByOther, err := acquireExportLock(lockPath)
	switch {
	case err != nil:
		logger.Warn("export lock unavailable, continuing without it",
			logging.Field("lock", lockPath),
			logging.Field("error", err),
		)
	case lockedByOther:
		logger.Error("another icon export into this directory is already running", logging.Field("lock", lockPath))
		return 1
	default:
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release export lock", logging.Field("error", err))
			}
		}()
	}

	exporter := appicon.NewExporter(appicon.ExporterOptions{OutputDir: opts.OutputDir}, logger)
	if _, err := exporter.Export(); err != nil {
		logger.Error("icon export failed", logging.Field("error", err))
		return 1
	}
	return 0
}
