package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nimbusctl/nbsh/internal/catalog"
	"github.com/nimbusctl/nbsh/internal/cli"
	"github.com/nimbusctl/nbsh/internal/completion"
	"github.com/nimbusctl/nbsh/internal/core"
)

var BUILD_VERSION = "dev"

func main() {
	logger, err := initializeLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	// Bootstrap must finish before any command can query the registry:
	// custom domains, then unregistered API domains, then extensions.
	registry := completion.NewRegistry()
	if err := catalog.Bootstrap(registry, logger); err != nil {
		logger.Error("bootstrap failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "nbsh: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(registry, logger, BUILD_VERSION)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "nbsh: %v\n", err)
		os.Exit(1)
	}
}

func initializeLogger() (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	if BUILD_VERSION == "dev" {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	// Logs go to file only so generated completion scripts on stdout stay
	// clean enough to source directly.
	return loggerConfig.Build()
}
