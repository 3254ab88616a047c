package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/config"
	"github.com/elee1766/chatsamples/src/oaiclient"
	"github.com/elee1766/chatsamples/src/theme"
)

// Exit codes following standard conventions
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error
	ExitUsage       = 2 // Usage error
	ExitConfig      = 3 // Configuration error
	ExitAuth        = 4 // Authentication error
	ExitInterrupted = 8 // Interrupted by user
)

// handleError reports err and exits with the matching code
func handleError(logger *slog.Logger, err error) {
	logger.Debug("command failed", "error", err)
	fmt.Fprintln(os.Stderr, theme.RenderError(err))
	os.Exit(exitCode(err))
}

// exitCode determines the appropriate exit code for an error
func exitCode(err error) int {
	var cfgErr *config.ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.Is(err, oaiclient.ErrNoAPIKey), oaiclient.IsAuthError(err):
		return ExitAuth
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, aisdk.ErrValidation):
		return ExitUsage
	default:
		return ExitError
	}
}
