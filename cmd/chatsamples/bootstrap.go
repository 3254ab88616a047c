package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/elee1766/chatsamples/src/config"
	"github.com/elee1766/chatsamples/src/oaiclient"
	"github.com/elee1766/chatsamples/src/storage"
)

// appEnv is everything a command needs, built once at startup.
type appEnv struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
	cfg    *config.Config
}

// bootstrap finds the repository root, loads the secrets file and reads the
// provider configuration. Any configuration problem ends the program.
func bootstrap(cli *CLI) (*appEnv, error) {
	logger := createCLILogger(cli.LogLevel)
	slog.SetDefault(logger)
	fs := afero.NewOsFs()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := config.FindRepoRoot(fs, cwd)
	if err != nil {
		if !errors.Is(err, config.ErrRepoRootNotFound) {
			return nil, err
		}
		logger.Debug("repository root not found, using working directory", "dir", cwd)
		root = cwd
	}

	if cli.SecretsFile != "" {
		path := resolvePath(root, cli.SecretsFile)
		keys, err := config.LoadSecrets(fs, path, os.Setenv)
		if err != nil {
			return nil, &config.ConfigError{Key: "secrets-file", Reason: err.Error(), Err: err}
		}
		logger.Debug("loaded secrets", "path", path, "keys", len(keys))
	}

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	if cli.Model != "" {
		cfg.Chat.Model = cli.Model
	}
	if cli.DB != "" {
		cfg.Storage.DatabasePath = cli.DB
	}
	if cli.Ephemeral {
		cfg.Storage.DatabasePath = storage.MemoryPath
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = config.GetDefaultDatabasePath()
	}

	logger.Info("configuration loaded",
		"provider", cfg.Provider.Type,
		"model", cfg.Chat.Model,
		"root", root)

	return &appEnv{fs: fs, root: root, logger: logger, cfg: cfg}, nil
}

// client builds the completion client for the selected provider.
func (a *appEnv) client() (*oaiclient.Client, error) {
	return oaiclient.New(oaiclient.Config{
		Provider: a.cfg.Provider,
		Logger:   a.logger,
		Fs:       a.fs,
	})
}

// openStore opens the transcript database.
func (a *appEnv) openStore() (*storage.DB, error) {
	db, err := storage.Open(a.cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", a.cfg.Storage.DatabasePath, err)
	}
	return db, nil
}

// startRecorder creates a conversation row for this run.
func (a *appEnv) startRecorder(ctx context.Context, db *storage.DB, title string) (*storage.TranscriptRecorder, error) {
	return storage.StartConversation(ctx, db.DB(), &storage.Conversation{
		Title:    title,
		Provider: string(a.cfg.Provider.Type),
		Model:    a.cfg.Chat.Model,
	})
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// maskAPIKey masks an API key for display
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
