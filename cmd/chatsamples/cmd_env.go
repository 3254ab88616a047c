package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/elee1766/chatsamples/src/config"
)

// EnvCmd loads the environment and reports the selected provider
type EnvCmd struct{}

func (c *EnvCmd) Run(ctx context.Context, cli *CLI) error {
	env, err := bootstrap(cli)
	if err != nil {
		return err
	}
	printEnv(os.Stdout, env.root, hostDescription(ctx), env.cfg)
	return nil
}

// hostDescription names the platform the samples run on
func hostDescription(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info.Platform == "" {
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	if info.PlatformVersion != "" {
		return fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, info.KernelArch)
	}
	return fmt.Sprintf("%s (%s)", info.Platform, info.KernelArch)
}

func printEnv(w io.Writer, root, hostInfo string, cfg *config.Config) {
	fmt.Fprintf(w, "host:      %s\n", hostInfo)
	fmt.Fprintf(w, "root:      %s\n", root)
	fmt.Fprintf(w, "provider:  %s\n", cfg.Provider.Type)
	switch cfg.Provider.Type {
	case config.ProviderAzure:
		fmt.Fprintf(w, "endpoint:  %s\n", cfg.Provider.Endpoint)
		fmt.Fprintf(w, "version:   %s\n", cfg.Provider.APIVersion)
	case config.ProviderOpenAI:
		if cfg.Provider.BaseURL != "" {
			fmt.Fprintf(w, "base url:  %s\n", cfg.Provider.BaseURL)
		}
	}
	fmt.Fprintf(w, "api key:   %s\n", maskAPIKey(cfg.Provider.APIKey))
	fmt.Fprintf(w, "model:     %s\n", cfg.Chat.Model)
	fmt.Fprintf(w, "database:  %s\n", cfg.Storage.DatabasePath)
}
