package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/elee1766/chatsamples/src/banking"
	"github.com/elee1766/chatsamples/src/schema"
)

// ToolsCmd prints the tool specifications sent to the model
type ToolsCmd struct {
	Raw bool `help:"Print the model schemas before normalization"`
}

func (c *ToolsCmd) Run(ctx context.Context, cli *CLI) error {
	return printTools(os.Stdout, createCLILogger(cli.LogLevel), c.Raw)
}

func printTools(w io.Writer, logger *slog.Logger, raw bool) error {
	// building the toolbox does not touch the directory
	tb, err := banking.NewToolbox(banking.NewDirectory(nil, logger), logger)
	if err != nil {
		return err
	}

	if raw {
		for _, ps := range tb.Schemas() {
			data, err := schema.Dump(ps)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(data))
		}
		return nil
	}

	tools, err := tb.ChatTools()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(tools, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
