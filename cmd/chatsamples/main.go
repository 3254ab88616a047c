package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

// CLI represents the main CLI structure
type CLI struct {
	SecretsFile string `default:".env" help:"Secrets file, relative to the repository root. Empty skips loading."`
	LogLevel    string `default:"warn" enum:"debug,info,warn,warning,error" help:"Log level"`
	Model       string `short:"m" help:"Model (openai) or deployment name (azure). Overrides CHAT_MODEL."`
	DB          string `name:"db" help:"Transcript database path. Defaults to CHATSAMPLES_DB or the XDG state directory."`
	Ephemeral   bool   `help:"Keep transcripts in memory only"`

	Chat      ChatCmd      `cmd:"" help:"Chat with a chatbot impersonating someone"`
	Banking   BankingCmd   `cmd:"" help:"Run the banking assistant function-calling conversation"`
	Retrieval RetrievalCmd `cmd:"" help:"Ask an assistant about an uploaded file"`
	Tools     ToolsCmd     `cmd:"" help:"Print the banking tool specifications"`
	Env       EnvCmd       `cmd:"" help:"Load secrets and show the selected provider"`
}

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chatsamples"),
		kong.Description("Chat completion samples for OpenAI and Azure OpenAI"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)

	err := ctx.Run(&cli)
	if err != nil {
		stop()
		handleError(createCLILogger(cli.LogLevel), err)
	}
}
