package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/knowledge"
	"github.com/elee1766/chatsamples/src/oaiclient"
)

// fetchedDir holds pages fetched with --url. It only exists in memory.
const fetchedDir = "/knowledge"

// RetrievalCmd creates an assistant with file retrieval and asks it one question
type RetrievalCmd struct {
	Files          []string      `short:"f" default:"code-samples/openai-prompting-guide.txt" help:"Files to upload, relative to the repository root"`
	AssistantModel string        `default:"gpt-4-1106-preview" help:"Assistant model"`
	Name           string        `default:"test-assistant" help:"Assistant name"`
	Instructions   string        `default:"You are a prompt engineering assistant, you answer questions based on the provided retrieval context." help:"Assistant instructions"`
	URLs           []string      `name:"url" help:"Web pages to fetch, convert to markdown and upload alongside the files"`
	Question       string        `short:"q" default:"Tell me about prompt engineering." help:"Question to ask"`
	Wait           time.Duration `default:"2m" help:"How long to wait for the run to finish"`
}

func (c *RetrievalCmd) Run(ctx context.Context, cli *CLI) error {
	env, err := bootstrap(cli)
	if err != nil {
		return err
	}
	// local files are read through, fetched pages are written to memory
	env.fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(env.fs), afero.NewMemMapFs())
	client, err := env.client()
	if err != nil {
		return err
	}

	paths := make([]string, len(c.Files))
	for i, f := range c.Files {
		paths[i] = resolvePath(env.root, f)
	}
	if len(c.URLs) > 0 {
		fetcher := &knowledge.Fetcher{Fs: env.fs, Dir: fetchedDir, Logger: env.logger}
		fetched, err := fetcher.FetchAll(ctx, c.URLs)
		if err != nil {
			return err
		}
		paths = append(paths, fetched...)
	}

	con := newConsole(os.Stdin, os.Stdout)
	run, messages, err := runRetrieval(ctx, client, c, paths)
	if err != nil {
		return err
	}
	con.info("run status: %s", run.Status)
	if run.Status != oaiclient.RunCompleted {
		if run.LastError != nil {
			return fmt.Errorf("run %s ended %s: %s", run.ID, run.Status, run.LastError.Message)
		}
		return fmt.Errorf("run %s ended %s", run.ID, run.Status)
	}

	// messages are listed newest first
	for i := len(messages.Data) - 1; i >= 0; i-- {
		m := messages.Data[i]
		msg, err := aisdk.NewMessage(m.Role, m.Text())
		if err != nil {
			return err
		}
		con.message(msg)
	}
	return nil
}

func runRetrieval(ctx context.Context, client *oaiclient.Client, c *RetrievalCmd, paths []string) (*oaiclient.Run, *oaiclient.MessageList, error) {
	assistant, err := client.CreateAssistantWithFiles(ctx, oaiclient.AssistantRequest{
		Name:         c.Name,
		Instructions: c.Instructions,
		Model:        c.AssistantModel,
		Tools:        []oaiclient.AssistantTool{oaiclient.RetrievalTool},
	}, paths...)
	if err != nil {
		return nil, nil, err
	}

	thread, err := client.CreateThread(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := client.CreateThreadMessage(ctx, thread.ID, oaiclient.ThreadMessageRequest{
		Role:    string(aisdk.RoleUser),
		Content: c.Question,
	}); err != nil {
		return nil, nil, err
	}

	run, err := client.CreateRun(ctx, thread.ID, assistant.ID)
	if err != nil {
		return nil, nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.Wait)
	defer cancel()
	run, err = client.WaitForRun(waitCtx, thread.ID, run.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("waiting for run: %w", err)
	}

	messages, err := client.ListThreadMessages(ctx, thread.ID)
	if err != nil {
		return nil, nil, err
	}
	return run, messages, nil
}
