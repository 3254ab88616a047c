package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/chat"
	"github.com/elee1766/chatsamples/src/storage"
)

// ChatCmd runs the persona chatbot
type ChatCmd struct {
	Who       string `arg:"" optional:"" help:"Who the chatbot impersonates. Asked for when omitted."`
	MaxTokens int    `default:"1024" help:"Max tokens per reply"`
	Resume    bool   `short:"r" help:"Continue the most recent conversation"`
}

func personaSeed(who string) ([]aisdk.Message, error) {
	who = strings.TrimSpace(who)
	if who == "" {
		return nil, &aisdk.MissingFieldError{Field: "who"}
	}
	return []aisdk.Message{
		aisdk.MustMessage(aisdk.RoleSystem, fmt.Sprintf(
			"You are a chatbot impersonating %s. You remain in character at all times, not breaking immersion.", who)),
		aisdk.MustMessage(aisdk.RoleAssistant,
			"I will initiate the conversation by greeting the user in a suitable, character-specific way."),
	}, nil
}

func (c *ChatCmd) Run(ctx context.Context, cli *CLI) error {
	env, err := bootstrap(cli)
	if err != nil {
		return err
	}
	client, err := env.client()
	if err != nil {
		return err
	}
	db, err := env.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	con := newConsole(os.Stdin, os.Stdout)

	var (
		seed     []aisdk.Message
		recorder *storage.TranscriptRecorder
	)
	if c.Resume {
		conv, err := storage.GetLatestConversation(ctx, db.DB())
		if err != nil {
			return err
		}
		if conv == nil {
			return fmt.Errorf("no conversation to resume")
		}
		transcript, err := storage.LoadTranscript(ctx, db.DB(), conv.ID)
		if err != nil {
			return err
		}
		seed = transcript.Messages()
		recorder = storage.NewTranscriptRecorder(db.DB(), conv.ID)
		con.info("resuming %q (%d messages)", conv.Title, len(seed))
	} else {
		who := c.Who
		if who == "" {
			var ok bool
			if who, ok = con.ask("Who do you want to chat with? "); !ok {
				return nil
			}
		}
		if seed, err = personaSeed(who); err != nil {
			return err
		}
		if recorder, err = env.startRecorder(ctx, db, "chat with "+strings.TrimSpace(who)); err != nil {
			return err
		}
		for _, msg := range seed {
			if err := recorder.Record(ctx, msg); err != nil {
				return err
			}
		}
	}

	sess := chat.NewSession(client, env.cfg.Chat.Model, seed...)
	sess.Params = env.cfg.Chat.Params()
	sess.Params.MaxTokens = c.MaxTokens
	sess.Recorder = recorder
	sess.Logger = env.logger.With("component", "chat")

	return runPersonaChat(ctx, sess, con)
}

// runPersonaChat alternates model replies and user input until the input ends
// or the user types exit.
func runPersonaChat(ctx context.Context, sess *chat.Session, con *console) error {
	for {
		reply, err := sess.Complete(ctx, nil)
		if err != nil {
			return err
		}
		con.message(reply.Message)

		line, ok := con.ask("You: ")
		if !ok || line == "exit" || line == "quit" {
			return nil
		}
		if err := sess.Add(ctx, string(aisdk.RoleUser), line); err != nil {
			return err
		}
	}
}
