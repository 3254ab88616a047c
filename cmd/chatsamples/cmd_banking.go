package main

import (
	"context"
	"os"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/banking"
	"github.com/elee1766/chatsamples/src/chat"
	"github.com/elee1766/chatsamples/src/toolbox"
)

// BankingCmd runs the banking assistant conversation
type BankingCmd struct {
	Interactive bool `short:"i" help:"Read user turns from stdin instead of the built-in script"`
}

func (c *BankingCmd) Run(ctx context.Context, cli *CLI) error {
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

	dir := banking.NewDirectory(db.DB(), env.logger)
	if err := dir.Seed(ctx); err != nil {
		return err
	}
	tb, err := banking.NewToolbox(dir, env.logger)
	if err != nil {
		return err
	}

	recorder, err := env.startRecorder(ctx, db, "banking assistant")
	if err != nil {
		return err
	}

	sess := chat.NewSession(client, env.cfg.Chat.Model)
	sess.Params = env.cfg.Chat.Params()
	sess.Recorder = recorder
	sess.Logger = env.logger.With("component", "chat")
	for _, msg := range banking.Seed() {
		if err := sess.AddMessage(ctx, msg); err != nil {
			return err
		}
	}

	con := newConsole(os.Stdin, os.Stdout)
	var turns userTurns = scriptedTurns(banking.ScriptedUserTurns)
	if c.Interactive {
		turns = func() (string, bool) { return con.ask("You: ") }
	}
	return runBankingConversation(ctx, sess, tb, turns, con)
}

// userTurns yields the next user line; ok is false when there are no more.
type userTurns func() (line string, ok bool)

func scriptedTurns(lines []string) userTurns {
	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		i++
		return lines[i-1], true
	}
}

// runBankingConversation greets the user without tools, then for every user
// turn offers the tools once. When the model asks for tools they are run, the
// results are appended and the model answers again without tools.
func runBankingConversation(ctx context.Context, sess *chat.Session, tb *toolbox.Toolbox, turns userTurns, con *console) error {
	tools, err := tb.ChatTools()
	if err != nil {
		return err
	}

	greeting, err := sess.Complete(ctx, nil)
	if err != nil {
		return err
	}
	con.message(greeting.Message)

	for {
		line, ok := turns()
		if !ok || line == "exit" || line == "quit" {
			return nil
		}
		user, err := aisdk.NewMessage(string(aisdk.RoleUser), line)
		if err != nil {
			return err
		}
		if err := sess.AddMessage(ctx, user); err != nil {
			return err
		}
		con.message(user)

		reply, err := sess.Complete(ctx, tools)
		if err != nil {
			return err
		}
		if !reply.HasToolCalls() {
			con.message(reply.Message)
			continue
		}

		con.toolCalls(reply.ToolCalls)
		results, err := tb.ExecuteAll(ctx, reply.ToolCalls)
		if err != nil {
			return err
		}
		con.toolResults(results)
		if err := sess.AddToolResults(ctx, results); err != nil {
			return err
		}

		followUp, err := sess.Complete(ctx, nil)
		if err != nil {
			return err
		}
		con.message(followUp.Message)
	}
}
