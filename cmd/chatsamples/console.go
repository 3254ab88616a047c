package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/chat"
	"github.com/elee1766/chatsamples/src/theme"
)

// console is the terminal side of a conversation.
type console struct {
	out io.Writer
	in  *bufio.Scanner
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{out: out, in: bufio.NewScanner(in)}
}

func (c *console) message(msg aisdk.Message) {
	fmt.Fprintln(c.out, theme.RenderMessage(msg))
}

func (c *console) toolCalls(calls []aisdk.ToolCall) {
	for _, call := range calls {
		fmt.Fprintln(c.out, theme.RenderToolCall(call))
	}
}

func (c *console) toolResults(results []chat.ToolResult) {
	for _, r := range results {
		fmt.Fprintln(c.out, theme.RenderToolResult(r.Name, r.Content, r.IsError))
	}
}

func (c *console) info(format string, args ...any) {
	fmt.Fprintln(c.out, theme.Muted(fmt.Sprintf(format, args...)))
}

// ask prints label and reads one line. ok is false at end of input.
func (c *console) ask(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
