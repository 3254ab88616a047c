package oaiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const assistantsBeta = "assistants=v1"

// File is an uploaded file.
type File struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Bytes     int64  `json:"bytes"`
	CreatedAt int64  `json:"created_at"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose"`
}

// AssistantTool enables a built-in capability such as retrieval.
type AssistantTool struct {
	Type string `json:"type"`
}

// RetrievalTool lets an assistant search its attached files.
var RetrievalTool = AssistantTool{Type: "retrieval"}

// AssistantRequest creates an assistant.
type AssistantRequest struct {
	Name         string          `json:"name,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	Model        string          `json:"model"`
	Tools        []AssistantTool `json:"tools,omitempty"`
	FileIDs      []string        `json:"file_ids,omitempty"`
}

// Assistant is a configured assistant.
type Assistant struct {
	ID           string          `json:"id"`
	Object       string          `json:"object"`
	CreatedAt    int64           `json:"created_at"`
	Name         string          `json:"name"`
	Instructions string          `json:"instructions"`
	Model        string          `json:"model"`
	Tools        []AssistantTool `json:"tools"`
	FileIDs      []string        `json:"file_ids"`
}

// Thread holds the messages of one assistant conversation.
type Thread struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
}

// ThreadMessageRequest adds a message to a thread. Threads only accept user messages.
type ThreadMessageRequest struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	FileIDs []string `json:"file_ids,omitempty"`
}

type MessageText struct {
	Value string `json:"value"`
}

type MessageContent struct {
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

// ThreadMessage is a message stored in a thread.
type ThreadMessage struct {
	ID          string           `json:"id"`
	Object      string           `json:"object"`
	CreatedAt   int64            `json:"created_at"`
	ThreadID    string           `json:"thread_id"`
	Role        string           `json:"role"`
	Content     []MessageContent `json:"content"`
	AssistantID string           `json:"assistant_id,omitempty"`
	RunID       string           `json:"run_id,omitempty"`
}

// Text joins the text parts of the message.
func (m ThreadMessage) Text() string {
	var parts []string
	for _, c := range m.Content {
		if c.Type == "text" && c.Text != nil {
			parts = append(parts, c.Text.Value)
		}
	}
	return strings.Join(parts, "\n")
}

// MessageList is a page of thread messages, newest first.
type MessageList struct {
	Object  string          `json:"object"`
	Data    []ThreadMessage `json:"data"`
	FirstID string          `json:"first_id"`
	LastID  string          `json:"last_id"`
	HasMore bool            `json:"has_more"`
}

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunQueued         RunStatus = "queued"
	RunInProgress     RunStatus = "in_progress"
	RunRequiresAction RunStatus = "requires_action"
	RunCancelling     RunStatus = "cancelling"
	RunCancelled      RunStatus = "cancelled"
	RunFailed         RunStatus = "failed"
	RunCompleted      RunStatus = "completed"
	RunExpired        RunStatus = "expired"
)

// Settled reports whether the run will not progress without the caller.
func (s RunStatus) Settled() bool {
	switch s {
	case RunQueued, RunInProgress, RunCancelling:
		return false
	}
	return true
}

type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Run executes an assistant on a thread.
type Run struct {
	ID          string    `json:"id"`
	Object      string    `json:"object"`
	CreatedAt   int64     `json:"created_at"`
	ThreadID    string    `json:"thread_id"`
	AssistantID string    `json:"assistant_id"`
	Status      RunStatus `json:"status"`
	Model       string    `json:"model"`
	LastError   *RunError `json:"last_error,omitempty"`
}

// UploadFile uploads a local file for use by assistants.
func (c *Client) UploadFile(ctx context.Context, path string) (*File, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("purpose", "assistants"); err != nil {
		return nil, err
	}
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint.url("files"), &body, false)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var file File
	if err := c.send(req, &file); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", path, err)
	}
	c.logger.Info("uploaded file", "file_id", file.ID, "filename", file.Filename, "bytes", file.Bytes)
	return &file, nil
}

// CreateAssistant creates an assistant.
func (c *Client) CreateAssistant(ctx context.Context, req AssistantRequest) (*Assistant, error) {
	var assistant Assistant
	if err := c.do(ctx, http.MethodPost, c.endpoint.url("assistants"), req, &assistant, true); err != nil {
		return nil, err
	}
	c.logger.Info("created assistant", "assistant_id", assistant.ID, "model", assistant.Model)
	return &assistant, nil
}

// CreateAssistantWithFiles uploads paths in order and creates an assistant
// that can retrieve from them.
func (c *Client) CreateAssistantWithFiles(ctx context.Context, req AssistantRequest, paths ...string) (*Assistant, error) {
	for _, path := range paths {
		file, err := c.UploadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		req.FileIDs = append(req.FileIDs, file.ID)
	}
	return c.CreateAssistant(ctx, req)
}

// CreateThread starts an empty thread.
func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	var thread Thread
	if err := c.do(ctx, http.MethodPost, c.endpoint.url("threads"), struct{}{}, &thread, true); err != nil {
		return nil, err
	}
	return &thread, nil
}

// CreateThreadMessage appends a message to a thread.
func (c *Client) CreateThreadMessage(ctx context.Context, threadID string, req ThreadMessageRequest) (*ThreadMessage, error) {
	if req.Role == "" {
		req.Role = "user"
	}
	var msg ThreadMessage
	path := "threads/" + url.PathEscape(threadID) + "/messages"
	if err := c.do(ctx, http.MethodPost, c.endpoint.url(path), req, &msg, true); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateRun starts the assistant on the thread.
func (c *Client) CreateRun(ctx context.Context, threadID, assistantID string) (*Run, error) {
	var run Run
	path := "threads/" + url.PathEscape(threadID) + "/runs"
	body := struct {
		AssistantID string `json:"assistant_id"`
	}{assistantID}
	if err := c.do(ctx, http.MethodPost, c.endpoint.url(path), body, &run, true); err != nil {
		return nil, err
	}
	c.logger.Debug("created run", "run_id", run.ID, "status", run.Status)
	return &run, nil
}

// RetrieveRun fetches the current state of a run.
func (c *Client) RetrieveRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var run Run
	path := "threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID)
	if err := c.do(ctx, http.MethodGet, c.endpoint.url(path), nil, &run, true); err != nil {
		return nil, err
	}
	return &run, nil
}

// WaitForRun polls a run until it settles or ctx is done. On ctx expiry the
// last observed run is returned alongside the context error.
func (c *Client) WaitForRun(ctx context.Context, threadID, runID string) (*Run, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var last *Run
	for {
		run, err := c.RetrieveRun(ctx, threadID, runID)
		if err != nil {
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			return nil, err
		}
		last = run
		c.logger.Debug("polled run", "run_id", run.ID, "status", run.Status)
		if run.Status.Settled() {
			return run, nil
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}

// ListThreadMessages returns the messages of a thread, newest first.
func (c *Client) ListThreadMessages(ctx context.Context, threadID string) (*MessageList, error) {
	var list MessageList
	path := "threads/" + url.PathEscape(threadID) + "/messages"
	if err := c.do(ctx, http.MethodGet, c.endpoint.url(path), nil, &list, true); err != nil {
		return nil, err
	}
	return &list, nil
}
