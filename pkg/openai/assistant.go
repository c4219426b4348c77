package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RunAssistant runs a single message through the pre-provisioned assistant:
// create a throwaway thread, post the message, start a run, poll until the
// run settles, read the newest assistant message, delete the thread.
func (c *Client) RunAssistant(ctx context.Context, message string) (string, error) {
	if c.assistantID == "" {
		return "", fmt.Errorf("no assistant configured")
	}

	var thread Thread
	if err := c.do(ctx, http.MethodPost, "/threads", map[string]any{}, &thread, true); err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	// Threads are single-use; clean up regardless of outcome.
	defer c.deleteThread(thread.ID)

	msgBody := map[string]any{"role": "user", "content": message}
	if err := c.do(ctx, http.MethodPost, "/threads/"+thread.ID+"/messages", msgBody, nil, true); err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}

	runBody := map[string]any{"assistant_id": c.assistantID}
	var run Run
	if err := c.do(ctx, http.MethodPost, "/threads/"+thread.ID+"/runs", runBody, &run, true); err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}

	run, err := c.waitForRun(ctx, thread.ID, run)
	if err != nil {
		return "", err
	}
	if run.Status != RunStatusCompleted {
		return "", fmt.Errorf("run ended with status %s", run.Status)
	}

	var list ThreadMessageList
	if err := c.do(ctx, http.MethodGet, "/threads/"+thread.ID+"/messages", nil, &list, true); err != nil {
		return "", fmt.Errorf("failed to list messages: %w", err)
	}

	// Messages come newest first; the first assistant entry is the reply.
	for _, m := range list.Data {
		if m.Role != "assistant" {
			continue
		}
		for _, block := range m.Content {
			if block.Type == "text" && block.Text.Value != "" {
				return block.Text.Value, nil
			}
		}
	}

	return "", fmt.Errorf("run completed without assistant reply")
}

// waitForRun polls the run until it leaves queued/in_progress or the wait
// budget is exhausted.
func (c *Client) waitForRun(ctx context.Context, threadID string, run Run) (Run, error) {
	deadline := time.Now().Add(runMaxWait)

	for run.Status == RunStatusQueued || run.Status == RunStatusInProgress {
		if time.Now().After(deadline) {
			return run, fmt.Errorf("run %s did not finish within %s", run.ID, runMaxWait)
		}

		select {
		case <-time.After(runPollInterval):
		case <-ctx.Done():
			return run, ctx.Err()
		}

		if err := c.do(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+run.ID, nil, &run, true); err != nil {
			return run, fmt.Errorf("failed to poll run: %w", err)
		}
	}

	return run, nil
}

// deleteThread is best-effort cleanup; the caller's result does not depend
// on it.
func (c *Client) deleteThread(threadID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.do(ctx, http.MethodDelete, "/threads/"+threadID, nil, nil, true)
}
