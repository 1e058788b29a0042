package handler

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"xdgmimer/internal/eventbus"
)

// Service is a stateless adapter over the external default-handler
// registry. The registry is externally mutable between calls, so
// results are never cached.
type Service interface {
	// Query returns the current default handler for a mime type. The
	// second return is false when no default is set, which covers any
	// invocation failure as well: "no default" is a normal result,
	// never an error.
	Query(ctx context.Context, mimeType string) (string, bool)

	// SetDefault asks the registry to make handler the default for a
	// mime type. Best effort, fire and forget: the outcome is not
	// propagated and no retry is attempted. The authoritative state
	// lives outside this process and is observed on the next Query.
	SetDefault(ctx context.Context, mimeType, handler string)

	// Available reports whether the registry tool can be found.
	Available() bool
}

// xdgMimeService shells out to xdg-mime (or a configured substitute).
type xdgMimeService struct {
	bus  eventbus.EventBus
	tool string
}

// NewXdgMimeService creates a gateway backed by the given tool binary.
func NewXdgMimeService(bus eventbus.EventBus, tool string) Service {
	if tool == "" {
		tool = "xdg-mime"
	}
	return &xdgMimeService{bus: bus, tool: tool}
}

// Query runs `<tool> query default <mime>`.
func (s *xdgMimeService) Query(ctx context.Context, mimeType string) (string, bool) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, s.tool, "query", "default", mimeType)
	output, err := cmd.Output()
	handler := strings.TrimSpace(string(output))
	ok := err == nil && handler != ""

	s.publish(eventbus.CommandExecutedEvent{
		Tool:     s.tool,
		Verb:     "query",
		MimeType: mimeType,
		Handler:  handler,
		Success:  ok,
		Output:   handler,
		Duration: time.Since(start).Milliseconds(),
	})

	if !ok {
		return "", false
	}
	return handler, true
}

// SetDefault runs `<tool> default <handler> <mime>`.
func (s *xdgMimeService) SetDefault(ctx context.Context, mimeType, handler string) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, s.tool, "default", handler, mimeType)
	output, err := cmd.CombinedOutput()

	s.publish(eventbus.CommandExecutedEvent{
		Tool:     s.tool,
		Verb:     "default",
		MimeType: mimeType,
		Handler:  handler,
		Success:  err == nil,
		Output:   strings.TrimSpace(string(output)),
		Duration: time.Since(start).Milliseconds(),
	})
}

// Available checks the tool binary is on PATH.
func (s *xdgMimeService) Available() bool {
	_, err := exec.LookPath(s.tool)
	return err == nil
}

func (s *xdgMimeService) publish(event eventbus.CommandExecutedEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
