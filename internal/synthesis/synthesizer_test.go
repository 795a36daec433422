package synthesis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"sales-assistant/internal/llm"
	"sales-assistant/internal/model"
)

type fakeLLM struct {
	resp     llm.Response
	err      error
	lastMsgs []llm.Message
}

func (f *fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	f.lastMsgs = msgs
	return f.resp, f.err
}

func TestSynthesize_ReturnsTrimmedQuery(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "  submersible pump kenya dayliff \n"}}
	s := New(f)

	query, err := s.Synthesize(context.Background(), []model.Message{{Text: "need a pump for my borehole"}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if query != "submersible pump kenya dayliff" {
		t.Fatalf("unexpected query: %q", query)
	}
}

func TestSynthesize_PromptNumbersRecentMessages(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "solar pump kit"}}
	s := New(f)

	msgs := []model.Message{
		{Text: "nina shamba ndogo"},
		{Text: "looking for irrigation"},
	}
	if _, err := s.Synthesize(context.Background(), msgs); err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	if len(f.lastMsgs) != 1 {
		t.Fatalf("expected a single prompt message, got %d", len(f.lastMsgs))
	}
	prompt := f.lastMsgs[0].Content
	if !strings.Contains(prompt, "1. nina shamba ndogo") || !strings.Contains(prompt, "2. looking for irrigation") {
		t.Fatalf("messages not numbered in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Davis & Shirtliff") || !strings.Contains(prompt, `"brands"`) {
		t.Fatalf("catalog reference missing from prompt")
	}
}

func TestSynthesize_UpstreamFailureIsAnError(t *testing.T) {
	f := &fakeLLM{err: fmt.Errorf("model unavailable")}
	s := New(f)

	query, err := s.Synthesize(context.Background(), []model.Message{{Text: "hi"}})
	if err == nil {
		t.Fatalf("expected error on upstream failure")
	}
	if query != "" {
		t.Fatalf("query must be empty on failure, got %q", query)
	}
}

func TestSynthesize_NoMessagesNoSignal(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "should not be called"}}
	s := New(f)

	query, err := s.Synthesize(context.Background(), nil)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if query != "" {
		t.Fatalf("expected no signal for empty history, got %q", query)
	}
	if f.lastMsgs != nil {
		t.Fatalf("LLM must not be called for empty history")
	}
}
