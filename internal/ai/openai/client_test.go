package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spigell/cv-assistant/internal/ai"
)

type fakeCompletions struct {
	resp *openai.ChatCompletion
	err  error

	params openai.ChatCompletionNewParams
}

func (f *fakeCompletions) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.params = body
	return f.resp, f.err
}

func completion(contents ...string) *openai.ChatCompletion {
	resp := &openai.ChatCompletion{}
	for _, c := range contents {
		choice := openai.ChatCompletionChoice{}
		choice.Message.Content = c
		resp.Choices = append(resp.Choices, choice)
	}
	return resp
}

func TestGenerate(t *testing.T) {
	fake := &fakeCompletions{resp: completion(` {"skills":[]} `)}
	g := newGenerator(fake, "")

	out, err := g.Generate(context.Background(), ai.Request{System: "sys", Prompt: "analyze", Temperature: 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != `{"skills":[]}` {
		t.Fatalf("unexpected output %q", out)
	}
	if fake.params.Model != defaultModel {
		t.Fatalf("expected default model, got %q", fake.params.Model)
	}
	if fake.params.ResponseFormat.OfJSONObject == nil {
		t.Fatalf("expected json_object response format")
	}
	if len(fake.params.Messages) != 2 || fake.params.Messages[0].OfSystem == nil || fake.params.Messages[1].OfUser == nil {
		t.Fatalf("expected system and user messages, got %d", len(fake.params.Messages))
	}
	if fake.params.Temperature.Value != float64(float32(0.2)) {
		t.Fatalf("unexpected temperature %v", fake.params.Temperature.Value)
	}
}

func TestGenerateWithoutSystem(t *testing.T) {
	fake := &fakeCompletions{resp: completion(`{}`)}
	g := newGenerator(fake, "gpt-x")

	if _, err := g.Generate(context.Background(), ai.Request{Prompt: "p"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.params.Messages) != 1 || fake.params.Messages[0].OfUser == nil {
		t.Fatalf("expected only the user message")
	}
	if fake.params.Model != "gpt-x" {
		t.Fatalf("unexpected model %q", fake.params.Model)
	}
}

func TestGenerateErrors(t *testing.T) {
	callErr := errors.New("rate limited")

	cases := []struct {
		name    string
		fake    *fakeCompletions
		prompt  string
		wantErr string
		wantIs  error
	}{
		{name: "api error", fake: &fakeCompletions{err: callErr}, prompt: "p", wantIs: callErr},
		{name: "no choices", fake: &fakeCompletions{resp: completion()}, prompt: "p", wantErr: "no choices"},
		{name: "nil response", fake: &fakeCompletions{}, prompt: "p", wantErr: "no choices"},
		{name: "empty content", fake: &fakeCompletions{resp: completion("  ")}, prompt: "p", wantIs: ai.ErrEmptyResponse},
		{name: "empty prompt", fake: &fakeCompletions{resp: completion("{}")}, prompt: "  ", wantErr: "prompt must not be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGenerator(tc.fake, "")

			_, err := g.Generate(context.Background(), ai.Request{Prompt: tc.prompt})
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantErr != "" && !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Fatalf("expected %v, got %v", tc.wantIs, err)
			}
		})
	}
}

func TestGenerateOverHTTP(t *testing.T) {
	var got map[string]any
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-test","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	t.Cleanup(server.Close)

	g, err := NewGenerator("test-key", "gpt-test", server.URL, server.Client())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := g.Generate(context.Background(), ai.Request{System: "sys", Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected output %q", out)
	}

	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", got["response_format"])
	}
	if got["model"] != "gpt-test" {
		t.Fatalf("unexpected model %v", got["model"])
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestGenerateOverHTTPDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	g, err := NewGenerator("test-key", "", server.URL, server.Client())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.Generate(context.Background(), ai.Request{Prompt: "p"}); err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected no retries, got %d calls", calls)
	}
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGenerator("  ", "", "", nil); err == nil {
		t.Fatalf("expected error for empty key")
	}

	g, err := NewGenerator("k", "gpt-x", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Model() != "gpt-x" {
		t.Fatalf("unexpected model %q", g.Model())
	}
}
