package ai

import (
	"context"
	"errors"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrEmptyResponse is returned by generators when the model produced no text.
var ErrEmptyResponse = errors.New("model returned empty response")

// Request is a single completion asking for a JSON answer.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
}

// Generator sends one prompt to a language model and returns its raw text answer.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
}
