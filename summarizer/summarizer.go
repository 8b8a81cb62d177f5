// Package summarizer turns aggregated review statistics into narrative text
// using the Gemini API.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"review-insight/config"
)

var ErrNotConfigured = errors.New("narrative generation is not configured")

// Request is a single prompt with its generation settings.
type Request struct {
	Purpose         string
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Result is the raw model reply plus usage data for ai_logs.
type Result struct {
	Text         string
	TokenUsage   TokenUsage
	ModelName    string
	ModelVersion string
	LatencyMs    int64
}

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

const SYSTEM_INSTRUCTION = `
You are a customer review analyst for an Indonesian online fashion store.
Answer ONLY with a single raw JSON object matching the structure requested in the prompt.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
All string values MUST be written in Bahasa Indonesia.
`

// GeminiGenerator calls the Gemini generateContent endpoint.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGenerator builds a generator from the llm config section. The HTTP
// client logs every outbound call.
func NewGeminiGenerator(ctx context.Context, cfg config.LLMConfig, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY environment variable is not set", ErrNotConfigured)
	}
	if cfg.Provider != "google" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: NewHTTPClient(0),
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, modelName: cfg.ModelName}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		MaxOutputTokens:   req.MaxOutputTokens,
	}
	if req.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(req.Temperature)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("empty response from model %s", g.modelName)
	}

	out := &Result{
		Text:         result.Text(),
		ModelName:    g.modelName,
		ModelVersion: result.ModelVersion,
		LatencyMs:    time.Since(startTime).Milliseconds(),
	}
	if result.UsageMetadata != nil {
		out.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// NewHTTPClient returns an http.Client whose transport logs each call.
// A zero timeout leaves deadlines to the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}
