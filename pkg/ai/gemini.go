package ai

import (
	"context"
	"fmt"
	"strings"

	"crux/pkg/prompts"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator issues a single schema-constrained generation request.
// The gateway depends on this interface so failures can be simulated
// in tests without a live model.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema, opts prompts.GenerationOptions) (string, error)
}

// geminiGenerator backs Generator with the Gemini API
type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGenerator creates a Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, modelName: modelName}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema, opts prompts.GenerationOptions) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	model.StopSequences = opts.StopSequences

	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	if opts.TopP > 0 {
		model.SetTopP(opts.TopP)
	}
	if opts.TopK > 0 {
		model.SetTopK(opts.TopK)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text parts in model response")
	}

	return b.String(), nil
}
