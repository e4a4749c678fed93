package ai

import (
	"context"
	"encoding/json"
	"log/slog"

	"crux/pkg/models"
	"crux/pkg/prompts"

	"github.com/google/generative-ai-go/genai"
)

// Gateway generates structured AI responses, substituting a fixed
// fallback record on any upstream failure. No error crosses this
// boundary; failures are logged only.
type Gateway struct {
	generator Generator
	log       *slog.Logger
}

// NewGateway creates a gateway over the given generator. A nil
// generator is valid and means every call serves its fallback; this is
// the degraded mode used when no API key is configured.
func NewGateway(generator Generator, log *slog.Logger) *Gateway {
	return &Gateway{generator: generator, log: log}
}

// GenerateContextualResponse answers a query about a specific article
func (g *Gateway) GenerateContextualResponse(ctx context.Context, articleContent, userQuery string, pctx *prompts.Context) models.ContextualResponse {
	prompt := prompts.ForArticleContext(articleContent, userQuery, pctx)

	var resp models.ContextualResponse
	if !g.generate(ctx, prompt, contextualSchema(), prompts.GenerationOptions{Temperature: 0.3}, &resp) || resp.Answer == "" {
		return fallbackContextual(userQuery)
	}

	resp.Confidence = models.NormalizeConfidence(resp.Confidence)
	resp.KeyPoints = models.SanitizeStringList(resp.KeyPoints)
	resp.RelatedTopics = models.SanitizeStringList(resp.RelatedTopics)
	return resp
}

// GenerateGlobalResponse answers a general news query
func (g *Gateway) GenerateGlobalResponse(ctx context.Context, userQuery string, pctx *prompts.Context) models.GlobalResponse {
	prompt := prompts.ForGlobalChat(userQuery, pctx)

	var resp models.GlobalResponse
	if !g.generate(ctx, prompt, globalSchema(), prompts.GenerationOptions{Temperature: 0.4}, &resp) || resp.Answer == "" {
		return fallbackGlobal(userQuery)
	}

	resp.Confidence = models.NormalizeConfidence(resp.Confidence)
	resp.KeyFacts = models.SanitizeStringList(resp.KeyFacts)
	resp.SuggestedQuestions = models.SanitizeStringList(resp.SuggestedQuestions)
	return resp
}

// GenerateNewsAnalysis produces a structured analysis of article content
func (g *Gateway) GenerateNewsAnalysis(ctx context.Context, articleContent string, analysisType prompts.AnalysisType) models.NewsAnalysis {
	prompt := prompts.ForNewsAnalysis(articleContent, analysisType)
	opts := prompts.GenerationOptions{
		Temperature:   0.2,
		StopSequences: prompts.StopSequences(analysisType),
	}

	var resp models.NewsAnalysis
	if !g.generate(ctx, prompt, analysisSchema(), opts, &resp) ||
		resp.Headline == "" || resp.Summary == "" || resp.Impact == "" {
		return fallbackAnalysis()
	}

	resp.Sentiment = models.NormalizeSentiment(resp.Sentiment)
	resp.Stakeholders = models.SanitizeStringList(resp.Stakeholders)
	resp.Timeline = models.SanitizeStringList(resp.Timeline)
	return resp
}

// generate runs a single model call and unmarshals the reply into out.
// It reports false on any failure so the caller can fall back.
func (g *Gateway) generate(ctx context.Context, prompt string, schema *genai.Schema, opts prompts.GenerationOptions, out any) bool {
	if g.generator == nil {
		g.log.Debug("ai gateway has no generator, serving fallback")
		return false
	}

	raw, err := g.generator.Generate(ctx, prompt, schema, opts)
	if err != nil {
		g.log.Error("model call failed, serving fallback", "error", err)
		return false
	}

	g.log.Debug("model call completed",
		"prompt_tokens", prompts.EstimateTokens(prompt),
		"response_tokens", prompts.EstimateTokens(raw))

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		g.log.Error("malformed structured reply, serving fallback", "error", err)
		return false
	}

	return true
}
