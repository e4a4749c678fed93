package models

import "strings"

// Confidence levels for structured AI responses
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Sentiment values for news analyses
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentMixed    = "mixed"
)

// ContextualResponse is the structured reply for article-context chat
type ContextualResponse struct {
	Answer        string   `json:"answer"`
	KeyPoints     []string `json:"keyPoints"`
	RelatedTopics []string `json:"relatedTopics"`
	Confidence    string   `json:"confidence"`
}

// GlobalResponse is the structured reply for general news chat
type GlobalResponse struct {
	Answer             string   `json:"answer"`
	KeyFacts           []string `json:"keyFacts"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
	Confidence         string   `json:"confidence"`
}

// NewsAnalysis is the structured reply for article analysis
type NewsAnalysis struct {
	Headline     string   `json:"headline"`
	Summary      string   `json:"summary"`
	Impact       string   `json:"impact"`
	Stakeholders []string `json:"stakeholders"`
	Timeline     []string `json:"timeline"`
	Sentiment    string   `json:"sentiment"`
}

// NormalizeConfidence clamps a model-supplied confidence to the known
// enum, defaulting to medium.
func NormalizeConfidence(confidence string) string {
	switch strings.ToLower(strings.TrimSpace(confidence)) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// NormalizeSentiment clamps a model-supplied sentiment to the known
// enum, defaulting to neutral.
func NormalizeSentiment(sentiment string) string {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	case SentimentMixed:
		return SentimentMixed
	default:
		return SentimentNeutral
	}
}

// SanitizeStringList drops empty and whitespace-only entries
func SanitizeStringList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
