package ai

import "github.com/google/generative-ai-go/genai"

// contextualSchema enforces the structured reply for article-context chat
func contextualSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"answer": {
				Type:        genai.TypeString,
				Description: "Direct answer to the user query, grounded in the article",
			},
			"keyPoints": {
				Type:        genai.TypeArray,
				Description: "3-5 key points from the article supporting the answer",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"relatedTopics": {
				Type:        genai.TypeArray,
				Description: "3-5 related topics worth exploring",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"confidence": {
				Type:        genai.TypeString,
				Description: "Confidence in the answer",
				Enum:        []string{"high", "medium", "low"},
			},
		},
		Required: []string{"answer", "confidence"},
	}
}

// globalSchema enforces the structured reply for general news chat
func globalSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"answer": {
				Type:        genai.TypeString,
				Description: "Direct answer to the user query",
			},
			"keyFacts": {
				Type:        genai.TypeArray,
				Description: "3-5 key facts supporting the answer",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"suggestedQuestions": {
				Type:        genai.TypeArray,
				Description: "3-5 natural follow-up questions",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"confidence": {
				Type:        genai.TypeString,
				Description: "Confidence in the answer",
				Enum:        []string{"high", "medium", "low"},
			},
		},
		Required: []string{"answer", "confidence"},
	}
}

// analysisSchema enforces the structured reply for article analysis
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline": {
				Type:        genai.TypeString,
				Description: "One-line headline for the analysis",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "Concise summary of the article",
			},
			"impact": {
				Type:        genai.TypeString,
				Description: "Who is affected by this news and how",
			},
			"stakeholders": {
				Type:        genai.TypeArray,
				Description: "3-5 parties affected by this news",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"timeline": {
				Type:        genai.TypeArray,
				Description: "3-5 key events in chronological order",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"sentiment": {
				Type:        genai.TypeString,
				Description: "Overall sentiment of the news",
				Enum:        []string{"positive", "negative", "neutral", "mixed"},
			},
		},
		Required: []string{"headline", "summary", "impact", "sentiment"},
	}
}
