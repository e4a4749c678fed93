package prompts

import (
	"fmt"
	"strings"
	"time"
)

// mainPrompt defines the assistant persona shared by every interaction
const mainPrompt = `You are an assistant called CruX, developed and created by CruX, whose sole purpose is to analyze, summarize, and explain the latest news or user queries about news. Your responses must be factual, accurate, and context-aware.

General Guidelines:
- NEVER use meta-phrases (e.g., "let me help you", "I can see that")
- NEVER provide speculative or hallucinated news
- NEVER summarize unless explicitly requested
- NEVER provide unsolicited advice
- ALWAYS be specific, detailed, and accurate
- ALWAYS acknowledge uncertainty when present
- If asked about your identity: respond "I am CruX powered by Google Gemini API"
- If user intent is unclear, acknowledge ambiguity and give a labeled guess

Response Quality Requirements:
- Be thorough and comprehensive in news explanations
- Ensure all instructions are unambiguous and actionable
- Provide sufficient detail that responses are immediately useful
- Maintain consistent formatting throughout
- NEVER just summarize a news article unless explicitly asked to`

// articleContextPrompt is the mode block for article-specific queries
const articleContextPrompt = `For article-specific queries:
- Use the full article text as context
- START with the direct answer, no fluff
- Keep responses grounded in the provided article
- If information is missing, clearly state that it is unavailable
- For summaries: return a structured, clear, concise summary
- For background/analysis: provide clean explanation without showing reasoning steps`

// globalChatPrompt is the mode block for general news queries
const globalChatPrompt = `For general news queries:
- Rely on available news data for context
- START with direct answers, be concise but factual
- Do not hallucinate - if no reliable information found, respond: "No reliable information available"
- Provide structured outputs when relevant (e.g., list of headlines, key facts)`

// Schema descriptions appended to each prompt so the model knows the
// exact reply shape; the request-level response schema enforces it.
const contextualSchemaHint = `Reply with a single JSON object with these fields:
- "answer" (string, required): the direct answer to the query
- "keyPoints" (array of 3-5 strings): key points supporting the answer
- "relatedTopics" (array of 3-5 strings): related topics worth exploring
- "confidence" (string, required): one of "high", "medium", "low"`

const globalSchemaHint = `Reply with a single JSON object with these fields:
- "answer" (string, required): the direct answer to the query
- "keyFacts" (array of 3-5 strings): key facts supporting the answer
- "suggestedQuestions" (array of 3-5 strings): natural follow-up questions
- "confidence" (string, required): one of "high", "medium", "low"`

const analysisSchemaHint = `Reply with a single JSON object with these fields:
- "headline" (string, required): a one-line headline for the analysis
- "summary" (string, required): a concise summary of the article
- "impact" (string, required): who is affected and how
- "stakeholders" (array of 3-5 strings): parties affected by this news
- "timeline" (array of 3-5 strings): key events in chronological order
- "sentiment" (string, required): one of "positive", "negative", "neutral", "mixed"`

// maxArticleRunes bounds how much article text enters a prompt
const maxArticleRunes = 2000

// Context carries optional per-request prompt context. Now is the only
// non-deterministic input; it is injected as a value so builders stay
// pure.
type Context struct {
	Now           time.Time
	Preferences   []string
	ArticleTitle  string
	ArticleSource string
}

// TimeOfDay buckets a clock time into morning, afternoon or evening
func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func (c *Context) lines() string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	if !c.Now.IsZero() {
		fmt.Fprintf(&b, "Time of day: %s\n", TimeOfDay(c.Now))
	}
	if len(c.Preferences) > 0 {
		fmt.Fprintf(&b, "Reader interests: %s\n", strings.Join(c.Preferences, ", "))
	}
	if c.ArticleTitle != "" {
		fmt.Fprintf(&b, "Article title: %q\n", c.ArticleTitle)
	}
	if c.ArticleSource != "" {
		fmt.Fprintf(&b, "Article source: %s\n", c.ArticleSource)
	}
	return b.String()
}

// Truncate caps text at maxArticleRunes, appending an ellipsis marker
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxArticleRunes {
		return text
	}
	return string(runes[:maxArticleRunes]) + "..."
}

// ForArticleContext builds the prompt for article-context chat
func ForArticleContext(articleContent, userQuery string, ctx *Context) string {
	return fmt.Sprintf(`%s
%s
%s
%sArticle Content: %q
User Query: %s`, mainPrompt, articleContextPrompt, contextualSchemaHint, ctx.lines(), Truncate(articleContent), userQuery)
}

// ForGlobalChat builds the prompt for general news chat
func ForGlobalChat(userQuery string, ctx *Context) string {
	return fmt.Sprintf(`%s
%s
%s
%sUser Query: %s`, mainPrompt, globalChatPrompt, globalSchemaHint, ctx.lines(), userQuery)
}

// ForNewsAnalysis builds the prompt for structured article analysis
func ForNewsAnalysis(articleContent string, analysisType AnalysisType) string {
	return fmt.Sprintf(`%s
%s
%s
Article Content:
%s`, mainPrompt, analysisType.framework(), analysisSchemaHint, Truncate(articleContent))
}

// EstimateTokens approximates the token count of a text. Gemini
// averages about 4 characters per token.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
