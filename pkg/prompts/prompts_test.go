package prompts

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestForArticleContext_Deterministic(t *testing.T) {
	ctx := &Context{
		Now:          time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		ArticleTitle: "Test Article",
	}

	a := ForArticleContext("some content", "what happened?", ctx)
	b := ForArticleContext("some content", "what happened?", ctx)
	assert.Equal(t, a, b)

	assert.Equal(t, true, strings.Contains(a, "CruX"))
	assert.Equal(t, true, strings.Contains(a, "Response Quality Requirements:"))
	assert.Equal(t, true, strings.Contains(a, "User Query: what happened?"))
	assert.Equal(t, true, strings.Contains(a, `Article title: "Test Article"`))
	assert.Equal(t, true, strings.Contains(a, "Time of day: morning"))
	assert.Equal(t, true, strings.Contains(a, `"confidence"`))
}

func TestForGlobalChat_NilContext(t *testing.T) {
	p := ForGlobalChat("latest tech news", nil)
	assert.Equal(t, true, strings.Contains(p, "User Query: latest tech news"))
	assert.Equal(t, true, strings.Contains(p, "general news queries"))
	assert.Equal(t, false, strings.Contains(p, "Time of day"))
}

func TestForNewsAnalysis_ChainOfThought(t *testing.T) {
	p := ForNewsAnalysis("article body", AnalysisChainOfThought)
	assert.Equal(t, true, strings.Contains(p, "step by step"))
	assert.Equal(t, true, strings.Contains(p, `"sentiment"`))
	assert.Equal(t, true, strings.Contains(p, "article body"))
}

func TestTimeOfDay(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "morning", TimeOfDay(day.Add(8*time.Hour)))
	assert.Equal(t, "morning", TimeOfDay(day.Add(11*time.Hour)))
	assert.Equal(t, "afternoon", TimeOfDay(day.Add(12*time.Hour)))
	assert.Equal(t, "afternoon", TimeOfDay(day.Add(17*time.Hour)))
	assert.Equal(t, "evening", TimeOfDay(day.Add(18*time.Hour)))
	assert.Equal(t, "evening", TimeOfDay(day.Add(23*time.Hour)))
}

func TestTruncate(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("a", 3000)
	truncated := Truncate(long)
	assert.Equal(t, 2003, len(truncated)) // 2000 runes + "..."
	assert.Equal(t, true, strings.HasSuffix(truncated, "..."))
}

func TestNormalizeAnalysisType(t *testing.T) {
	assert.Equal(t, AnalysisFactCheck, NormalizeAnalysisType("fact_check"))
	assert.Equal(t, AnalysisSummary, NormalizeAnalysisType("summary"))
	assert.Equal(t, AnalysisPlain, NormalizeAnalysisType("analysis"))
	assert.Equal(t, AnalysisChainOfThought, NormalizeAnalysisType("chain_of_thought"))
	assert.Equal(t, AnalysisChainOfThought, NormalizeAnalysisType(""))
	assert.Equal(t, AnalysisChainOfThought, NormalizeAnalysisType("comprehensive"))
}

func TestStopSequences(t *testing.T) {
	assert.Equal(t, []string{"END_SUMMARY", "In brief:", "TL;DR:"}, StopSequences(AnalysisSummary))

	// Unknown types fall back to the plain analysis set
	assert.Equal(t, StopSequences(AnalysisPlain), StopSequences(AnalysisType("bogus")))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}
