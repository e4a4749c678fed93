package prompts

// AnalysisType selects the framing and stop sequences for an analysis
type AnalysisType string

const (
	AnalysisPlain          AnalysisType = "analysis"
	AnalysisChainOfThought AnalysisType = "chain_of_thought"
	AnalysisFactCheck      AnalysisType = "fact_check"
	AnalysisSummary        AnalysisType = "summary"
)

// NormalizeAnalysisType maps client input to a known analysis type,
// defaulting to chain_of_thought.
func NormalizeAnalysisType(s string) AnalysisType {
	switch AnalysisType(s) {
	case AnalysisPlain, AnalysisFactCheck, AnalysisSummary:
		return AnalysisType(s)
	default:
		return AnalysisChainOfThought
	}
}

// stopSequences holds the per-type sequences after which generation
// should halt.
var stopSequences = map[AnalysisType][]string{
	AnalysisPlain: {
		"END_ANALYSIS",
		"CONCLUSION:",
		"###",
		"[End of Analysis]",
	},
	AnalysisChainOfThought: {
		"Therefore,",
		"In conclusion,",
		"Final thoughts:",
		"END_REASONING",
	},
	AnalysisFactCheck: {
		"Verification complete.",
		"END_FACT_CHECK",
		"Sources:",
	},
	AnalysisSummary: {
		"END_SUMMARY",
		"In brief:",
		"TL;DR:",
	},
}

// StopSequences returns the stop sequences for an analysis type
func StopSequences(t AnalysisType) []string {
	if seqs, ok := stopSequences[t]; ok {
		return seqs
	}
	return stopSequences[AnalysisPlain]
}

// GenerationOptions configures a single model call
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
	TopP            float32
	TopK            int32
	StopSequences   []string
}

func (t AnalysisType) framework() string {
	switch t {
	case AnalysisFactCheck:
		return `Fact-check this article:
- Identify the main claims being made and the evidence presented
- Note which parts need independent verification
- Flag contradicting or unsupported information`
	case AnalysisSummary:
		return `Summarize this article:
- Capture the essential facts and their significance
- Keep the summary structured, clear and concise`
	case AnalysisChainOfThought:
		return `Let's analyze this news article step by step:

1. Initial Understanding: what is being reported, and by whom?
2. Context Analysis: what is the broader context? What field or domain does this belong to? Are there historical precedents?
3. Critical Evaluation: what are the main claims, what evidence is presented, and are there potential biases?
4. Impact Assessment: who is affected, what are the immediate implications, and the long-term consequences?
5. Knowledge Synthesis: how does this connect to other recent events? What patterns emerge?
6. Future Implications: what developments might follow, and what should readers watch for next?

Work through this framework before producing the structured reply.`
	default:
		return `Analyze this article:
- Assess the broader context, the main claims and the evidence
- Identify who is affected and the likely consequences`
	}
}
