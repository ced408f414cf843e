package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/logging"
	"github.com/dmitrijs2005/coderefine/internal/server/extract"
	"github.com/dmitrijs2005/coderefine/internal/server/llm"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/repomanager"
)

// Completion parameters. The model and sampling settings are fixed: analysis
// output must stay comparable across users and sessions.
const (
	modelID     = "llama-3.3-70b-versatile"
	temperature = 0.3
	maxTokens   = 4000
)

// Snippet and summary caps for history entries.
const (
	snippetMaxLen = 200
	summaryMaxLen = 150
)

// SupportedLanguages is the closed set of languages the analyzer accepts.
var SupportedLanguages = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go",
	"Rust", "PHP", "Ruby", "Swift", "Kotlin", "Scala", "R", "SQL",
}

// IsSupportedLanguage reports whether language is in SupportedLanguages.
// Matching is exact and case-sensitive.
func IsSupportedLanguage(language string) bool {
	return slices.Contains(SupportedLanguages, language)
}

const systemPromptTemplate = "You are an expert %s developer and security analyst specializing in code review, optimization, and refactoring."

const userPromptTemplate = "You are an expert code reviewer and security analyst. Analyze the following %s code comprehensively.\n" +
	"\n" +
	"**IMPORTANT**: Provide your analysis in the following structured format with clear section headers:\n" +
	"\n" +
	"## Code Review\n" +
	"- List all bugs and logic errors found\n" +
	"- Identify bad coding practices\n" +
	"- Point out readability issues\n" +
	"- Mention any code smells or anti-patterns\n" +
	"\n" +
	"## Optimization Suggestions\n" +
	"- Suggest performance improvements\n" +
	"- Identify memory usage optimization opportunities\n" +
	"- Analyze time complexity and suggest improvements\n" +
	"- Recommend algorithmic optimizations\n" +
	"\n" +
	"## Security Issues\n" +
	"- Identify insecure functions or patterns\n" +
	"- Detect potential injection vulnerabilities (SQL, XSS, etc.)\n" +
	"- Flag unsafe dependencies or imports\n" +
	"- Highlight authentication/authorization issues\n" +
	"- Note any data exposure risks\n" +
	"\n" +
	"## Refactored Code\n" +
	"Provide a complete, optimized, and secure version of the code that:\n" +
	"- Fixes all identified bugs\n" +
	"- Implements best practices\n" +
	"- Improves performance\n" +
	"- Addresses security vulnerabilities\n" +
	"- Maintains the same functionality\n" +
	"- Is production-ready\n" +
	"\n" +
	"**Code to analyze:**\n" +
	"```%s\n" +
	"%s\n" +
	"```\n" +
	"\n" +
	"Provide actionable, specific feedback. Do not hallucinate vulnerabilities. Be precise and technical."

// sectionMarkers maps the headers the prompt asks for to result section
// names. Order matters: when one reply line contains several headers, the
// first entry here wins.
var sectionMarkers = []extract.Marker{
	{Header: "## Code Review", Section: "code_review"},
	{Header: "## Optimization Suggestions", Section: "optimization"},
	{Header: "## Security Issues", Section: "security"},
	{Header: "## Refactored Code", Section: "refactored_code"},
}

// AnalysisService runs code through the LLM, extracts the structured
// sections from the reply, and records an entry in the caller's history.
type AnalysisService struct {
	client      llm.Client
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewAnalysisService constructs an AnalysisService.
func NewAnalysisService(client llm.Client, m repomanager.RepositoryManager, logger logging.Logger) *AnalysisService {
	return &AnalysisService{client: client, repomanager: m, logger: logger}
}

// Analyze submits code for analysis on behalf of userName.
//
// Empty or whitespace-only code yields common.ErrorEmptyInput and a language
// outside SupportedLanguages yields common.ErrorUnsupportedLanguage; neither
// reaches the provider. A provider fault is reported in-band: the returned
// result carries Error = "AI Analysis Error: " plus the fault text, and no
// history entry is written. On success the result is recorded in the user's
// history before being returned; a history write failure is logged but does
// not fail the analysis.
func (s *AnalysisService) Analyze(ctx context.Context, userName string, language string, code string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, common.ErrorEmptyInput
	}
	if !IsSupportedLanguage(language) {
		return nil, common.ErrorUnsupportedLanguage
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		SystemPrompt: fmt.Sprintf(systemPromptTemplate, language),
		UserPrompt:   fmt.Sprintf(userPromptTemplate, language, strings.ToLower(language), code),
		Model:        modelID,
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return &models.AnalysisResult{Error: "AI Analysis Error: " + err.Error()}, nil
	}

	sections := extract.Segment(raw, sectionMarkers)
	result := &models.AnalysisResult{
		CodeReview:     sections["code_review"],
		Optimization:   sections["optimization"],
		Security:       sections["security"],
		RefactoredCode: sections["refactored_code"],
		RawAnalysis:    raw,
	}

	if err := s.saveToHistory(ctx, userName, language, code, result); err != nil {
		s.logger.Error(ctx, "error saving analysis to history", "user", userName, "error", err)
	}
	return result, nil
}

// History returns the caller's analysis log, oldest first.
func (s *AnalysisService) History(ctx context.Context, userName string) ([]models.HistoryEntry, error) {
	return s.repomanager.History().List(ctx, userName)
}

func (s *AnalysisService) saveToHistory(ctx context.Context, userName, language, code string, result *models.AnalysisResult) error {
	return s.repomanager.History().Append(ctx, userName, models.HistoryEntry{
		Timestamp:       time.Now(),
		Language:        language,
		CodeSnippet:     truncateSnippet(code),
		HasErrors:       !result.Failed(),
		AnalysisSummary: truncateRunes(result.CodeReview, summaryMaxLen),
	})
}

// truncateSnippet keeps the first snippetMaxLen characters of code and marks
// the cut with an ellipsis. Shorter code is stored verbatim.
func truncateSnippet(code string) string {
	r := []rune(code)
	if len(r) > snippetMaxLen {
		return string(r[:snippetMaxLen]) + "..."
	}
	return code
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
