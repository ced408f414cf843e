package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/logging"
	"github.com/dmitrijs2005/coderefine/internal/server/llm"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/repomanager"
)

const sampleReply = `Here is my analysis of your code.

## Code Review
- The loop variable shadows the outer binding.

## Optimization Suggestions
- Precompute the length outside the loop.

## Security Issues
- No issues found.

## Refactored Code
` + "```python\nprint('ok')\n```"

func newTestAnalysisService(t *testing.T, mock *llm.MockClient) *AnalysisService {
	t.Helper()
	m, err := repomanager.NewJSONFileManager(t.TempDir())
	require.NoError(t, err)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewAnalysisService(mock, m, logger)
}

func TestAnalysisService_Analyze(t *testing.T) {
	ctx := context.Background()
	mock := &llm.MockClient{Response: sampleReply}
	s := newTestAnalysisService(t, mock)

	result, err := s.Analyze(ctx, "alice", "Python", "print('hello')")
	require.NoError(t, err)
	require.False(t, result.Failed())

	assert.Equal(t, "## Code Review\n- The loop variable shadows the outer binding.", result.CodeReview)
	assert.Equal(t, "## Optimization Suggestions\n- Precompute the length outside the loop.", result.Optimization)
	assert.Equal(t, "## Security Issues\n- No issues found.", result.Security)
	assert.Equal(t, "## Refactored Code\n```python\nprint('ok')\n```", result.RefactoredCode)
	assert.Equal(t, sampleReply, result.RawAnalysis)

	require.NotNil(t, mock.LastRequest)
	assert.Equal(t, "llama-3.3-70b-versatile", mock.LastRequest.Model)
	assert.Equal(t, 0.3, mock.LastRequest.Temperature)
	assert.Equal(t, 4000, mock.LastRequest.MaxTokens)
	assert.Contains(t, mock.LastRequest.SystemPrompt, "expert Python developer")
	assert.Contains(t, mock.LastRequest.UserPrompt, "Analyze the following Python code comprehensively")
	assert.Contains(t, mock.LastRequest.UserPrompt, "```python\nprint('hello')\n```")
}

func TestAnalysisService_Analyze_AppendsHistory(t *testing.T) {
	ctx := context.Background()
	mock := &llm.MockClient{Response: sampleReply}
	s := newTestAnalysisService(t, mock)

	_, err := s.Analyze(ctx, "alice", "Go", "package main")
	require.NoError(t, err)

	entries, err := s.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go", entries[0].Language)
	assert.Equal(t, "package main", entries[0].CodeSnippet)
	assert.True(t, entries[0].HasErrors)
	assert.Equal(t, "## Code Review\n- The loop variable shadows the outer binding.", entries[0].AnalysisSummary)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAnalysisService_Analyze_TruncatesSnippetAndSummary(t *testing.T) {
	ctx := context.Background()
	longReview := "## Code Review\n" + strings.Repeat("x", 300)
	mock := &llm.MockClient{Response: longReview}
	s := newTestAnalysisService(t, mock)

	longCode := strings.Repeat("a", 250)
	_, err := s.Analyze(ctx, "alice", "Python", longCode)
	require.NoError(t, err)

	entries, err := s.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("a", 200)+"...", entries[0].CodeSnippet)
	assert.Len(t, []rune(entries[0].AnalysisSummary), 150)
}

func TestAnalysisService_Analyze_ProviderFault(t *testing.T) {
	ctx := context.Background()
	mock := &llm.MockClient{Err: errors.New("connection refused")}
	s := newTestAnalysisService(t, mock)

	result, err := s.Analyze(ctx, "alice", "Python", "print('hello')")
	require.NoError(t, err)
	require.True(t, result.Failed())
	assert.Equal(t, "AI Analysis Error: connection refused", result.Error)
	assert.Empty(t, result.RawAnalysis)

	// no history entry on a failed analysis
	entries, err := s.History(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAnalysisService_Analyze_MissingAPIKey(t *testing.T) {
	ctx := context.Background()
	mock := &llm.MockClient{Err: llm.ErrNoAPIKey}
	s := newTestAnalysisService(t, mock)

	result, err := s.Analyze(ctx, "alice", "Python", "code")
	require.NoError(t, err)
	assert.Equal(t, "AI Analysis Error: Groq API key not configured. Please set GROQ_API_KEY in .env file", result.Error)
}

func TestAnalysisService_Analyze_InputValidation(t *testing.T) {
	ctx := context.Background()
	mock := &llm.MockClient{Response: sampleReply}
	s := newTestAnalysisService(t, mock)

	_, err := s.Analyze(ctx, "alice", "Python", "")
	assert.ErrorIs(t, err, common.ErrorEmptyInput)

	_, err = s.Analyze(ctx, "alice", "Python", "   \n\t ")
	assert.ErrorIs(t, err, common.ErrorEmptyInput)

	_, err = s.Analyze(ctx, "alice", "Cobol", "IDENTIFICATION DIVISION.")
	assert.ErrorIs(t, err, common.ErrorUnsupportedLanguage)

	// case-sensitive language match
	_, err = s.Analyze(ctx, "alice", "python", "print('hello')")
	assert.ErrorIs(t, err, common.ErrorUnsupportedLanguage)

	assert.Equal(t, 0, mock.Calls)
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupportedLanguage(lang), lang)
	}
	assert.False(t, IsSupportedLanguage("Haskell"))
	assert.False(t, IsSupportedLanguage(""))
}
