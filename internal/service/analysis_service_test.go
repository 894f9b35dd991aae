package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/extract"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
	"github.com/Cray749/HaqqMitra-LawyerInterface/mocks"
)

var testPromptConfig = &config.PromptConfig{
	AnalysisSnippetChars: 500,
	ChatSnippetChars:     300,
}

var testContext = domain.CaseContext{
	CaseDetailsJSON: `{"caseTitle":"A v B","caseType":"Civil"}`,
	Documents:       []string{"exhibit-a.pdf"},
}

func TestGenerateCaseAnalysis_FullExtraction(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: "ESTIMATED COST (INR): ₹50,000 - ₹1,00,000\n" +
			"EXPECTED DURATION: 12-18 months\n" +
			"WIN PROBABILITY: 65%\n" +
			"LOSS PROBABILITY: 35%\n" +
			"STRONG POINTS:\n- Documented contract\n- Clear breach\n" +
			"WEAK POINTS:\n- Delayed filing",
		Sources: domain.SourceMeta{Citations: json.RawMessage(`["https://example.com"]`)},
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCaseAnalysis(context.Background(), testContext)

	require.NoError(t, err)
	assert.Equal(t, "₹50,000 - ₹1,00,000", out.EstimatedCost)
	assert.Equal(t, "12-18 months", out.ExpectedDuration)
	assert.Equal(t, float64(65), out.WinProbability)
	assert.Equal(t, float64(35), out.LossProbability)
	assert.Equal(t, "- Documented contract\n- Clear breach", out.StrongPointsSummary)
	assert.Equal(t, "- Delayed filing", out.WeakPointsSummary)
	assert.JSONEq(t, `["https://example.com"]`, string(out.Sources.Citations))
	client.AssertExpectations(t)
}

func TestGenerateCaseAnalysis_ProseResponseFallsBackToSentinels(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: "I am unable to structure this analysis as requested.",
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCaseAnalysis(context.Background(), testContext)

	require.NoError(t, err)
	assert.Equal(t, extract.NotSpecified, out.EstimatedCost)
	assert.Equal(t, extract.NotSpecified, out.ExpectedDuration)
	assert.Zero(t, out.WinProbability)
	assert.Zero(t, out.LossProbability)
	assert.Equal(t, extract.NotSpecified, out.StrongPointsSummary)
	assert.Equal(t, extract.NotSpecified, out.WeakPointsSummary)
}

func TestGenerateCaseAnalysis_PropagatesClientError(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, &domain.FlowError{
		Kind:    domain.FlowErrConfigurationMissing,
		Message: "completion API key is not configured",
	})
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCaseAnalysis(context.Background(), testContext)

	assert.Nil(t, out)
	kind, ok := domain.FlowErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.FlowErrConfigurationMissing, kind)
}

func TestGenerateKeyPoints(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: "STRONG POINTS:\n- Solid evidence\nWEAK POINTS:\n- Hostile witness",
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateKeyPoints(context.Background(), testContext)

	require.NoError(t, err)
	assert.Equal(t, "- Solid evidence", out.StrongPointsSummary)
	assert.Equal(t, "- Hostile witness", out.WeakPointsSummary)
}

func TestGenerateStrategySnapshot(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: "OPENING STATEMENT HOOK: This case is about a promise broken.\n" +
			"TOP STRENGTHS TO EMPHASIZE:\n- Written agreement\n" +
			"TOP WEAKNESSES TO MITIGATE:\n- Missing invoice trail",
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateStrategySnapshot(context.Background(), testContext)

	require.NoError(t, err)
	assert.Equal(t, "This case is about a promise broken.", out.OpeningStatementHook)
	assert.Equal(t, "- Written agreement", out.TopStrengths)
	assert.Equal(t, "- Missing invoice trail", out.TopWeaknesses)
}

func TestGenerateCostRoadmap_Success(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: `Here is the plan: [{"stageName": "Trial", "description": "Evidence", "estimatedCostINR": "₹50,000"}]`,
		Sources: domain.SourceMeta{SearchResults: json.RawMessage(`[{"url":"https://example.com"}]`)},
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCostRoadmap(context.Background(), testContext)

	require.NoError(t, err)
	require.Len(t, out.Stages, 1)
	assert.Equal(t, "Trial", out.Stages[0].StageName)
	assert.Empty(t, out.ErrorNotice)
	assert.JSONEq(t, `[{"url":"https://example.com"}]`, string(out.Sources.SearchResults))
}

func TestGenerateCostRoadmap_ClientErrorDegradesToNotice(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, &domain.FlowError{
		Kind:    domain.FlowErrTransportFailure,
		Message: "completion request failed",
	})
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCostRoadmap(context.Background(), testContext)

	require.NoError(t, err)
	assert.Empty(t, out.Stages)
	assert.Equal(t, roadmapErrorNotice, out.ErrorNotice)
}

func TestGenerateCostRoadmap_UnparsableContentDegradesToNotice(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{
		Content: "I could not come up with a staged estimate.",
		Sources: domain.SourceMeta{Citations: json.RawMessage(`["https://example.com"]`)},
	}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	out, err := svc.GenerateCostRoadmap(context.Background(), testContext)

	require.NoError(t, err)
	assert.Empty(t, out.Stages)
	assert.Equal(t, roadmapErrorNotice, out.ErrorNotice)
	assert.JSONEq(t, `["https://example.com"]`, string(out.Sources.Citations))
}

func TestGenerateOutline(t *testing.T) {
	var captured []domain.PromptMessage
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.PromptMessage)
		}).
		Return(&port.Completion{Content: "Slide 1: Title Slide\nSlide 2: Facts"}, nil)
	svc := NewAnalysisService(client, testPromptConfig)

	details := domain.CaseDetails{
		CaseTitle:     "A v B",
		CourtTribunal: "High Court",
		Jurisdiction:  "Delhi",
		CaseType:      "Civil",
	}

	out, err := svc.GenerateOutline(context.Background(), details, []string{"exhibit-a.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "Slide 1: Title Slide\nSlide 2: Facts", out.Outline)

	require.NotEmpty(t, captured)
	userMsg := captured[len(captured)-1].Content
	assert.Contains(t, userMsg, "Title: A v B")
	assert.Contains(t, userMsg, "Court/Tribunal: High Court")
	assert.Contains(t, userMsg, "Key Dates: Not specified")
	assert.Contains(t, userMsg, "Document reference: exhibit-a.pdf")
}
