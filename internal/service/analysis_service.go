package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/extract"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/prompt"
)

// Extraction templates. Header labels must match the role instructions in
// internal/prompt.
var (
	analysisTemplate = extract.NewTemplate(
		"ESTIMATED COST (INR):",
		"EXPECTED DURATION:",
		"WIN PROBABILITY:",
		"LOSS PROBABILITY:",
		"STRONG POINTS:",
		"WEAK POINTS:",
	)
	keyPointsTemplate = extract.NewTemplate(
		"STRONG POINTS:",
		"WEAK POINTS:",
	)
	strategyTemplate = extract.NewTemplate(
		"OPENING STATEMENT HOOK:",
		"TOP STRENGTHS TO EMPHASIZE:",
		"TOP WEAKNESSES TO MITIGATE:",
	)
)

const roadmapErrorNotice = "Could not generate the cost roadmap. Please try again."

// AnalysisService runs the one-shot AI analysis flows for a case.
type AnalysisService interface {
	GenerateCaseAnalysis(ctx context.Context, cc domain.CaseContext) (*domain.CaseAnalysis, error)
	GenerateKeyPoints(ctx context.Context, cc domain.CaseContext) (*domain.KeyPoints, error)
	GenerateStrategySnapshot(ctx context.Context, cc domain.CaseContext) (*domain.StrategySnapshot, error)
	GenerateCostRoadmap(ctx context.Context, cc domain.CaseContext) (*domain.CostRoadmap, error)
	GenerateOutline(ctx context.Context, details domain.CaseDetails, documents []string) (*domain.PresentationOutline, error)
}

type analysisService struct {
	client     port.CompletionClient
	analyst    *prompt.Builder
	keyPoints  *prompt.Builder
	strategist *prompt.Builder
	planner    *prompt.Builder
	outliner   *prompt.Builder
}

// NewAnalysisService creates an AnalysisService over the given completion
// client and snippet budgets.
func NewAnalysisService(client port.CompletionClient, cfg *config.PromptConfig) AnalysisService {
	return &analysisService{
		client:     client,
		analyst:    prompt.NewBuilder(prompt.AnalystInstruction, cfg.AnalysisSnippetChars),
		keyPoints:  prompt.NewBuilder(prompt.KeyPointsInstruction, cfg.AnalysisSnippetChars),
		strategist: prompt.NewBuilder(prompt.StrategistInstruction, cfg.AnalysisSnippetChars),
		planner:    prompt.NewBuilder(prompt.CostPlannerInstruction, cfg.ChatSnippetChars),
		outliner:   prompt.NewBuilder(prompt.OutlineInstruction, cfg.AnalysisSnippetChars),
	}
}

func (s *analysisService) GenerateCaseAnalysis(ctx context.Context, cc domain.CaseContext) (*domain.CaseAnalysis, error) {
	messages := s.analyst.Build(prompt.Request{
		Context: cc,
		Closing: "Please generate the comprehensive case analysis based on all the above information, adhering strictly to the requested output format.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}
	if analysisTemplate.Unresolved(comp.Content) {
		log.Printf("analysis: completion matched none of the expected headers")
	}

	return &domain.CaseAnalysis{
		EstimatedCost:       analysisTemplate.Value(comp.Content, "ESTIMATED COST (INR):"),
		ExpectedDuration:    analysisTemplate.Value(comp.Content, "EXPECTED DURATION:"),
		WinProbability:      analysisTemplate.Number(comp.Content, "WIN PROBABILITY:"),
		LossProbability:     analysisTemplate.Number(comp.Content, "LOSS PROBABILITY:"),
		StrongPointsSummary: analysisTemplate.List(comp.Content, "STRONG POINTS:"),
		WeakPointsSummary:   analysisTemplate.List(comp.Content, "WEAK POINTS:"),
		Sources:             comp.Sources,
	}, nil
}

func (s *analysisService) GenerateKeyPoints(ctx context.Context, cc domain.CaseContext) (*domain.KeyPoints, error) {
	messages := s.keyPoints.Build(prompt.Request{
		Context: cc,
		Closing: "Please generate the strong and weak points summary.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}
	if keyPointsTemplate.Unresolved(comp.Content) {
		log.Printf("key points: completion matched none of the expected headers")
	}

	return &domain.KeyPoints{
		StrongPointsSummary: keyPointsTemplate.List(comp.Content, "STRONG POINTS:"),
		WeakPointsSummary:   keyPointsTemplate.List(comp.Content, "WEAK POINTS:"),
		Sources:             comp.Sources,
	}, nil
}

func (s *analysisService) GenerateStrategySnapshot(ctx context.Context, cc domain.CaseContext) (*domain.StrategySnapshot, error) {
	messages := s.strategist.Build(prompt.Request{
		Context: cc,
		Closing: "Please generate the strategy snapshot based on all the above information, adhering strictly to the requested output format.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}
	if strategyTemplate.Unresolved(comp.Content) {
		log.Printf("strategy: completion matched none of the expected headers")
	}

	return &domain.StrategySnapshot{
		OpeningStatementHook: strategyTemplate.Value(comp.Content, "OPENING STATEMENT HOOK:"),
		TopStrengths:         strategyTemplate.List(comp.Content, "TOP STRENGTHS TO EMPHASIZE:"),
		TopWeaknesses:        strategyTemplate.List(comp.Content, "TOP WEAKNESSES TO MITIGATE:"),
		Sources:              comp.Sources,
	}, nil
}

// GenerateCostRoadmap never returns an error to the caller: failures degrade
// to an empty stage list with a user-safe notice, with diagnostics logged.
func (s *analysisService) GenerateCostRoadmap(ctx context.Context, cc domain.CaseContext) (*domain.CostRoadmap, error) {
	messages := s.planner.Build(prompt.Request{
		Context: cc,
		Closing: "Please generate the detailed cost roadmap as a JSON array based on all the above information, adhering strictly to the requested output format.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		log.Printf("roadmap: completion call failed: %v", err)
		return &domain.CostRoadmap{Stages: []domain.CaseStageCost{}, ErrorNotice: roadmapErrorNotice}, nil
	}

	stages, err := extract.ParseRoadmap(comp.Content)
	if err != nil {
		log.Printf("roadmap: extraction failed: %v", err)
		return &domain.CostRoadmap{
			Stages:      []domain.CaseStageCost{},
			Sources:     comp.Sources,
			ErrorNotice: roadmapErrorNotice,
		}, nil
	}

	return &domain.CostRoadmap{Stages: stages, Sources: comp.Sources}, nil
}

func (s *analysisService) GenerateOutline(ctx context.Context, details domain.CaseDetails, documents []string) (*domain.PresentationOutline, error) {
	messages := s.outliner.Build(prompt.Request{
		Lead:    outlineLead(details),
		Context: domain.CaseContext{Documents: documents},
		Closing: "Please generate the PowerPoint outline based on all the above information.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	return &domain.PresentationOutline{Outline: comp.Content, Sources: comp.Sources}, nil
}

// outlineLead renders the intake fields line by line; the outline flow is the
// only one that spells the details out instead of passing the JSON payload.
func outlineLead(d domain.CaseDetails) string {
	var sb strings.Builder
	sb.WriteString("Case Details:\n")
	fmt.Fprintf(&sb, "Title: %s\n", d.CaseTitle)
	fmt.Fprintf(&sb, "Court/Tribunal: %s\n", d.CourtTribunal)
	fmt.Fprintf(&sb, "Jurisdiction: %s\n", d.Jurisdiction)
	fmt.Fprintf(&sb, "Case Type: %s\n", d.CaseType)
	fmt.Fprintf(&sb, "Plaintiffs/Defendants: %s\n", d.PlaintiffsDefendants)
	fmt.Fprintf(&sb, "Brief Description: %s\n", d.BriefDescription)
	sb.WriteString("Key Dates: " + keyDates(d))
	return sb.String()
}

func keyDates(d domain.CaseDetails) string {
	var parts []string
	if d.FilingDate != nil {
		parts = append(parts, "Filing Date: "+d.FilingDate.Format(time.DateOnly))
	}
	if d.NextHearingDate != nil {
		parts = append(parts, "Next Hearing: "+d.NextHearingDate.Format(time.DateOnly))
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, ", ")
}
