package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Case is a single matter tracked by the application.
type Case struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Details   json.RawMessage `db:"details" json:"details,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// CaseDetails mirrors the intake form. It is persisted as JSON on the case
// row and passed to the AI flows as an opaque JSON payload.
type CaseDetails struct {
	CaseTitle            string     `json:"caseTitle"`
	CourtTribunal        string     `json:"courtTribunal"`
	Jurisdiction         string     `json:"jurisdiction"`
	CaseType             string     `json:"caseType"`
	PlaintiffsDefendants string     `json:"plaintiffsDefendants"`
	BriefDescription     string     `json:"briefDescription"`
	FilingDate           *time.Time `json:"filingDate,omitempty"`
	NextHearingDate      *time.Time `json:"nextHearingDate,omitempty"`
}

// CaseContext carries the facts submitted for one AI flow invocation.
// CaseDetailsJSON is opaque to the flows; Documents are data URIs or bare
// document names, in upload order.
type CaseContext struct {
	CaseDetailsJSON string   `json:"caseDetails"`
	Documents       []string `json:"uploadedDocuments"`
}

// PromptMessage is one turn in an assembled completion request.
type PromptMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// ChatMessage is one turn of caller-supplied conversation history.
type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// SourceMeta carries the citation and search-result side channels returned by
// the completion provider. The payloads are opaque; they are passed through
// to the caller uninterpreted.
type SourceMeta struct {
	Citations     json.RawMessage `json:"citations,omitempty"`
	SearchResults json.RawMessage `json:"searchResults,omitempty"`
}

// CaseAnalysis is the cost/duration/probability estimate for a case.
type CaseAnalysis struct {
	EstimatedCost       string     `json:"estimatedCost"`
	ExpectedDuration    string     `json:"expectedDuration"`
	WinProbability      float64    `json:"winProbability"`
	LossProbability     float64    `json:"lossProbability"`
	StrongPointsSummary string     `json:"strongPointsSummary"`
	WeakPointsSummary   string     `json:"weakPointsSummary"`
	Sources             SourceMeta `json:"sources"`
}

// KeyPoints summarizes the strong and weak points of a case as bulleted lists.
type KeyPoints struct {
	StrongPointsSummary string     `json:"strongPointsSummary"`
	WeakPointsSummary   string     `json:"weakPointsSummary"`
	Sources             SourceMeta `json:"sources"`
}

// StrategySnapshot is a short courtroom strategy brief.
type StrategySnapshot struct {
	OpeningStatementHook string     `json:"openingStatementHook"`
	TopStrengths         string     `json:"topStrengths"`
	TopWeaknesses        string     `json:"topWeaknesses"`
	Sources              SourceMeta `json:"sources"`
}

// CaseStageCost is one stage of a litigation cost roadmap.
type CaseStageCost struct {
	ID               string `json:"id"`
	StageName        string `json:"stageName"`
	Description      string `json:"description"`
	EstimatedCostINR string `json:"estimatedCostINR"`
}

// CostRoadmap is the ordered list of stages with per-stage cost estimates.
// ErrorNotice is a user-safe message set when generation failed; Stages is
// empty in that situation.
type CostRoadmap struct {
	Stages      []CaseStageCost `json:"stages"`
	Sources     SourceMeta      `json:"sources"`
	ErrorNotice string          `json:"error,omitempty"`
}

// ChatReply is the case chatbot's answer. Reply always holds displayable
// text, even when generation failed.
type ChatReply struct {
	Reply       string     `json:"botReply"`
	Sources     SourceMeta `json:"sources"`
	ErrorNotice string     `json:"error,omitempty"`
}

// AdvocateReply is the devil's-advocate counter-argument. Reply always holds
// displayable text, even when generation failed.
type AdvocateReply struct {
	Reply       string     `json:"devilReply"`
	Sources     SourceMeta `json:"sources"`
	ErrorNotice string     `json:"error,omitempty"`
}

// PresentationOutline is the slide outline generated for court presentations.
type PresentationOutline struct {
	Outline string     `json:"powerpointOutline"`
	Sources SourceMeta `json:"sources"`
}

// AnalysisKind distinguishes persisted analysis snapshots.
type AnalysisKind string

const (
	AnalysisKindCaseAnalysis AnalysisKind = "case_analysis"
	AnalysisKindKeyPoints    AnalysisKind = "key_points"
	AnalysisKindStrategy     AnalysisKind = "strategy"
	AnalysisKindRoadmap      AnalysisKind = "roadmap"
	AnalysisKindOutline      AnalysisKind = "outline"
)

// AnalysisSnapshot is a stored copy of a generated analysis, kept so a case
// can be reopened without re-running the flow.
type AnalysisSnapshot struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	CaseID    uuid.UUID       `db:"case_id" json:"caseId"`
	Kind      AnalysisKind    `db:"kind" json:"kind"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
