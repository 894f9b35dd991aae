package domain

// MessageRole identifies the speaker of a prompt or chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Valid reports whether the role is one of the three recognized values.
func (r MessageRole) Valid() bool {
	return r == RoleSystem || r == RoleUser || r == RoleAssistant
}

// AllowedAnalysisKinds maps snapshot kind strings to AnalysisKind.
var AllowedAnalysisKinds = map[string]AnalysisKind{
	"case_analysis": AnalysisKindCaseAnalysis,
	"key_points":    AnalysisKindKeyPoints,
	"strategy":      AnalysisKindStrategy,
	"roadmap":       AnalysisKindRoadmap,
	"outline":       AnalysisKindOutline,
}
