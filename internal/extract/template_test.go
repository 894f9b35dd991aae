package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var caseTemplate = NewTemplate(
	"ESTIMATED COST (INR):",
	"EXPECTED DURATION:",
	"WIN PROBABILITY:",
	"LOSS PROBABILITY:",
	"STRONG POINTS:",
	"WEAK POINTS:",
)

func TestTemplate_Value(t *testing.T) {
	text := "ESTIMATED COST (INR): ₹10,000 - ₹20,000\nEXPECTED DURATION: 6-12 months\nWIN PROBABILITY: 72%"

	assert.Equal(t, "₹10,000 - ₹20,000", caseTemplate.Value(text, "ESTIMATED COST (INR):"))
	assert.Equal(t, "6-12 months", caseTemplate.Value(text, "EXPECTED DURATION:"))
}

func TestTemplate_Value_MissingHeaderReturnsSentinel(t *testing.T) {
	text := "The model decided to write prose instead."

	assert.Equal(t, NotSpecified, caseTemplate.Value(text, "ESTIMATED COST (INR):"))
	assert.Equal(t, NotSpecified, caseTemplate.Value(text, "EXPECTED DURATION:"))
}

func TestTemplate_Value_EmptyBodyReturnsSentinel(t *testing.T) {
	text := "ESTIMATED COST (INR):\nEXPECTED DURATION: 6 months"

	assert.Equal(t, NotSpecified, caseTemplate.Value(text, "ESTIMATED COST (INR):"))
}

func TestTemplate_Value_CaseInsensitive(t *testing.T) {
	text := "estimated cost (inr): ₹5,000\nexpected duration: 3 months"

	assert.Equal(t, "₹5,000", caseTemplate.Value(text, "ESTIMATED COST (INR):"))
}

func TestTemplate_Number(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"percentage", "WIN PROBABILITY: 72%", 72},
		{"plain number", "WIN PROBABILITY: 64", 64},
		{"decimal", "WIN PROBABILITY: 72.5%", 72.5},
		{"negative", "WIN PROBABILITY: -3", -3},
		{"non numeric", "WIN PROBABILITY: not sure", 0},
		{"missing header", "nothing here", 0},
		{"trailing words", "WIN PROBABILITY: 70 percent at best", 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caseTemplate.Number(tt.text, "WIN PROBABILITY:"))
		})
	}
}

func TestTemplate_Number_StopsAtNextHeader(t *testing.T) {
	text := "WIN PROBABILITY: 72%\nLOSS PROBABILITY: 28%"

	assert.Equal(t, float64(72), caseTemplate.Number(text, "WIN PROBABILITY:"))
	assert.Equal(t, float64(28), caseTemplate.Number(text, "LOSS PROBABILITY:"))
}

func TestTemplate_List_SectionBoundary(t *testing.T) {
	text := "STRONG POINTS:\n- A\n- B\nWEAK POINTS:\n- C"

	assert.Equal(t, "- A\n- B", caseTemplate.List(text, "STRONG POINTS:"))
	assert.Equal(t, "- C", caseTemplate.List(text, "WEAK POINTS:"))
}

func TestTemplate_List_RunsToEndOfText(t *testing.T) {
	text := "WEAK POINTS:\n- C\n- D"

	assert.Equal(t, "- C\n- D", caseTemplate.List(text, "WEAK POINTS:"))
}

func TestTemplate_List_FiltersNonBulletLines(t *testing.T) {
	text := "STRONG POINTS:\nHere are the points:\n- A\n1. numbered item\nSome commentary.\nWEAK POINTS:\n- C"

	assert.Equal(t, "- A\n1. numbered item", caseTemplate.List(text, "STRONG POINTS:"))
}

func TestTemplate_List_NoBulletsReturnsSentinel(t *testing.T) {
	text := "STRONG POINTS:\njust prose without any markers\nWEAK POINTS:\n- C"

	assert.Equal(t, NotSpecified, caseTemplate.List(text, "STRONG POINTS:"))
}

func TestTemplate_List_MissingHeaderReturnsSentinel(t *testing.T) {
	assert.Equal(t, NotSpecified, caseTemplate.List("no headers at all", "STRONG POINTS:"))
}

func TestTemplate_List_SkipsHeaderOccurringBeforeCurrent(t *testing.T) {
	// WEAK POINTS appears before STRONG POINTS; the boundary search must only
	// consider occurrences strictly after the current header.
	text := "WEAK POINTS:\n- C\nSTRONG POINTS:\n- A\n- B"

	assert.Equal(t, "- A\n- B", caseTemplate.List(text, "STRONG POINTS:"))
}

func TestTemplate_FirstOccurrenceWins(t *testing.T) {
	text := "WIN PROBABILITY: 60%\nsome text\nWIN PROBABILITY: 90%\nLOSS PROBABILITY: 10%"

	assert.Equal(t, float64(60), caseTemplate.Number(text, "WIN PROBABILITY:"))
}

func TestTemplate_Unresolved(t *testing.T) {
	assert.True(t, caseTemplate.Unresolved("free-form prose with no labels"))
	assert.False(t, caseTemplate.Unresolved("WEAK POINTS:\n- C"))
}
