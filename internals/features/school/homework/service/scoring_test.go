package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mcqFixture() []MCQQuestion {
	return []MCQQuestion{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
		{ID: "q3", CorrectAnswer: "c"},
		{ID: "q4", CorrectAnswer: "d"},
		{ID: "q5", CorrectAnswer: "a"},
	}
}

func TestScoreMCQ(t *testing.T) {
	tests := []struct {
		name        string
		answers     map[string]string
		wantScore   float64
		wantCorrect int
	}{
		{
			name:        "three of five correct",
			answers:     map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "x", "q5": "x"},
			wantScore:   60.0,
			wantCorrect: 3,
		},
		{
			name:        "all correct",
			answers:     map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "d", "q5": "a"},
			wantScore:   100.0,
			wantCorrect: 5,
		},
		{
			name:        "none correct",
			answers:     map[string]string{"q1": "x"},
			wantScore:   0.0,
			wantCorrect: 0,
		},
		{
			name:        "missing answers count as wrong",
			answers:     map[string]string{"q1": "a"},
			wantScore:   20.0,
			wantCorrect: 1,
		},
		{
			name:        "exact string match, no case folding",
			answers:     map[string]string{"q1": "A", "q2": "b"},
			wantScore:   20.0,
			wantCorrect: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct := ScoreMCQ(mcqFixture(), tt.answers)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantCorrect, correct)
		})
	}
}

func TestScoreMCQEmptyQuestions(t *testing.T) {
	score, correct := ScoreMCQ(nil, map[string]string{"q1": "a"})
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, correct)
}

func TestMarksFromScore(t *testing.T) {
	assert.InDelta(t, 12.0, MarksFromScore(60.0, 20), 1e-9)
	assert.InDelta(t, 0.0, MarksFromScore(0, 20), 1e-9)
	assert.InDelta(t, 20.0, MarksFromScore(100, 20), 1e-9)
}

func TestLengthHeuristicEvaluator(t *testing.T) {
	questions := []VivaQuestion{
		{ID: "q1", Marks: 10},
		{ID: "q2", Marks: 10},
	}
	evaluator := LengthHeuristicEvaluator{}

	tests := []struct {
		name         string
		answers      map[string]string
		wantScore    float64
		wantObtained float64
	}{
		{
			name: "both answers substantial",
			answers: map[string]string{
				"q1": strings.Repeat("a", 30),
				"q2": strings.Repeat("b", 30),
			},
			wantScore:    70.0,
			wantObtained: 14.0,
		},
		{
			name: "one short one long",
			answers: map[string]string{
				"q1": "short",
				"q2": strings.Repeat("b", 30),
			},
			wantScore:    35.0,
			wantObtained: 7.0,
		},
		{
			name:         "exactly 20 chars earns nothing",
			answers:      map[string]string{"q1": strings.Repeat("a", 20)},
			wantScore:    0.0,
			wantObtained: 0.0,
		},
		{
			name:         "21 chars earns credit",
			answers:      map[string]string{"q1": strings.Repeat("a", 21)},
			wantScore:    35.0,
			wantObtained: 7.0,
		},
		{
			name:         "whitespace padding is trimmed first",
			answers:      map[string]string{"q1": "   " + strings.Repeat("a", 15) + "   "},
			wantScore:    0.0,
			wantObtained: 0.0,
		},
		{
			name:         "no answers",
			answers:      map[string]string{},
			wantScore:    0.0,
			wantObtained: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, obtained := evaluator.Evaluate(questions, tt.answers)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.InDelta(t, tt.wantObtained, obtained, 1e-9)
		})
	}
}

func TestLengthHeuristicEvaluatorZeroTotalMarks(t *testing.T) {
	evaluator := LengthHeuristicEvaluator{}
	score, obtained := evaluator.Evaluate(nil, map[string]string{"q1": "whatever"})
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0.0, obtained)
}
