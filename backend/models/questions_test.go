package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quizbank/backend/apperr"
)

func validQuestion() Question {
	return Question{
		Question:      "2+2?",
		Options:       []string{"3", "4", "5"},
		CorrectAnswer: 1,
		Category:      "math",
		Difficulty:    DifficultyEasy,
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		field  string
	}{
		{"valid", func(q *Question) {}, ""},
		{"blank question", func(q *Question) { q.Question = "  " }, "question"},
		{"one option", func(q *Question) { q.Options = []string{"4"}; q.CorrectAnswer = 0 }, "options"},
		{"empty option", func(q *Question) { q.Options = []string{"3", ""} }, "options[1]"},
		{"answer too large", func(q *Question) { q.CorrectAnswer = 3 }, "correctAnswer"},
		{"answer negative", func(q *Question) { q.CorrectAnswer = -1 }, "correctAnswer"},
		{"no category", func(q *Question) { q.Category = "" }, "category"},
		{"unknown difficulty", func(q *Question) { q.Difficulty = "extreme" }, "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var v *apperr.ValidationError
			if assert.ErrorAs(t, err, &v) {
				assert.Equal(t, tt.field, v.Field)
			}
		})
	}
}

func TestPublicHidesAnswer(t *testing.T) {
	q := validQuestion()
	q.ID = 9
	pub := q.Public()
	assert.Equal(t, uint(9), pub.ID)
	assert.Equal(t, q.Options, pub.Options)
	assert.Equal(t, DifficultyEasy, pub.Difficulty)
}
