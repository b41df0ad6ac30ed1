package quiz

import (
	"context"
	"errors"

	"quizbank/backend/models"
	"quizbank/backend/questions"
)

type fakeSource struct {
	questions []models.Question
	err       error

	calls      int
	lastFilter questions.Filter
	lastLimit  int
}

func (f *fakeSource) GetQuestions(_ context.Context, filter questions.Filter, limit int) ([]models.Question, error) {
	f.calls++
	f.lastFilter = filter
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.questions) {
		return f.questions[:limit], nil
	}
	return f.questions, nil
}

type fakeRecorder struct {
	saved []models.QuizResult
	err   error
}

func (f *fakeRecorder) Save(_ context.Context, userID string, score, total int) (models.QuizResult, error) {
	if f.err != nil {
		return models.QuizResult{}, f.err
	}
	r := models.QuizResult{
		ID:             uint(len(f.saved) + 1),
		UserID:         userID,
		Score:          score,
		TotalQuestions: total,
	}
	f.saved = append(f.saved, r)
	return r, nil
}

var errStoreDown = errors.New("store down")

func makeQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			ID:            uint(i + 1),
			Question:      "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Category:      "general",
			Difficulty:    models.DifficultyEasy,
		}
	}
	return qs
}
