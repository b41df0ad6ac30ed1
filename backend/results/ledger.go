// Package results is the append-only ledger of completed quiz attempts.
package results

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
)

// MaxPageSize caps every listing. There is no pagination.
const MaxPageSize = 50

type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Save appends one result. The user id is opaque and stored as given; only a
// blank id is rejected. The completion time is assigned by the store.
func (l *Ledger) Save(ctx context.Context, userID string, score, totalQuestions int) (models.QuizResult, error) {
	if strings.TrimSpace(userID) == "" {
		return models.QuizResult{}, apperr.Invalid("userId", "is required")
	}
	if score < 0 {
		return models.QuizResult{}, apperr.Invalid("score", "must be a non-negative integer")
	}
	if totalQuestions <= 0 {
		return models.QuizResult{}, apperr.Invalid("totalQuestions", "must be a positive integer")
	}
	if score > totalQuestions {
		return models.QuizResult{}, apperr.Invalid("score", "cannot exceed totalQuestions")
	}

	result := models.QuizResult{
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
	}
	if err := l.db.WithContext(ctx).Create(&result).Error; err != nil {
		return models.QuizResult{}, apperr.Store("save result", err)
	}
	return result, nil
}

// List returns the most recent results, newest first, for one user when
// userID is set or for everyone otherwise.
func (l *Ledger) List(ctx context.Context, userID *string) ([]models.QuizResult, error) {
	query := l.db.WithContext(ctx).Model(&models.QuizResult{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	results := make([]models.QuizResult, 0)
	err := query.Order("completed_at DESC").Order("id DESC").Limit(MaxPageSize).Find(&results).Error
	if err != nil {
		return nil, apperr.Store("list results", err)
	}
	return results, nil
}

// History aggregates every result the user has, not just the latest page,
// and attaches the latest page for display.
func (l *Ledger) History(ctx context.Context, userID string) (models.History, error) {
	if strings.TrimSpace(userID) == "" {
		return models.History{}, apperr.Invalid("userId", "is required")
	}

	var totals struct {
		Attempts       int64
		TotalScore     int64
		TotalQuestions int64
	}
	err := l.db.WithContext(ctx).
		Model(&models.QuizResult{}).
		Select("COUNT(*) AS attempts, COALESCE(SUM(score), 0) AS total_score, COALESCE(SUM(total_questions), 0) AS total_questions").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return models.History{}, apperr.Store("aggregate results", err)
	}

	latest, err := l.List(ctx, &userID)
	if err != nil {
		return models.History{}, err
	}

	return models.History{
		UserID:          userID,
		Attempts:        totals.Attempts,
		TotalScore:      totals.TotalScore,
		TotalQuestions:  totals.TotalQuestions,
		AverageAccuracy: Percentage(totals.TotalScore, totals.TotalQuestions),
		Results:         latest,
	}, nil
}

// Summarize aggregates an in-memory list the same way History does.
func Summarize(userID string, list []models.QuizResult) models.History {
	h := models.History{UserID: userID, Results: list}
	for _, r := range list {
		h.Attempts++
		h.TotalScore += int64(r.Score)
		h.TotalQuestions += int64(r.TotalQuestions)
	}
	h.AverageAccuracy = Percentage(h.TotalScore, h.TotalQuestions)
	return h
}

// Percentage is score/total as a whole percent, rounding halves away from
// zero. It is 0 when total is 0.
func Percentage[T ~int | ~int64](score, total T) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}
