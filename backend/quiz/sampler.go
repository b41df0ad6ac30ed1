// Package quiz turns a quiz configuration into a fixed question set and drives
// a single attempt through to its recorded score.
package quiz

import (
	"context"
	"strings"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
	"quizbank/backend/questions"
)

// Config is what a quiz taker picks before starting. Empty strings mean
// "any".
type Config struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// QuestionSource is the part of the content store the sampler needs.
type QuestionSource interface {
	GetQuestions(ctx context.Context, filter questions.Filter, limit int) ([]models.Question, error)
}

// Sampler maps a Config onto the content store's filter. Randomness comes
// from the store.
type Sampler struct {
	source QuestionSource
}

func NewSampler(source QuestionSource) *Sampler {
	return &Sampler{source: source}
}

func (s *Sampler) Sample(ctx context.Context, cfg Config) ([]models.Question, error) {
	filter, err := FilterFor(cfg)
	if err != nil {
		return nil, err
	}
	return s.source.GetQuestions(ctx, filter, cfg.Count)
}

// FilterFor validates cfg and converts blank fields into absent filters.
func FilterFor(cfg Config) (questions.Filter, error) {
	if cfg.Count <= 0 {
		return questions.Filter{}, apperr.Invalid("count", "must be a positive integer")
	}

	var filter questions.Filter
	if category := strings.TrimSpace(cfg.Category); category != "" {
		filter.Category = &category
	}
	if raw := strings.TrimSpace(cfg.Difficulty); raw != "" {
		difficulty := models.Difficulty(strings.ToLower(raw))
		if !difficulty.Valid() {
			return questions.Filter{}, apperr.Invalid("difficulty", "must be one of easy, medium, hard")
		}
		filter.Difficulty = &difficulty
	}
	return filter, nil
}
