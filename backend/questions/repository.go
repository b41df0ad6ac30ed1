// Package questions is the content store: the durable question bank and its
// queries.
package questions

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
)

// DefaultListLimit bounds administrative listings when no limit is given.
const DefaultListLimit = 500

// Input is the author-facing shape of a new question.
type Input struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Category      string
	Difficulty    models.Difficulty
}

// Filter narrows sampling. A nil field imposes no constraint.
type Filter struct {
	Category   *string
	Difficulty *models.Difficulty
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates in and writes it as a new question.
func (r *Repository) Create(ctx context.Context, in Input) (models.Question, error) {
	question := models.Question{
		Question:      strings.TrimSpace(in.Question),
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
		Category:      strings.TrimSpace(in.Category),
		Difficulty:    models.Difficulty(strings.ToLower(strings.TrimSpace(string(in.Difficulty)))),
	}
	if err := question.Validate(); err != nil {
		return models.Question{}, err
	}

	if err := r.db.WithContext(ctx).Create(&question).Error; err != nil {
		return models.Question{}, apperr.Store("create question", err)
	}
	return question, nil
}

func (r *Repository) Get(ctx context.Context, id uint) (models.Question, error) {
	if id == 0 {
		return models.Question{}, apperr.NotFound("question", id)
	}
	var question models.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, apperr.NotFound("question", id)
		}
		return models.Question{}, apperr.Store("get question", err)
	}
	return question, nil
}

// List returns up to limit questions in id order.
func (r *Repository) List(ctx context.Context, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	questions := make([]models.Question, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, apperr.Store("list questions", err)
	}
	return questions, nil
}

// GetQuestions returns a random selection of at most limit questions matching
// every filter that is set. Every matching row can be chosen regardless of its
// position in the table.
func (r *Repository) GetQuestions(ctx context.Context, filter Filter, limit int) ([]models.Question, error) {
	if limit <= 0 {
		return nil, apperr.Invalid("limit", "must be a positive integer")
	}

	query := r.db.WithContext(ctx).Model(&models.Question{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", string(*filter.Difficulty))
	}

	questions := make([]models.Question, 0, min(limit, 64))
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, apperr.Store("sample questions", err)
	}
	return questions, nil
}

// Categories returns the distinct categories currently in the bank.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperr.Store("list categories", err)
	}
	return categories, nil
}

// Delete removes the question permanently. Deleting an unknown id is a
// NotFoundError.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return apperr.NotFound("question", id)
	}
	res := r.db.WithContext(ctx).Delete(&models.Question{}, id)
	if res.Error != nil {
		return apperr.Store("delete question", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("question", id)
	}
	return nil
}
