package models

import (
	"fmt"
	"strings"

	"quizbank/backend/apperr"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Question struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Question      string     `gorm:"type:text;not null" json:"question"`
	Options       []string   `gorm:"type:text;not null;serializer:json" json:"options"` // JSON array of options
	CorrectAnswer int        `gorm:"not null" json:"correct_answer"`
	Category      string     `gorm:"type:text;not null;index" json:"category"`
	Difficulty    Difficulty `gorm:"type:text;not null;index" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// PublicQuestion is what a quiz taker sees before answering.
type PublicQuestion struct {
	ID         uint       `json:"id"`
	Question   string     `json:"question"`
	Options    []string   `json:"options"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Options:    q.Options,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// Validate checks the invariants a question must satisfy before it is stored.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return apperr.Invalid("question", "is required")
	}
	if len(q.Options) < 2 {
		return apperr.Invalid("options", "at least 2 options are required")
	}
	for i, option := range q.Options {
		if strings.TrimSpace(option) == "" {
			return apperr.Invalid(fmt.Sprintf("options[%d]", i), "must not be empty")
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return apperr.Invalid("correctAnswer", "correct answer index is out of range")
	}
	if strings.TrimSpace(q.Category) == "" {
		return apperr.Invalid("category", "is required")
	}
	if !q.Difficulty.Valid() {
		return apperr.Invalid("difficulty", "must be one of easy, medium, hard")
	}
	return nil
}
