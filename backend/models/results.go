package models

import "time"

type QuizResult struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string    `gorm:"type:text;not null;index" json:"user_id"`
	Score          int       `gorm:"not null;check:score >= 0" json:"score"`
	TotalQuestions int       `gorm:"not null;check:total_questions > 0" json:"total_questions"`
	CompletedAt    time.Time `gorm:"not null;autoCreateTime;index" json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// History is the per-user aggregate shown on the history view.
type History struct {
	UserID          string       `json:"user_id"`
	Attempts        int64        `json:"attempts"`
	TotalScore      int64        `json:"total_score"`
	TotalQuestions  int64        `json:"total_questions"`
	AverageAccuracy int          `json:"average_accuracy"`
	Results         []QuizResult `json:"results,omitempty"`
}
