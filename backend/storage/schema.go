package storage

import (
	"context"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
)

// Init creates the schema if it is absent and, when seed is true, inserts the
// sample questions that are not already present. It is safe to run on every
// startup.
func (s *Store) Init(ctx context.Context, seed bool) error {
	if err := s.Migrate(ctx); err != nil {
		return err
	}
	if !seed {
		return nil
	}

	inserted, err := s.Seed(ctx, SampleQuestions())
	if err != nil {
		return err
	}
	s.logger.Info("question bank ready", "seeded", inserted)
	return nil
}

func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Question{},
		&models.QuizResult{},
	)
	return apperr.Store("migrate", err)
}

// Seed inserts each question whose text is not yet in the bank and returns
// how many rows were written.
func (s *Store) Seed(ctx context.Context, questions []models.Question) (int, error) {
	db := s.db.WithContext(ctx)

	inserted := 0
	for _, question := range questions {
		if err := question.Validate(); err != nil {
			return inserted, err
		}

		var existing int64
		if err := db.Model(&models.Question{}).
			Where("question = ?", question.Question).
			Count(&existing).Error; err != nil {
			return inserted, apperr.Store("seed lookup", err)
		}
		if existing > 0 {
			continue
		}

		question.ID = 0
		if err := db.Create(&question).Error; err != nil {
			return inserted, apperr.Store("seed insert", err)
		}
		inserted++
	}
	return inserted, nil
}
