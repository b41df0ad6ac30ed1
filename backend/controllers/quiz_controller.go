package controllers

import (
	"errors"
	"log/slog"

	"quizbank/backend/middleware"
	"quizbank/backend/quiz"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Sampler  *quiz.Sampler
	Recorder quiz.Recorder
	Sessions *quiz.Registry
	Logger   *slog.Logger
}

func NewQuizController(sampler *quiz.Sampler, recorder quiz.Recorder, sessions *quiz.Registry, logger *slog.Logger) *QuizController {
	return &QuizController{Sampler: sampler, Recorder: recorder, Sessions: sessions, Logger: logger}
}

func (qc *QuizController) StartSession(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var cfg quiz.Config
	if err := c.BodyParser(&cfg); err != nil {
		return utils.BadRequest(c, "Invalid request data")
	}

	session := quiz.NewSession(identity.UserID, qc.Sampler, qc.Recorder)
	if err := session.Start(c.UserContext(), cfg); err != nil {
		return qc.sessionError(c, err)
	}

	id := qc.Sessions.Add(session)
	var view quiz.View
	_ = qc.Sessions.With(id, identity.UserID, func(s *quiz.Session) error {
		view = s.View(id)
		return nil
	})
	return utils.Created(c, view)
}

func (qc *QuizController) GetSession(c *fiber.Ctx) error {
	return qc.withSession(c, func(id string, s *quiz.Session) (interface{}, error) {
		return s.View(id), nil
	})
}

func (qc *QuizController) SubmitAnswer(c *fiber.Ctx) error {
	var input struct {
		OptionIndex *int `json:"optionIndex"`
	}
	if err := c.BodyParser(&input); err != nil || input.OptionIndex == nil {
		return utils.BadRequest(c, "optionIndex is required")
	}

	return qc.withSession(c, func(id string, s *quiz.Session) (interface{}, error) {
		answer, err := s.SubmitAnswer(*input.OptionIndex)
		if err != nil {
			return nil, err
		}
		return fiber.Map{
			"isCorrect":     answer.IsCorrect,
			"correctAnswer": answer.CorrectAnswer,
			"selected":      answer.Selected,
			"score":         s.Score(),
		}, nil
	})
}

func (qc *QuizController) Advance(c *fiber.Ctx) error {
	return qc.withSession(c, func(id string, s *quiz.Session) (interface{}, error) {
		wasComplete := s.State() == quiz.StateComplete
		done, err := s.Advance(c.UserContext())
		if err != nil {
			return nil, err
		}
		if done && !wasComplete {
			qc.Logger.Info("quiz completed",
				"user_id", s.UserID(),
				"score", s.Score(),
				"total", s.Total(),
			)
		}
		return s.View(id), nil
	})
}

// AbandonSession discards an unfinished or finished session. Nothing is
// recorded for an abandoned quiz.
func (qc *QuizController) AbandonSession(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if err := qc.Sessions.Remove(c.Params("id"), identity.UserID); err != nil {
		return qc.sessionError(c, err)
	}
	return utils.NoContent(c)
}

func (qc *QuizController) withSession(c *fiber.Ctx, fn func(id string, s *quiz.Session) (interface{}, error)) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id := c.Params("id")
	var data interface{}
	err := qc.Sessions.With(id, identity.UserID, func(s *quiz.Session) error {
		var err error
		data, err = fn(id, s)
		return err
	})
	if err != nil {
		return qc.sessionError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, data)
}

func (qc *QuizController) sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, quiz.ErrNoQuestions):
		return utils.Error(c, fiber.StatusUnprocessableEntity, err)
	case errors.Is(err, quiz.ErrAlreadyAnswered), errors.Is(err, quiz.ErrInvalidState):
		return utils.Conflict(c, err.Error())
	}
	return utils.HandleError(c, qc.Logger, err)
}
