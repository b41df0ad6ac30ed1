package controllers

import (
	"log/slog"
	"strconv"
	"strings"

	"quizbank/backend/models"
	"quizbank/backend/questions"
	"quizbank/backend/quiz"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuestionsController struct {
	Bank   *questions.Repository
	Logger *slog.Logger
}

func NewQuestionsController(bank *questions.Repository, logger *slog.Logger) *QuestionsController {
	return &QuestionsController{Bank: bank, Logger: logger}
}

// SampleQuestions serves a random selection without the answers.
func (qc *QuestionsController) SampleQuestions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	filter, err := quiz.FilterFor(quiz.Config{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Count:      limit,
	})
	if err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}

	sampled, err := qc.Bank.GetQuestions(c.UserContext(), filter, limit)
	if err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}

	public := make([]models.PublicQuestion, 0, len(sampled))
	for _, q := range sampled {
		public = append(public, q.Public())
	}
	return utils.Success(c, fiber.StatusOK, public)
}

func (qc *QuestionsController) GetCategories(c *fiber.Ctx) error {
	categories, err := qc.Bank.Categories(c.UserContext())
	if err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, categories)
}

// ListQuestions is the operator view of the bank, answers included.
func (qc *QuestionsController) ListQuestions(c *fiber.Ctx) error {
	list, err := qc.Bank.List(c.UserContext(), c.QueryInt("limit", questions.DefaultListLimit))
	if err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, list)
}

func (qc *QuestionsController) CreateQuestion(c *fiber.Ctx) error {
	var input struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer *int     `json:"correctAnswer"`
		Category      string   `json:"category"`
		Difficulty    string   `json:"difficulty"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request data")
	}

	if strings.TrimSpace(input.Question) == "" || input.Options == nil || input.CorrectAnswer == nil ||
		strings.TrimSpace(input.Category) == "" || strings.TrimSpace(input.Difficulty) == "" {
		return utils.BadRequest(c, "Invalid request data")
	}

	question, err := qc.Bank.Create(c.UserContext(), questions.Input{
		Question:      input.Question,
		Options:       input.Options,
		CorrectAnswer: *input.CorrectAnswer,
		Category:      input.Category,
		Difficulty:    models.Difficulty(input.Difficulty),
	})
	if err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}

	return utils.Created(c, question)
}

// DeleteQuestion takes the id from the path or, for older clients, the
// ?id= query parameter.
func (qc *QuestionsController) DeleteQuestion(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return utils.BadRequest(c, "Question ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return utils.BadRequest(c, "Invalid question ID")
	}

	if err := qc.Bank.Delete(c.UserContext(), uint(id)); err != nil {
		return utils.HandleError(c, qc.Logger, err)
	}
	return utils.NoContent(c)
}
