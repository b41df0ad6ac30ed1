package controllers

import (
	"log/slog"
	"strings"

	"quizbank/backend/middleware"
	"quizbank/backend/results"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ResultsController struct {
	Ledger *results.Ledger
	Logger *slog.Logger
}

func NewResultsController(ledger *results.Ledger, logger *slog.Logger) *ResultsController {
	return &ResultsController{Ledger: ledger, Logger: logger}
}

// SaveResult records a result reported by the client for the caller.
func (rc *ResultsController) SaveResult(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		UserID         string `json:"userId"`
		Score          *int   `json:"score"`
		TotalQuestions *int   `json:"totalQuestions"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request data")
	}
	if strings.TrimSpace(input.UserID) == "" || input.Score == nil || input.TotalQuestions == nil {
		return utils.BadRequest(c, "Invalid request data")
	}
	if input.UserID != identity.UserID {
		return utils.Forbidden(c, "Cannot record results for another user")
	}

	result, err := rc.Ledger.Save(c.UserContext(), input.UserID, *input.Score, *input.TotalQuestions)
	if err != nil {
		return utils.HandleError(c, rc.Logger, err)
	}
	return utils.Created(c, result)
}

func (rc *ResultsController) GetMyResults(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	list, err := rc.Ledger.List(c.UserContext(), &identity.UserID)
	if err != nil {
		return utils.HandleError(c, rc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, list)
}

func (rc *ResultsController) GetHistory(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	history, err := rc.Ledger.History(c.UserContext(), identity.UserID)
	if err != nil {
		return utils.HandleError(c, rc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, history)
}

// ListResults is the operator view; ?userId= narrows it to one user.
func (rc *ResultsController) ListResults(c *fiber.Ctx) error {
	var userID *string
	if raw := c.Query("userId"); strings.TrimSpace(raw) != "" {
		userID = &raw
	}

	list, err := rc.Ledger.List(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, rc.Logger, err)
	}
	return utils.Success(c, fiber.StatusOK, list)
}
