package routes

import (
	"log/slog"

	"quizbank/backend/config"
	"quizbank/backend/controllers"
	"quizbank/backend/middleware"
	"quizbank/backend/questions"
	"quizbank/backend/quiz"
	"quizbank/backend/results"
	"quizbank/backend/storage"
	"quizbank/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRoutes(app *fiber.App, store *storage.Store, cfg *config.Config, logger *slog.Logger) {
	app.Use(recover.New())

	bank := questions.NewRepository(store.DB())
	ledger := results.NewLedger(store.DB())

	sessions := quiz.NewRegistry(cfg.SessionTTL)

	// Health
	app.Get("/api/health", func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			logger.Error("health check failed", "error", err)
			return utils.Error(c, fiber.StatusServiceUnavailable,
				fiber.NewError(fiber.StatusServiceUnavailable, utils.GenericFailureMessage))
		}
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"status":         "ok",
			"activeSessions": sessions.Len(),
		})
	})

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware()

	api := app.Group("/api", authMiddleware)

	// Question bank routes
	questionsController := controllers.NewQuestionsController(bank, logger)
	api.Get("/categories", questionsController.GetCategories)
	api.Get("/questions", questionsController.SampleQuestions)

	// Quiz session routes
	quizController := controllers.NewQuizController(
		quiz.NewSampler(bank),
		ledger,
		sessions,
		logger,
	)
	quizSessions := api.Group("/quiz/sessions")
	quizSessions.Post("/", quizController.StartSession)
	quizSessions.Get("/:id", quizController.GetSession)
	quizSessions.Delete("/:id", quizController.AbandonSession)
	quizSessions.Post("/:id/answer", quizController.SubmitAnswer)
	quizSessions.Post("/:id/advance", quizController.Advance)

	// Results routes
	resultsController := controllers.NewResultsController(ledger, logger)
	api.Post("/results", resultsController.SaveResult)
	api.Get("/results", resultsController.GetMyResults)
	api.Get("/results/history", resultsController.GetHistory)

	// Admin routes
	admin := api.Group("/admin", adminMiddleware)
	admin.Get("/questions", questionsController.ListQuestions)
	admin.Post("/questions", questionsController.CreateQuestion)
	admin.Delete("/questions", questionsController.DeleteQuestion)
	admin.Delete("/questions/:id", questionsController.DeleteQuestion)
	admin.Get("/results", resultsController.ListResults)
}
