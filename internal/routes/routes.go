package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/medtrack-app/medtrack-backend/internal/config"
	"github.com/medtrack-app/medtrack-backend/internal/handlers"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	symptomHandler *handlers.SymptomHandler,
	medicationHandler *handlers.MedicationHandler,
	recordHandler *handlers.RecordHandler,
	analysisHandler *handlers.AnalysisHandler,
	reportHandler *handlers.ReportHandler,
	aiHandler *handlers.AIHandler,
	kpHandler *handlers.KpHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public
	user := api.Group("/user")
	user.Post("/registration", userHandler.Register)
	user.Post("/login", userHandler.Login)

	jwt := middleware.JWTProtected(cfg)

	user.Get("/auth", jwt, userHandler.Check)
	user.Get("/:id", jwt, middleware.RequireSelf("id"), userHandler.Profile)

	// Symptom catalog
	symptom := api.Group("/symptom", jwt)
	symptom.Get("/", symptomHandler.ListAll)
	symptom.Get("/user/:userId", middleware.RequireSelf("userId"), symptomHandler.ListByUser)
	symptom.Get("/all/:userId", middleware.RequireSelf("userId"), symptomHandler.ListForUser)
	symptom.Post("/", symptomHandler.Create)
	symptom.Get("/:id", symptomHandler.Get)
	symptom.Put("/:id", symptomHandler.Update)
	symptom.Delete("/:id", symptomHandler.Delete)

	// Medication catalog
	medication := api.Group("/medication", jwt)
	medication.Get("/", medicationHandler.ListAll)
	medication.Get("/user/:userId", middleware.RequireSelf("userId"), medicationHandler.ListByUser)
	medication.Get("/all/:userId", middleware.RequireSelf("userId"), medicationHandler.ListForUser)
	medication.Post("/", medicationHandler.Create)
	medication.Get("/:id", medicationHandler.Get)
	medication.Put("/:id", medicationHandler.Update)
	medication.Delete("/:id", medicationHandler.Delete)

	// Health records
	records := api.Group("/healthRecords", jwt)
	records.Get("/", recordHandler.ListAll)
	records.Get("/user/:userId", middleware.RequireSelf("userId"), recordHandler.ListByUser)
	records.Get("/user/:userId/date/:recordDate", middleware.RequireSelf("userId"), recordHandler.ListByUserAndDate)
	records.Post("/symptoms", recordHandler.CreateSymptom)
	records.Post("/medications", recordHandler.CreateMedication)
	records.Get("/:id", recordHandler.Get)
	records.Put("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)

	// Reports
	reports := api.Group("/reports", jwt)
	reports.Get("/user/:userId", middleware.RequireSelf("userId"), reportHandler.ListByUser)
	reports.Get("/:reportId/download", reportHandler.File)
	reports.Post("/:type/:format", reportHandler.Generate)
	reports.Delete("/:reportId", reportHandler.Delete)

	// Analysis uploads
	analysis := api.Group("/analysis", jwt)
	analysis.Post("/upload", analysisHandler.Upload)
	analysis.Get("/user/:userId", middleware.RequireSelf("userId"), analysisHandler.ListByUser)
	analysis.Get("/file/:analysisId", analysisHandler.File)
	analysis.Delete("/:analysisId", analysisHandler.Delete)

	// AI recommendations
	api.Post("/ai/recommendations", jwt, aiHandler.Recommendations)

	// Kp index — public
	api.Get("/kp-index", kpHandler.Range)
	api.Get("/kp-index/forecast", kpHandler.Forecast)
}
