package routes

import (
	"github.com/maison-du-droit/statistiques-api/internal/application/usecases"
	"github.com/maison-du-droit/statistiques-api/internal/domain/repositories"
	"github.com/maison-du-droit/statistiques-api/internal/interfaces/http/handlers"
	"github.com/maison-du-droit/statistiques-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cheminSchema string) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag pour le cache HTTP des tableaux de bord
	app.Use(etag.New())

	// Temps de réponse des routes de reporting
	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	schemaRepo := repositories.NewFichierSchemaRepository(cheminSchema)
	questionnaireRepo := repositories.NewQuestionnaireRepository(db)
	entretienRepo := repositories.NewEntretienRepository(db)

	// Use Cases
	schemaUseCase := usecases.NewSchemaUseCase(schemaRepo)
	reportingUseCase := usecases.NewReportingUseCase(entretienRepo)
	entretienUseCase := usecases.NewEntretienUseCase(questionnaireRepo, entretienRepo, reportingUseCase)
	exportUseCase := usecases.NewExportUseCase(reportingUseCase)

	// Handlers
	schemaHandler := handlers.NewSchemaHandler(schemaUseCase, questionnaireRepo)
	entretienHandler := handlers.NewEntretienHandler(entretienUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app)

	// Configurateur de structure (variante fichier)
	groups.Schema.Get("/", schemaHandler.GetSchema)
	groups.Schema.Put("/variables", schemaHandler.UpsertVariable)
	groups.Schema.Post("/reset", schemaHandler.ResetSchema)

	// Structure de saisie (variante tables de paramétrage)
	groups.Schema.Get("/form", schemaHandler.GetFormulaire)

	// Fiches d'entretien
	groups.Entretiens.Post("/", entretienHandler.CreateEntretien)
	groups.Entretiens.Get("/", entretienHandler.GetEntretiens)

	// Tableaux de bord et croisements
	groups.Reporting.Get("/dashboard", reportingHandler.GetDashboard)
	groups.Reporting.Get("/croisement", reportingHandler.GetCroisement)

	// Export XLSX
	groups.Export.Get("/entretiens.xlsx", exportHandler.ExportEntretiens)
}
