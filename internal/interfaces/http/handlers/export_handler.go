package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maison-du-droit/statistiques-api/internal/application/usecases"
	"github.com/maison-du-droit/statistiques-api/internal/utils"
)

// ExportHandler sert l'export XLSX des fiches d'entretien
type ExportHandler struct {
	exportUseCase *usecases.ExportUseCase
}

// NewExportHandler crée une nouvelle instance de ExportHandler
func NewExportHandler(exportUseCase *usecases.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

// ExportEntretiens génère le classeur et le renvoie en téléchargement.
func (h *ExportHandler) ExportEntretiens(c *fiber.Ctx) error {
	contenu, err := h.exportUseCase.ExportEntretiens()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la génération de l'export : " + err.Error()})
	}

	nom := fmt.Sprintf("entretiens_%s.xlsx", time.Now().In(utils.GetParisLocation()).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nom+`"`)
	return c.Send(contenu)
}
