package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/maison-du-droit/statistiques-api/internal/application/usecases"
)

// ReportingHandler expose le tableau de bord et le créateur de graphique
type ReportingHandler struct {
	reportingUseCase *usecases.ReportingUseCase
}

// NewReportingHandler crée une nouvelle instance de ReportingHandler
func NewReportingHandler(reportingUseCase *usecases.ReportingUseCase) *ReportingHandler {
	return &ReportingHandler{
		reportingUseCase: reportingUseCase,
	}
}

// GetDashboard retourne la vue d'ensemble de l'activité : indicateurs de
// synthèse et répartitions par variable, fiches remises en libellés.
func (h *ReportingHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.reportingUseCase.Dashboard()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la construction du tableau de bord : " + err.Error()})
	}
	return c.JSON(dashboard)
}

// GetCroisement retourne les effectifs par valeur de la variable demandée,
// éventuellement croisés avec une seconde variable (paramètres var et by).
// Le rendu graphique reste côté client.
func (h *ReportingHandler) GetCroisement(c *fiber.Ctx) error {
	principale := c.Query("var")
	if principale == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Paramètre 'var' obligatoire"})
	}
	croisee := c.Query("by")

	croisement, err := h.reportingUseCase.Croisement(principale, croisee)
	if err != nil {
		if errors.Is(err, usecases.ErrValidation) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors du croisement : " + err.Error()})
	}
	return c.JSON(croisement)
}
