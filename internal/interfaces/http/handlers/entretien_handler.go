package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/maison-du-droit/statistiques-api/internal/application/usecases"
)

// EntretienHandler gère la saisie et la consultation des fiches d'entretien
type EntretienHandler struct {
	entretienUseCase *usecases.EntretienUseCase
}

// NewEntretienHandler crée une nouvelle instance de EntretienHandler
func NewEntretienHandler(entretienUseCase *usecases.EntretienUseCase) *EntretienHandler {
	return &EntretienHandler{
		entretienUseCase: entretienUseCase,
	}
}

// CreateEntretien enregistre une fiche d'entretien complète
// @Summary Enregistre une fiche d'entretien
// @Description Valide la saisie contre la structure du questionnaire puis insère la fiche, ses natures de demande (1 à 3) et ses réponses apportées (0 à 3)
// @Tags entretiens
// @Accept json
// @Produce json
// @Success 201 {object} usecases.ResultatSoumission "Fiche enregistrée"
// @Failure 422 {object} map[string]interface{} "Saisie invalide"
// @Failure 500 {object} map[string]interface{} "Erreur interne du serveur"
// @Router /entretiens [post]
func (h *EntretienHandler) CreateEntretien(c *fiber.Ctx) error {
	var saisie usecases.SaisieEntretien
	if err := c.BodyParser(&saisie); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corps de requête invalide : " + err.Error()})
	}

	resultat, err := h.entretienUseCase.Soumettre(saisie)
	if err != nil {
		if errors.Is(err, usecases.ErrValidation) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de l'enregistrement : " + err.Error()})
	}

	return c.Status(201).JSON(resultat)
}

// GetEntretiens retourne les fiches paginées, les plus récentes d'abord
func (h *EntretienHandler) GetEntretiens(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Paramètre 'page' invalide"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Paramètre 'limit' invalide"})
	}

	entretiens, total, err := h.entretienUseCase.GetEntretiens(page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération des fiches : " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  entretiens,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
