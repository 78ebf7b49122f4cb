package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/maison-du-droit/statistiques-api/internal/application/usecases"
	"github.com/maison-du-droit/statistiques-api/internal/domain/repositories"
	"github.com/maison-du-droit/statistiques-api/internal/forms"
)

// SchemaHandler expose le configurateur de structure (variante fichier) et
// la structure de saisie lue depuis les tables de paramétrage.
type SchemaHandler struct {
	schemaUseCase *usecases.SchemaUseCase
	questionnaire repositories.IQuestionnaireRepository
}

// NewSchemaHandler crée une nouvelle instance de SchemaHandler
func NewSchemaHandler(schemaUseCase *usecases.SchemaUseCase, questionnaire repositories.IQuestionnaireRepository) *SchemaHandler {
	return &SchemaHandler{
		schemaUseCase: schemaUseCase,
		questionnaire: questionnaire,
	}
}

// GetSchema retourne l'arbre complet rubrique ➤ variable ➤ modalités,
// dans l'ordre d'insertion du fichier de sauvegarde.
func (h *SchemaHandler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(h.schemaUseCase.GetTree())
}

// UpsertVariable enregistre une variable (et sa rubrique) soumise par
// l'éditeur de structure. Le nombre de cases de modalités à présenter pour
// chaque variable est renvoyé avec l'arbre, pour que le client re-rende les
// cases hors de la frontière de soumission.
func (h *SchemaHandler) UpsertVariable(c *fiber.Ctx) error {
	var req usecases.UpsertVariableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corps de requête invalide : " + err.Error()})
	}

	arbre, err := h.schemaUseCase.UpsertVariable(req)
	if err != nil {
		if errors.Is(err, usecases.ErrValidation) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la sauvegarde : " + err.Error()})
	}

	nbCases := 2
	if rub := arbre.Rubrique(req.Rubrique); rub != nil {
		if v := rub.Variable(req.Variable.Nom); v != nil {
			nbCases = forms.NbCasesModalites(*v)
		}
	}

	return c.JSON(fiber.Map{
		"message":            "Sauvegardé : rubrique '" + req.Rubrique + "' > variable '" + req.Variable.Nom + "'",
		"structure":          arbre,
		"nb_cases_modalites": nbCases,
	})
}

// ResetSchema supprime la sauvegarde et retourne la structure par défaut.
func (h *SchemaHandler) ResetSchema(c *fiber.Ctx) error {
	arbre, err := h.schemaUseCase.Reset()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la réinitialisation : " + err.Error()})
	}
	return c.JSON(fiber.Map{
		"message":   "Données réinitialisées",
		"structure": arbre,
	})
}

// GetFormulaire retourne la structure de saisie reconstruite depuis les
// tables de paramétrage, plus les options de demandes et de solutions.
// refresh=1 force la relecture après une modification des tables.
func (h *SchemaHandler) GetFormulaire(c *fiber.Ctx) error {
	if c.Query("refresh") == "1" {
		h.questionnaire.InvaliderCache()
	}

	structure, err := h.questionnaire.Structure()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Impossible de charger la structure du questionnaire : " + err.Error()})
	}

	demandes, err := h.questionnaire.OptionsDemande()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur récupération des natures de demande : " + err.Error()})
	}

	solutions, err := h.questionnaire.OptionsSolution()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur récupération des réponses apportées : " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"structure":      structure,
		"demandes":       demandes,
		"solutions":      solutions,
		"max_selections": usecases.MaxSelections,
	})
}
