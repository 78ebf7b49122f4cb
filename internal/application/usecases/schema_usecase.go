package usecases

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/domain/repositories"
)

// ErrValidation marque une erreur imputable à la saisie de l'utilisateur :
// la soumission est bloquée et le formulaire réaffiché, sans perte de saisie.
var ErrValidation = errors.New("saisie invalide")

// VariablePayload est le corps d'une variable soumise par l'éditeur.
type VariablePayload struct {
	Nom       string   `json:"nom"`
	Position  int      `json:"position"`
	Type      string   `json:"type"`
	DateDebut string   `json:"date_debut"`
	DateFin   string   `json:"date_fin"`
	Defaut    string   `json:"defaut"`
	Modalites []string `json:"modalites"`
}

// UpsertVariableRequest est une soumission de l'éditeur de structure :
// une rubrique (existante ou nouvelle) et une variable à écrire dedans.
// AncienneVariable non vide et différente du nom soumis déclenche un
// renommage destructif (suppression de l'ancienne clé).
type UpsertVariableRequest struct {
	Rubrique         string          `json:"rubrique"`
	PositionRubrique int             `json:"position_rubrique"`
	AncienneVariable string          `json:"ancienne_variable"`
	Variable         VariablePayload `json:"variable"`
}

// SchemaUseCase implémente les cas d'usage du configurateur de structure.
type SchemaUseCase struct {
	repo *repositories.FichierSchemaRepository
}

func NewSchemaUseCase(repo *repositories.FichierSchemaRepository) *SchemaUseCase {
	return &SchemaUseCase{repo: repo}
}

// GetTree retourne l'arbre courant (sauvegarde ou structure par défaut).
func (u *SchemaUseCase) GetTree() entities.SchemaTree {
	return u.repo.Load()
}

// UpsertVariable applique une soumission de l'éditeur : création de la
// rubrique si besoin, position proposée par l'allocateur quand l'utilisateur
// n'en a pas fixé, écriture de la variable, puis sauvegarde complète.
func (u *SchemaUseCase) UpsertVariable(req UpsertVariableRequest) (entities.SchemaTree, error) {
	if strings.TrimSpace(req.Rubrique) == "" {
		return entities.SchemaTree{}, fmt.Errorf("%w : veuillez nommer la rubrique pour continuer", ErrValidation)
	}
	if strings.TrimSpace(req.Variable.Nom) == "" {
		return entities.SchemaTree{}, fmt.Errorf("%w : le nom de la variable est obligatoire", ErrValidation)
	}

	arbre := u.repo.Load()

	rub := arbre.Rubrique(req.Rubrique)
	if rub == nil {
		position := req.PositionRubrique
		if position == 0 {
			position = arbre.NextRubriquePosition()
		}
		arbre.Rubriques = append(arbre.Rubriques, entities.Rubrique{
			Nom:      req.Rubrique,
			Position: position,
		})
		rub = &arbre.Rubriques[len(arbre.Rubriques)-1]
	} else if req.PositionRubrique != 0 {
		rub.Position = req.PositionRubrique
	}

	v := entities.Variable{
		Nom:       req.Variable.Nom,
		Position:  req.Variable.Position,
		Type:      req.Variable.Type,
		DateDebut: req.Variable.DateDebut,
		DateFin:   req.Variable.DateFin,
		Defaut:    req.Variable.Defaut,
	}
	if v.Position == 0 {
		v.Position = rub.NextVariablePosition()
	}
	if v.Type == "" {
		v.Type = entities.TypeTexteListe
	}
	if v.DateDebut == "" || v.DateFin == "" {
		debut, fin := entities.BornesAnneeCourante()
		if v.DateDebut == "" {
			v.DateDebut = debut.Format("2006-01-02")
		}
		if v.DateFin == "" {
			v.DateFin = fin.Format("2006-01-02")
		}
	}
	// Seules les cases de modalités non vides sont retenues
	for _, m := range req.Variable.Modalites {
		if strings.TrimSpace(m) != "" {
			v.Modalites = append(v.Modalites, m)
		}
	}

	rub.SetVariable(req.AncienneVariable, v)

	if err := u.repo.Save(arbre); err != nil {
		return entities.SchemaTree{}, err
	}
	return arbre, nil
}

// Reset supprime la sauvegarde et repart de la structure par défaut.
func (u *SchemaUseCase) Reset() (entities.SchemaTree, error) {
	if err := u.repo.Reset(); err != nil {
		return entities.SchemaTree{}, err
	}
	return u.repo.Load(), nil
}
