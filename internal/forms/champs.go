// Package forms porte le rendu dynamique du questionnaire : la description
// des champs à afficher à partir de la structure, et la coercition des
// valeurs brutes soumises.
package forms

import (
	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

// Bornes par défaut d'un champ numérique sans plage déclarée
const (
	MinDefaut = 0
	MaxDefaut = 99
)

// Option est un choix d'une liste : libellé affiché, code stocké.
type Option struct {
	Lib  string `json:"lib"`
	Code string `json:"code"`
}

// Champ décrit un contrôle de saisie à afficher pour une variable.
// PlageDefinie distingue une plage réellement déclarée (y compris 0..0)
// de l'absence de plage, où les bornes par défaut s'appliquent. DateDebut
// et DateFin portent les dates de validité au format ISO pour le widget
// calendrier, repli sur les bornes de l'année courante inclus.
type Champ struct {
	Pos          int      `json:"pos"`
	Lib          string   `json:"lib"`
	Commentaire  string   `json:"commentaire,omitempty"`
	Type         string   `json:"type"`
	Options      []Option `json:"options,omitempty"`
	Valeurs      []string `json:"valeurs,omitempty"`
	Min          int      `json:"min,omitempty"`
	Max          int      `json:"max,omitempty"`
	PlageDefinie bool     `json:"plage_definie,omitempty"`
	Defaut       string   `json:"defaut,omitempty"`
	DateDebut    string   `json:"date_debut,omitempty"`
	DateFin      string   `json:"date_fin,omitempty"`
}

// RubriqueChamps est une rubrique avec ses champs dans l'ordre d'affichage.
type RubriqueChamps struct {
	Lib    string  `json:"lib"`
	Champs []Champ `json:"champs"`
}

// Structure est le questionnaire complet, tel que servi au client de saisie.
// L'ordre est celui de la construction, pas celui des positions.
type Structure []RubriqueChamps

// Code retourne le code associé au libellé choisi, et false si le libellé
// n'est pas une option du champ.
func (c Champ) Code(lib string) (string, bool) {
	for _, opt := range c.Options {
		if opt.Lib == lib {
			return opt.Code, true
		}
	}
	return "", false
}

// NbCasesModalites calcule le nombre de cases de saisie de modalités à
// présenter dans l'éditeur de structure : au moins 2, sinon autant que de
// modalités existantes. Le compteur vit hors du formulaire de soumission
// pour que les nouvelles cases vides apparaissent immédiatement.
func NbCasesModalites(v entities.Variable) int {
	if len(v.Modalites) > 2 {
		return len(v.Modalites)
	}
	return 2
}
