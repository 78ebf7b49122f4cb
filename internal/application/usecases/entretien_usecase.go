package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/domain/repositories"
	"github.com/maison-du-droit/statistiques-api/internal/forms"
	"github.com/maison-du-droit/statistiques-api/internal/utils"
)

// ChampsObligatoires liste les clés de l'enregistrement plat qui doivent
// être renseignées avant insertion.
var ChampsObligatoires = []string{
	"mode", "duree", "sexe", "age", "vient_pr",
	"sit_fam", "profession", "ress", "origine", "commune",
}

// MaxSelections plafonne les natures de demande et les réponses apportées.
const MaxSelections = 3

// SaisieEntretien est le corps d'une soumission de fiche : les valeurs
// brutes par libellé de champ, plus les codes de demandes et de solutions
// sélectionnés (dans l'ordre de sélection).
type SaisieEntretien struct {
	Valeurs   map[string]string `json:"valeurs"`
	Demandes  []string          `json:"demandes"`
	Solutions []string          `json:"solutions"`
}

// ResultatSoumission rend compte d'une soumission acceptée. Les insertions
// d'associations qui ont échoué après l'insertion de la fiche apparaissent
// en avertissements : la fiche reste en base, sans annulation compensatoire.
type ResultatSoumission struct {
	Num            int64    `json:"num"`
	Demandes       int      `json:"demandes_inserees"`
	Solutions      int      `json:"solutions_inserees"`
	Avertissements []string `json:"avertissements,omitempty"`
}

// EntretienUseCase implémente la saisie des fiches d'entretien.
type EntretienUseCase struct {
	questionnaire repositories.IQuestionnaireRepository
	repo          repositories.IEntretienRepository
	reporting     *ReportingUseCase
}

func NewEntretienUseCase(questionnaire repositories.IQuestionnaireRepository, repo repositories.IEntretienRepository, reporting *ReportingUseCase) *EntretienUseCase {
	return &EntretienUseCase{
		questionnaire: questionnaire,
		repo:          repo,
		reporting:     reporting,
	}
}

// Soumettre valide la saisie contre la structure du questionnaire puis
// insère la fiche et ses associations. Les trois groupes d'insertion
// commitent indépendamment : un échec sur les demandes n'annule pas la
// fiche et n'empêche pas la tentative sur les solutions.
func (u *EntretienUseCase) Soumettre(saisie SaisieEntretien) (*ResultatSoumission, error) {
	structure, err := u.questionnaire.Structure()
	if err != nil {
		return nil, err
	}

	enregistrement, erreurs := forms.Collecter(structure, saisie.Valeurs)
	if len(erreurs) > 0 {
		messages := make([]string, 0, len(erreurs))
		for _, e := range erreurs {
			messages = append(messages, e.Error())
		}
		return nil, fmt.Errorf("%w : %s", ErrValidation, strings.Join(messages, " ; "))
	}

	var manquants []string
	for _, champ := range ChampsObligatoires {
		val, present := enregistrement[champ]
		if !present || !val.Renseignee || val.Chaine() == "" {
			manquants = append(manquants, champ)
		}
	}
	if len(manquants) > 0 {
		return nil, fmt.Errorf("%w : veuillez remplir tous les champs obligatoires : %s",
			ErrValidation, strings.Join(manquants, ", "))
	}

	if len(saisie.Demandes) == 0 {
		return nil, fmt.Errorf("%w : veuillez sélectionner au moins une nature de demande", ErrValidation)
	}
	if len(saisie.Demandes) > MaxSelections {
		return nil, fmt.Errorf("%w : %d natures de demande au maximum", ErrValidation, MaxSelections)
	}
	if len(saisie.Solutions) > MaxSelections {
		return nil, fmt.Errorf("%w : %d réponses apportées au maximum", ErrValidation, MaxSelections)
	}

	// Les codes soumis doivent exister dans les tables de paramétrage :
	// l'API est ouverte, contrairement au multiselect du client historique
	optionsDemande, err := u.questionnaire.OptionsDemande()
	if err != nil {
		return nil, err
	}
	if err := verifierCodes(saisie.Demandes, optionsDemande, "nature de demande"); err != nil {
		return nil, err
	}
	optionsSolution, err := u.questionnaire.OptionsSolution()
	if err != nil {
		return nil, err
	}
	if err := verifierCodes(saisie.Solutions, optionsSolution, "réponse apportée"); err != nil {
		return nil, err
	}

	valeur := func(cle string) string {
		return enregistrement[cle].Chaine()
	}
	entretien := entities.Entretien{
		DateEnt:    time.Now().In(utils.GetParisLocation()),
		Mode:       valeur("mode"),
		Duree:      valeur("duree"),
		Sexe:       valeur("sexe"),
		Age:        valeur("age"),
		VientPr:    valeur("vient_pr"),
		SitFam:     valeur("sit_fam"),
		Enfant:     valeur("enfant"),
		ModeleFam:  valeur("modele_fam"),
		Profession: valeur("profession"),
		Ress:       valeur("ress"),
		Origine:    valeur("origine"),
		Commune:    valeur("commune"),
		Partenaire: valeur("partenaire"),
	}

	num, err := u.repo.InsertEntretien(&entretien)
	if err != nil {
		// Pas de numéro : les insertions dépendantes ne sont jamais tentées
		return nil, err
	}

	resultat := &ResultatSoumission{Num: num}

	if err := u.repo.InsertDemandes(num, saisie.Demandes); err != nil {
		resultat.Avertissements = append(resultat.Avertissements, err.Error())
	} else {
		resultat.Demandes = len(saisie.Demandes)
	}

	// Tentée même si les demandes ont échoué : les groupes sont indépendants
	if err := u.repo.InsertSolutions(num, saisie.Solutions); err != nil {
		resultat.Avertissements = append(resultat.Avertissements, err.Error())
	} else {
		resultat.Solutions = len(saisie.Solutions)
	}

	if u.reporting != nil {
		u.reporting.Invalider()
	}
	return resultat, nil
}

// GetEntretiens retourne les fiches paginées.
func (u *EntretienUseCase) GetEntretiens(page, limit int) ([]entities.Entretien, int64, error) {
	return u.repo.GetEntretiens(page, limit)
}

func verifierCodes(codes []string, options []forms.Option, libelle string) error {
	valides := make(map[string]struct{}, len(options))
	for _, o := range options {
		valides[o.Code] = struct{}{}
	}
	for _, code := range codes {
		if _, ok := valides[code]; !ok {
			return fmt.Errorf("%w : code de %s inconnu %q", ErrValidation, libelle, code)
		}
	}
	return nil
}
