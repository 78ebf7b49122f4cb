package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/forms"
)

// Libellé de repli pour les variables dont la rubrique est inconnue
const rubriqueAutresChamps = "Autres Champs"

// Clés de cache du dépôt questionnaire
const (
	cleStructure = "questionnaire:structure"
	cleDemandes  = "questionnaire:options:demande"
	cleSolutions = "questionnaire:options:solution"
)

type IQuestionnaireRepository interface {
	SchemaProvider
	OptionsDemande() ([]forms.Option, error)
	OptionsSolution() ([]forms.Option, error)
	InvaliderCache()
}

// QuestionnaireRepository reconstruit la structure du questionnaire depuis
// les tables de paramétrage (rubrique, variable, modalite, plage, valeurs_c).
// Vue matérialisée en lecture seule : ce service ne réécrit jamais ces
// tables. Les résultats sont mis en cache avec invalidation explicite plutôt
// que mémoïsation implicite, pour ne pas masquer une staleness après édition.
type QuestionnaireRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		db:    db,
		cache: cache.New(10*time.Minute, 20*time.Minute),
	}
}

// Structure retourne le questionnaire ENTRETIEN : rubriques ordonnées par
// position, variables de type MOD/NUM/CHAINE ordonnées par rubrique puis
// position, chacune complétée de ses options.
func (r *QuestionnaireRepository) Structure() (forms.Structure, error) {
	if cached, found := r.cache.Get(cleStructure); found {
		return cached.(forms.Structure), nil
	}

	var rubriques []entities.RubriqueRow
	if err := r.db.Order("pos").Find(&rubriques).Error; err != nil {
		return nil, fmt.Errorf("erreur récupération rubriques : %w", err)
	}
	libelles := make(map[int]string, len(rubriques))
	for _, rub := range rubriques {
		libelles[rub.Pos] = rub.Lib
	}

	var variables []entities.VariableRow
	err := r.db.
		Where("tab = ? AND type_v IN ?", entities.TabEntretien,
			[]string{entities.TypeMod, entities.TypeNum, entities.TypeChaine}).
		Order("rubrique, pos").
		Find(&variables).Error
	if err != nil {
		return nil, fmt.Errorf("erreur récupération variables : %w", err)
	}

	structure := forms.Structure{}
	index := make(map[string]int)

	for _, v := range variables {
		champ := forms.Champ{
			Pos:         v.Pos,
			Lib:         v.Lib,
			Commentaire: v.Commentaire,
			Type:        v.TypeV,
		}

		switch v.TypeV {
		case entities.TypeMod:
			var modalites []entities.ModaliteRow
			err := r.db.
				Where("tab = ? AND pos = ?", entities.TabEntretien, v.Pos).
				Order("pos_m").
				Find(&modalites).Error
			if err != nil {
				return nil, fmt.Errorf("erreur récupération modalités de %q : %w", v.Lib, err)
			}
			for _, m := range modalites {
				champ.Options = append(champ.Options, forms.Option{Lib: m.LibM, Code: m.Code})
			}

		case entities.TypeNum:
			var plage entities.PlageRow
			err := r.db.
				Where("tab = ? AND pos = ?", entities.TabEntretien, v.Pos).
				First(&plage).Error
			switch {
			case err == nil:
				champ.Min, champ.Max = plage.ValMin, plage.ValMax
				champ.PlageDefinie = true
			case errors.Is(err, gorm.ErrRecordNotFound):
				champ.Min, champ.Max = forms.MinDefaut, forms.MaxDefaut
				champ.PlageDefinie = true
			default:
				return nil, fmt.Errorf("erreur récupération plage de %q : %w", v.Lib, err)
			}

		case entities.TypeChaine:
			var valeurs []entities.ValeursCRow
			err := r.db.
				Where("tab = ? AND pos = ?", entities.TabEntretien, v.Pos).
				Order("pos_c").
				Find(&valeurs).Error
			if err != nil {
				return nil, fmt.Errorf("erreur récupération valeurs de %q : %w", v.Lib, err)
			}
			for _, val := range valeurs {
				champ.Valeurs = append(champ.Valeurs, val.Lib)
			}
		}

		libRub, ok := libelles[v.Rubrique]
		if !ok {
			libRub = rubriqueAutresChamps
		}
		i, existe := index[libRub]
		if !existe {
			structure = append(structure, forms.RubriqueChamps{Lib: libRub})
			i = len(structure) - 1
			index[libRub] = i
		}
		structure[i].Champs = append(structure[i].Champs, champ)
	}

	r.cache.Set(cleStructure, structure, cache.DefaultExpiration)
	return structure, nil
}

// OptionsDemande retourne les natures de demande sélectionnables.
func (r *QuestionnaireRepository) OptionsDemande() ([]forms.Option, error) {
	return r.options(cleDemandes, entities.TabDemande)
}

// OptionsSolution retourne les réponses apportées sélectionnables.
func (r *QuestionnaireRepository) OptionsSolution() ([]forms.Option, error) {
	return r.options(cleSolutions, entities.TabSolution)
}

func (r *QuestionnaireRepository) options(cle, tab string) ([]forms.Option, error) {
	if cached, found := r.cache.Get(cle); found {
		return cached.([]forms.Option), nil
	}

	var modalites []entities.ModaliteRow
	err := r.db.
		Where("tab = ? AND pos = ?", tab, 3).
		Order("pos_m").
		Find(&modalites).Error
	if err != nil {
		return nil, fmt.Errorf("erreur récupération modalités %s : %w", tab, err)
	}

	options := make([]forms.Option, 0, len(modalites))
	for _, m := range modalites {
		options = append(options, forms.Option{Lib: m.LibM, Code: m.Code})
	}

	r.cache.Set(cle, options, cache.DefaultExpiration)
	return options, nil
}

// InvaliderCache vide le cache du questionnaire, à appeler après toute
// modification des tables de paramétrage.
func (r *QuestionnaireRepository) InvaliderCache() {
	r.cache.Delete(cleStructure)
	r.cache.Delete(cleDemandes)
	r.cache.Delete(cleSolutions)
}
