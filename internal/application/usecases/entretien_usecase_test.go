package usecases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/forms"
)

// stubQuestionnaire sert une structure et des options fixes sans base
type stubQuestionnaire struct {
	structure forms.Structure
	demandes  []forms.Option
	solutions []forms.Option
	err       error
}

func (s stubQuestionnaire) Structure() (forms.Structure, error) {
	return s.structure, s.err
}

func (s stubQuestionnaire) OptionsDemande() ([]forms.Option, error) {
	return s.demandes, nil
}

func (s stubQuestionnaire) OptionsSolution() ([]forms.Option, error) {
	return s.solutions, nil
}

func (s stubQuestionnaire) InvaliderCache() {}

// stubEntretienRepo enregistre les appels et simule les échecs de chaque
// groupe d'insertion
type stubEntretienRepo struct {
	insertErr    error
	demandesErr  error
	solutionsErr error

	prochainNum int64
	inseres     []entities.Entretien

	demandesRecues   [][]string
	solutionsRecues  [][]string
	demandesTentee   bool
	solutionsTentee  bool
	lignesReporting  []entities.Entretien
}

func (s *stubEntretienRepo) InsertEntretien(e *entities.Entretien) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.prochainNum++
	e.Num = s.prochainNum
	s.inseres = append(s.inseres, *e)
	return e.Num, nil
}

func (s *stubEntretienRepo) InsertDemandes(num int64, codes []string) error {
	s.demandesTentee = true
	if s.demandesErr != nil {
		return s.demandesErr
	}
	s.demandesRecues = append(s.demandesRecues, codes)
	return nil
}

func (s *stubEntretienRepo) InsertSolutions(num int64, codes []string) error {
	s.solutionsTentee = true
	if s.solutionsErr != nil {
		return s.solutionsErr
	}
	s.solutionsRecues = append(s.solutionsRecues, codes)
	return nil
}

func (s *stubEntretienRepo) GetEntretiens(page, limit int) ([]entities.Entretien, int64, error) {
	return s.inseres, int64(len(s.inseres)), nil
}

func (s *stubEntretienRepo) GetEntretiensReporting() ([]entities.Entretien, error) {
	return s.lignesReporting, nil
}

func structureComplete() forms.Structure {
	mod := func(lib string, options ...forms.Option) forms.Champ {
		return forms.Champ{Lib: lib, Type: entities.TypeMod, Options: options}
	}
	return forms.Structure{
		{
			Lib: "L'ENTRETIEN",
			Champs: []forms.Champ{
				mod("Mode", forms.Option{Lib: "RDV", Code: "1"}, forms.Option{Lib: "Mail", Code: "5"}),
				mod("Duree", forms.Option{Lib: "15 à 30 min", Code: "2"}),
			},
		},
		{
			Lib: "L'USAGER",
			Champs: []forms.Champ{
				mod("Sexe", forms.Option{Lib: "Homme", Code: "1"}, forms.Option{Lib: "Femme", Code: "2"}),
				mod("Age", forms.Option{Lib: "26-40 ans", Code: "3"}),
				mod("Vient_pr", forms.Option{Lib: "Soi", Code: "1"}),
				mod("Sit_fam", forms.Option{Lib: "Concubin", Code: "2"}),
				{Lib: "Enfant", Type: entities.TypeNum, Min: 0, Max: 10, PlageDefinie: true},
				mod("Profession", forms.Option{Lib: "Employé", Code: "6"}),
				mod("Ress", forms.Option{Lib: "Salaire", Code: "1"}),
			},
		},
		{
			Lib: "CONTEXTE",
			Champs: []forms.Champ{
				mod("Origine", forms.Option{Lib: "Internet", Code: "2"}),
				{Lib: "Commune", Type: entities.TypeChaine},
			},
		},
	}
}

func saisieValide() SaisieEntretien {
	return SaisieEntretien{
		Valeurs: map[string]string{
			"Mode":       "Mail",
			"Duree":      "15 à 30 min",
			"Sexe":       "Femme",
			"Age":        "26-40 ans",
			"Vient_pr":   "Soi",
			"Sit_fam":    "Concubin",
			"Enfant":     "2",
			"Profession": "Employé",
			"Ress":       "Salaire",
			"Origine":    "Internet",
			"Commune":    "Nantes",
		},
		Demandes:  []string{"D1", "D2"},
		Solutions: nil,
	}
}

func questionnaireDeTest() stubQuestionnaire {
	return stubQuestionnaire{
		structure: structureComplete(),
		demandes: []forms.Option{
			{Lib: "Famille", Code: "D1"}, {Lib: "Logement", Code: "D2"},
			{Lib: "Travail", Code: "D3"}, {Lib: "Conso", Code: "D4"},
		},
		solutions: []forms.Option{
			{Lib: "Information", Code: "S1"}, {Lib: "Orientation", Code: "S2"},
		},
	}
}

func entretienUseCaseDeTest(repo *stubEntretienRepo) *EntretienUseCase {
	return NewEntretienUseCase(questionnaireDeTest(), repo, nil)
}

func TestSoumettreFicheComplete(t *testing.T) {
	repo := &stubEntretienRepo{}
	u := entretienUseCaseDeTest(repo)

	// 2 demandes, 0 solutions
	resultat, err := u.Soumettre(saisieValide())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resultat.Num)
	assert.Equal(t, 2, resultat.Demandes)
	assert.Zero(t, resultat.Solutions)
	assert.Empty(t, resultat.Avertissements)

	require.Len(t, repo.inseres, 1)
	fiche := repo.inseres[0]
	assert.Equal(t, "5", fiche.Mode)
	assert.Equal(t, "2", fiche.Sexe)
	assert.Equal(t, "2", fiche.Enfant)
	assert.Equal(t, "Nantes", fiche.Commune)
	assert.False(t, fiche.DateEnt.IsZero())

	require.Len(t, repo.demandesRecues, 1)
	assert.Equal(t, []string{"D1", "D2"}, repo.demandesRecues[0])
}

func TestSoumettreChampsObligatoiresManquants(t *testing.T) {
	repo := &stubEntretienRepo{}
	u := entretienUseCaseDeTest(repo)

	saisie := saisieValide()
	delete(saisie.Valeurs, "Sexe")
	delete(saisie.Valeurs, "Commune")

	_, err := u.Soumettre(saisie)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "sexe")
	assert.Contains(t, err.Error(), "commune")
	assert.Empty(t, repo.inseres)
}

func TestSoumettreSansDemande(t *testing.T) {
	u := entretienUseCaseDeTest(&stubEntretienRepo{})

	saisie := saisieValide()
	saisie.Demandes = nil

	_, err := u.Soumettre(saisie)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSoumettrePlafondsSelections(t *testing.T) {
	u := entretienUseCaseDeTest(&stubEntretienRepo{})

	saisie := saisieValide()
	saisie.Demandes = []string{"1", "2", "3", "4"}
	_, err := u.Soumettre(saisie)
	assert.ErrorIs(t, err, ErrValidation)

	saisie = saisieValide()
	saisie.Solutions = []string{"1", "2", "3", "4"}
	_, err = u.Soumettre(saisie)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSoumettreCodesInconnus(t *testing.T) {
	repo := &stubEntretienRepo{}
	u := entretienUseCaseDeTest(repo)

	// Code hors des tables de paramétrage : rejet avant toute insertion
	saisie := saisieValide()
	saisie.Demandes = []string{"D1", "D99"}
	_, err := u.Soumettre(saisie)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "D99")

	saisie = saisieValide()
	saisie.Solutions = []string{"S99"}
	_, err = u.Soumettre(saisie)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "S99")

	assert.Empty(t, repo.inseres)
}

func TestSoumettreEchecFicheBloqueLesAssociations(t *testing.T) {
	repo := &stubEntretienRepo{insertErr: errors.New("base injoignable")}
	u := entretienUseCaseDeTest(repo)

	_, err := u.Soumettre(saisieValide())
	require.Error(t, err)

	// Pas de numéro : les insertions dépendantes ne sont jamais tentées
	assert.False(t, repo.demandesTentee)
	assert.False(t, repo.solutionsTentee)
}

func TestSoumettreEchecDemandesNAnnulePasLaFiche(t *testing.T) {
	repo := &stubEntretienRepo{demandesErr: errors.New("contrainte violée")}
	u := entretienUseCaseDeTest(repo)

	saisie := saisieValide()
	saisie.Solutions = []string{"S1"}

	resultat, err := u.Soumettre(saisie)
	require.NoError(t, err)

	// La fiche reste en base et les solutions sont quand même tentées :
	// les groupes d'insertion sont indépendants
	assert.Equal(t, int64(1), resultat.Num)
	assert.Len(t, repo.inseres, 1)
	assert.Zero(t, resultat.Demandes)
	assert.Equal(t, 1, resultat.Solutions)
	assert.True(t, repo.solutionsTentee)
	require.Len(t, resultat.Avertissements, 1)
	assert.Contains(t, resultat.Avertissements[0], "contrainte")
}

func TestSoumettreSaisieIncoherente(t *testing.T) {
	u := entretienUseCaseDeTest(&stubEntretienRepo{})

	saisie := saisieValide()
	saisie.Valeurs["Mode"] = "Télépathie"

	_, err := u.Soumettre(saisie)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSoumettreInvalideLeCacheReporting(t *testing.T) {
	repo := &stubEntretienRepo{}
	reporting := NewReportingUseCase(repo)
	u := NewEntretienUseCase(questionnaireDeTest(), repo, reporting)

	// Amorce le cache du reporting sur une base vide
	lignes, err := reporting.Lignes()
	require.NoError(t, err)
	assert.Empty(t, lignes)

	_, err = u.Soumettre(saisieValide())
	require.NoError(t, err)

	// Après soumission le cache a été invalidé : la fiche apparaît
	repo.lignesReporting = repo.inseres
	lignes, err = reporting.Lignes()
	require.NoError(t, err)
	assert.Len(t, lignes, 1)
}
