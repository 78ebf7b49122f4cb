package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

func ficheCodee(num int64, surcharges map[string]string) entities.Entretien {
	e := entities.Entretien{
		Num:        num,
		DateEnt:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Mode:       "1",
		Duree:      "2",
		Sexe:       "2",
		Age:        "3",
		VientPr:    "1",
		SitFam:     "5b",
		Enfant:     "2",
		Profession: "6",
		Commune:    "Nantes",
	}
	for cle, valeur := range surcharges {
		switch cle {
		case "Mode":
			e.Mode = valeur
		case "Duree":
			e.Duree = valeur
		case "Sexe":
			e.Sexe = valeur
		case "Age":
			e.Age = valeur
		case "VientPr":
			e.VientPr = valeur
		case "SitFam":
			e.SitFam = valeur
		case "Enfant":
			e.Enfant = valeur
		case "Profession":
			e.Profession = valeur
		case "Commune":
			e.Commune = valeur
		}
	}
	return e
}

func TestLignesRemetLesLibelles(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{ficheCodee(7, nil)}}
	u := NewReportingUseCase(repo)

	lignes, err := u.Lignes()
	require.NoError(t, err)
	require.Len(t, lignes, 1)

	ligne := lignes[0]
	assert.Equal(t, "7", ligne["Numéro"])
	assert.Equal(t, "2024-03-15", ligne["Date"])
	assert.Equal(t, "Femme", ligne["Sexe"])
	assert.Equal(t, "15 à 30 min", ligne["Durée"])
	assert.Equal(t, "RDV", ligne["Mode d'entretien"])
	assert.Equal(t, "26-40 ans", ligne["Age"])
	assert.Equal(t, "Soi", ligne["Vient pour"])
	assert.Equal(t, "5b Avec enf. en garde alternée", ligne["Situation familiale"])
	assert.Equal(t, "2 enfants", ligne["Enfants à charge"])
	assert.Equal(t, "Nantes", ligne["Commune"])
}

func TestLignesCodeInconnuEtValeurVide(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{
		ficheCodee(1, map[string]string{"Sexe": "99", "Commune": "", "Profession": ""}),
	}}
	u := NewReportingUseCase(repo)

	lignes, err := u.Lignes()
	require.NoError(t, err)

	// Code inconnu : la valeur brute passe telle quelle ; vide : substitution
	assert.Equal(t, "99", lignes[0]["Sexe"])
	assert.Equal(t, entities.NonRenseigne, lignes[0]["Commune"])
	assert.Equal(t, entities.NonRenseigne, lignes[0]["Profession"])
}

func TestLignesMetEnCache(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{ficheCodee(1, nil)}}
	u := NewReportingUseCase(repo)

	_, err := u.Lignes()
	require.NoError(t, err)

	// La base change mais le cache sert l'ancien tableau
	repo.lignesReporting = append(repo.lignesReporting, ficheCodee(2, nil))
	lignes, err := u.Lignes()
	require.NoError(t, err)
	assert.Len(t, lignes, 1)

	u.Invalider()
	lignes, err = u.Lignes()
	require.NoError(t, err)
	assert.Len(t, lignes, 2)
}

func TestDashboardIndicateursEtRepartitions(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{
		ficheCodee(1, map[string]string{"Duree": "2", "Commune": "Nantes"}),
		ficheCodee(2, map[string]string{"Duree": "2", "Commune": "Rezé", "Sexe": "1"}),
		ficheCodee(3, map[string]string{"Duree": "3", "Commune": "Nantes"}),
		// Fiche incomplète : comptée dans le total mais exclue des indicateurs
		ficheCodee(4, map[string]string{"Duree": "2", "Profession": ""}),
	}}
	u := NewReportingUseCase(repo)

	dashboard, err := u.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(4), dashboard.Indicateurs.TotalDossiers)
	assert.Equal(t, "15 à 30 min", dashboard.Indicateurs.DureeFrequente)
	assert.Equal(t, "RDV", dashboard.Indicateurs.ModeFrequent)
	assert.Equal(t, "Nantes", dashboard.Indicateurs.CommuneFrequente)

	assert.Equal(t, int64(2), dashboard.Repartitions["Sexe"]["Femme"])
	assert.Equal(t, int64(1), dashboard.Repartitions["Sexe"]["Homme"])
	assert.Equal(t, map[string]int64{"Nantes": 2, "Rezé": 1}, dashboard.Repartitions["Commune"])
	assert.Equal(t, map[string]int64{"2 enfants": 3}, dashboard.Repartitions["Enfants à charge"])
}

func TestDashboardSansDonnees(t *testing.T) {
	u := NewReportingUseCase(&stubEntretienRepo{})

	dashboard, err := u.Dashboard()
	require.NoError(t, err)

	assert.Zero(t, dashboard.Indicateurs.TotalDossiers)
	assert.Equal(t, "N/A", dashboard.Indicateurs.DureeFrequente)
	assert.Equal(t, "N/A", dashboard.Indicateurs.CommuneFrequente)
}

func TestCroisementSimple(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{
		ficheCodee(1, map[string]string{"Sexe": "1"}),
		ficheCodee(2, map[string]string{"Sexe": "2"}),
		ficheCodee(3, map[string]string{"Sexe": "2"}),
		ficheCodee(4, map[string]string{"Sexe": ""}),
	}}
	u := NewReportingUseCase(repo)

	croisement, err := u.Croisement("Sexe", "")
	require.NoError(t, err)

	// Non Renseigné exclu, tri par effectif décroissant
	require.Len(t, croisement.Cellules, 2)
	assert.Equal(t, entities.CroisementCellule{Valeur: "Femme", Effectif: 2}, croisement.Cellules[0])
	assert.Equal(t, entities.CroisementCellule{Valeur: "Homme", Effectif: 1}, croisement.Cellules[1])
}

func TestCroisementVentile(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{
		ficheCodee(1, map[string]string{"Sexe": "2", "Commune": "Nantes"}),
		ficheCodee(2, map[string]string{"Sexe": "2", "Commune": "Rezé"}),
		ficheCodee(3, map[string]string{"Sexe": "2", "Commune": "Nantes"}),
	}}
	u := NewReportingUseCase(repo)

	croisement, err := u.Croisement("Sexe", "Commune")
	require.NoError(t, err)

	assert.Equal(t, "Sexe", croisement.Variable)
	assert.Equal(t, "Commune", croisement.CroiseAvec)
	require.Len(t, croisement.Cellules, 2)
	assert.Equal(t, entities.CroisementCellule{Valeur: "Femme", Croisee: "Nantes", Effectif: 2}, croisement.Cellules[0])
	assert.Equal(t, entities.CroisementCellule{Valeur: "Femme", Croisee: "Rezé", Effectif: 1}, croisement.Cellules[1])
}

func TestCroisementVariableInconnue(t *testing.T) {
	u := NewReportingUseCase(&stubEntretienRepo{})

	_, err := u.Croisement("Pointure", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = u.Croisement("Sexe", "Pointure")
	assert.ErrorIs(t, err, ErrValidation)

	// Le numéro identifie la fiche, il ne s'analyse pas
	_, err = u.Croisement("Numéro", "")
	assert.ErrorIs(t, err, ErrValidation)
}
