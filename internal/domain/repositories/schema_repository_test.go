package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

func reposTemporaire(t *testing.T) *FichierSchemaRepository {
	t.Helper()
	return NewFichierSchemaRepository(filepath.Join(t.TempDir(), "sauvegarde_modele_complet.json"))
}

func TestLoadSansFichier(t *testing.T) {
	repo := reposTemporaire(t)

	arbre := repo.Load()
	assert.Equal(t, entities.DefaultSchemaTree(), arbre)
}

func TestLoadFichierCorrompu(t *testing.T) {
	chemin := filepath.Join(t.TempDir(), "sauvegarde.json")
	require.NoError(t, os.WriteFile(chemin, []byte(`{"pas du json valide`), 0o644))
	repo := NewFichierSchemaRepository(chemin)

	// Sauvegarde illisible : structure par défaut, jamais d'erreur
	arbre := repo.Load()
	assert.Equal(t, entities.DefaultSchemaTree(), arbre)
}

func TestSavePuisLoad(t *testing.T) {
	repo := reposTemporaire(t)

	arbre := entities.SchemaTree{Rubriques: []entities.Rubrique{
		{
			Nom:      "TEST",
			Position: 1,
			Variables: []entities.Variable{
				{Nom: "Couleur", Position: 1, Type: entities.TypeTexteListe,
					DateDebut: "2026-01-01", DateFin: "2026-12-31",
					Defaut: "Bleu", Modalites: []string{"Rouge", "Bleu"}},
			},
		},
		{Nom: "AUTRE", Position: 2},
	}}

	require.NoError(t, repo.Save(arbre))
	assert.Equal(t, arbre, repo.Load())
}

func TestSaveEcraseLaSauvegardePrecedente(t *testing.T) {
	repo := reposTemporaire(t)

	require.NoError(t, repo.Save(entities.SchemaTree{Rubriques: []entities.Rubrique{{Nom: "A", Position: 1}}}))
	require.NoError(t, repo.Save(entities.SchemaTree{Rubriques: []entities.Rubrique{{Nom: "B", Position: 1}}}))

	arbre := repo.Load()
	require.Len(t, arbre.Rubriques, 1)
	assert.Equal(t, "B", arbre.Rubriques[0].Nom)
}

func TestReset(t *testing.T) {
	repo := reposTemporaire(t)

	require.NoError(t, repo.Save(entities.SchemaTree{Rubriques: []entities.Rubrique{{Nom: "A", Position: 1}}}))
	require.NoError(t, repo.Reset())

	assert.Equal(t, entities.DefaultSchemaTree(), repo.Load())

	// Reset sans sauvegarde existante ne casse rien
	require.NoError(t, repo.Reset())
}

func TestStructureDepuisFichier(t *testing.T) {
	repo := reposTemporaire(t)

	arbre := entities.SchemaTree{Rubriques: []entities.Rubrique{
		{
			Nom:      "R",
			Position: 1,
			Variables: []entities.Variable{
				{Nom: "Couleur", Position: 1, Type: entities.TypeTexteListe,
					Defaut: "Bleu", Modalites: []string{"Rouge", "Bleu"}},
				{Nom: "Quantité", Position: 2, Type: entities.TypeNumerique},
			},
		},
	}}
	require.NoError(t, repo.Save(arbre))

	structure, err := repo.Structure()
	require.NoError(t, err)
	require.Len(t, structure, 1)
	require.Len(t, structure[0].Champs, 2)

	// Variante fichier : le code d'une option est son libellé, tel quel
	couleur := structure[0].Champs[0]
	assert.Equal(t, entities.TypeMod, couleur.Type)
	require.Len(t, couleur.Options, 2)
	assert.Equal(t, "Rouge", couleur.Options[0].Lib)
	assert.Equal(t, "Rouge", couleur.Options[0].Code)

	quantite := structure[0].Champs[1]
	assert.Equal(t, entities.TypeNum, quantite.Type)
	assert.Equal(t, 0, quantite.Min)
	assert.Equal(t, 99, quantite.Max)
	assert.True(t, quantite.PlageDefinie)
}

func TestStructureDatesDeValidite(t *testing.T) {
	repo := reposTemporaire(t)

	arbre := entities.SchemaTree{Rubriques: []entities.Rubrique{
		{
			Nom:      "R",
			Position: 1,
			Variables: []entities.Variable{
				{Nom: "Audience", Position: 1, Type: entities.TypeDate,
					DateDebut: "2026-03-01", DateFin: "2026-09-30"},
				{Nom: "Relance", Position: 2, Type: entities.TypeDate,
					DateDebut: "pas une date", DateFin: ""},
			},
		},
	}}
	require.NoError(t, repo.Save(arbre))

	structure, err := repo.Structure()
	require.NoError(t, err)
	require.Len(t, structure[0].Champs, 2)

	// Dates stockées transmises telles quelles au widget calendrier
	audience := structure[0].Champs[0]
	assert.Equal(t, "2026-03-01", audience.DateDebut)
	assert.Equal(t, "2026-09-30", audience.DateFin)

	// Dates illisibles : repli sur les bornes de l'année courante
	debut, fin := entities.BornesAnneeCourante()
	relance := structure[0].Champs[1]
	assert.Equal(t, debut.Format("2006-01-02"), relance.DateDebut)
	assert.Equal(t, fin.Format("2006-01-02"), relance.DateFin)
}
