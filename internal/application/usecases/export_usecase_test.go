package usecases

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

func TestExportEntretiensClasseurComplet(t *testing.T) {
	repo := &stubEntretienRepo{lignesReporting: []entities.Entretien{
		ficheCodee(1, nil),
		ficheCodee(2, map[string]string{"Commune": ""}),
	}}
	u := NewExportUseCase(NewReportingUseCase(repo))

	contenu, err := u.ExportEntretiens()
	require.NoError(t, err)
	require.NotEmpty(t, contenu)

	f, err := excelize.OpenReader(bytes.NewReader(contenu))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(NomFeuilleExport)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, entities.ColonnesReporting, rows[0])

	// Les valeurs du classeur sont celles du tableau de reporting
	lignes, err := NewReportingUseCase(repo).Lignes()
	require.NoError(t, err)
	for i, ligne := range lignes {
		for j, colonne := range entities.ColonnesReporting {
			assert.Equal(t, ligne[colonne], rows[i+1][j],
				"ligne %d colonne %s", i+1, colonne)
		}
	}
	assert.Equal(t, entities.NonRenseigne, rows[2][8])
}

func TestExportEntretiensSansFiche(t *testing.T) {
	u := NewExportUseCase(NewReportingUseCase(&stubEntretienRepo{}))

	contenu, err := u.ExportEntretiens()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(contenu))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(NomFeuilleExport)
	require.NoError(t, err)

	// Seule la ligne d'en-tête subsiste
	require.Len(t, rows, 1)
	assert.Equal(t, entities.ColonnesReporting, rows[0])
}
