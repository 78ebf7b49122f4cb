package usecases

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

// NomFeuilleExport est le nom de l'unique feuille du classeur exporté.
const NomFeuilleExport = "Export"

// ExportUseCase produit le classeur XLSX des fiches remises en libellés.
type ExportUseCase struct {
	reporting *ReportingUseCase
}

func NewExportUseCase(reporting *ReportingUseCase) *ExportUseCase {
	return &ExportUseCase{reporting: reporting}
}

// ExportEntretiens construit un classeur à une feuille : ligne d'en-tête
// dans l'ordre de ColonnesReporting, puis une ligne par fiche, valeurs
// identiques au tableau de reporting. Aucun style d'en-tête garanti.
func (u *ExportUseCase) ExportEntretiens() ([]byte, error) {
	lignes, err := u.reporting.Lignes()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", NomFeuilleExport)

	entetes := make([]interface{}, len(entities.ColonnesReporting))
	for i, c := range entities.ColonnesReporting {
		entetes[i] = c
	}
	if err := f.SetSheetRow(NomFeuilleExport, "A1", &entetes); err != nil {
		return nil, fmt.Errorf("erreur écriture en-têtes : %w", err)
	}

	for i, ligne := range lignes {
		valeurs := make([]interface{}, len(entities.ColonnesReporting))
		for j, colonne := range entities.ColonnesReporting {
			valeur := ligne[colonne]
			// Le numéro reste numérique dans le classeur
			if colonne == "Numéro" {
				if n, err := strconv.ParseInt(valeur, 10, 64); err == nil {
					valeurs[j] = n
					continue
				}
			}
			valeurs[j] = valeur
		}
		cellule, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(NomFeuilleExport, cellule, &valeurs); err != nil {
			return nil, fmt.Errorf("erreur écriture ligne %d : %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erreur génération du classeur : %w", err)
	}
	return buf.Bytes(), nil
}
