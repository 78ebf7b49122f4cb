package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes ajoute les index nécessaires au reporting et aux lectures de
// la structure du questionnaire
func AddIndexes(db *gorm.DB) error {
	// Index de la table entretien
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_entretien_date_ent ON entretien (date_ent)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_entretien_commune ON entretien (commune)").Error; err != nil {
		return err
	}

	// Index des tables d'association
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_demande_num ON demande (num)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_solution_num ON solution (num)").Error; err != nil {
		return err
	}

	// Index des tables de paramétrage
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_variable_tab_type ON variable (tab, type_v)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_modalite_tab_pos ON modalite (tab, pos)").Error; err != nil {
		return err
	}

	return nil
}
