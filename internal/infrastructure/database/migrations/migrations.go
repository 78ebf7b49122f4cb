package migrations

import (
	"gorm.io/gorm"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

// Migrate crée les tables du modèle : les fiches d'entretien et leurs
// associations, plus les tables de paramétrage du questionnaire. Les tables
// de paramétrage sont créées vides : elles sont alimentées par l'outil
// d'administration de la base, jamais par ce service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Entretien{},
		&entities.Demande{},
		&entities.Solution{},
		&entities.RubriqueRow{},
		&entities.VariableRow{},
		&entities.ModaliteRow{},
		&entities.PlageRow{},
		&entities.ValeursCRow{},
	)
}
