package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

type IEntretienRepository interface {
	InsertEntretien(e *entities.Entretien) (int64, error)
	InsertDemandes(num int64, codes []string) error
	InsertSolutions(num int64, codes []string) error
	GetEntretiens(page, limit int) ([]entities.Entretien, int64, error)
	GetEntretiensReporting() ([]entities.Entretien, error)
}

// EntretienRepository persiste les fiches d'entretien et leurs associations.
// Chaque groupe d'insertion (entretien, demandes, solutions) commite dans sa
// propre transaction : un échec sur les solutions après des demandes réussies
// laisse les demandes en base. Comportement historique conservé, pas de
// transaction compensatoire.
type EntretienRepository struct {
	db *gorm.DB
}

func NewEntretienRepository(db *gorm.DB) *EntretienRepository {
	return &EntretienRepository{db: db}
}

// InsertEntretien insère la fiche et retourne le numéro généré. En cas
// d'erreur la transaction est annulée et aucun numéro n'est retourné :
// l'appelant ne doit pas tenter les insertions dépendantes.
func (r *EntretienRepository) InsertEntretien(e *entities.Entretien) (int64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(e).Error
	})
	if err != nil {
		return 0, fmt.Errorf("erreur insertion entretien : %w", err)
	}
	return e.Num, nil
}

// InsertDemandes insère les natures de demande de l'entretien, positions
// 1..n dans l'ordre de sélection.
func (r *EntretienRepository) InsertDemandes(num int64, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	lignes := make([]entities.Demande, 0, len(codes))
	for i, code := range codes {
		lignes = append(lignes, entities.Demande{Num: num, Pos: i + 1, Nature: code})
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lignes).Error
	})
	if err != nil {
		return fmt.Errorf("erreur insertion demandes : %w", err)
	}
	return nil
}

// InsertSolutions insère les réponses apportées de l'entretien, positions
// 1..n dans l'ordre de sélection.
func (r *EntretienRepository) InsertSolutions(num int64, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	lignes := make([]entities.Solution, 0, len(codes))
	for i, code := range codes {
		lignes = append(lignes, entities.Solution{Num: num, Pos: i + 1, Nature: code})
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lignes).Error
	})
	if err != nil {
		return fmt.Errorf("erreur insertion solutions : %w", err)
	}
	return nil
}

// GetEntretiens retourne les fiches paginées, les plus récentes d'abord.
func (r *EntretienRepository) GetEntretiens(page, limit int) ([]entities.Entretien, int64, error) {
	var entretiens []entities.Entretien
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Model(&entities.Entretien{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erreur comptage entretiens : %w", err)
	}

	offset := (page - 1) * limit
	err := query.Order("num desc").Offset(offset).Limit(limit).Find(&entretiens).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erreur récupération entretiens : %w", err)
	}
	return entretiens, total, nil
}

// GetEntretiensReporting charge les colonnes utilisées par le reporting.
func (r *EntretienRepository) GetEntretiensReporting() ([]entities.Entretien, error) {
	var entretiens []entities.Entretien
	err := r.db.
		Select("num", "date_ent", "sexe", "age", "sit_fam", "enfant",
			"profession", "duree", "commune", "mode", "vient_pr").
		Find(&entretiens).Error
	if err != nil {
		return nil, fmt.Errorf("erreur récupération données reporting : %w", err)
	}
	return entretiens, nil
}
