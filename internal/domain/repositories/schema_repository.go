package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/forms"
)

// SchemaProvider expose la structure du questionnaire prête à l'affichage,
// quelle que soit sa source (fichier de configuration ou tables de
// paramétrage en base). Les deux variantes restent des contextes distincts
// derrière cette interface commune.
type SchemaProvider interface {
	Structure() (forms.Structure, error)
}

// FichierSchemaRepository persiste l'arbre de structure dans un fichier JSON
// UTF-8 : la sauvegarde réécrit l'état complet, sans mise à jour partielle ni
// détection de conflit. Deux éditeurs concurrents s'écrasent mutuellement,
// dernier écrivain gagnant (limitation connue et assumée).
type FichierSchemaRepository struct {
	chemin string
}

// NewFichierSchemaRepository crée un dépôt adossé au fichier donné.
func NewFichierSchemaRepository(chemin string) *FichierSchemaRepository {
	return &FichierSchemaRepository{chemin: chemin}
}

// Load lit l'arbre sauvegardé. Fichier absent ou illisible : on retombe
// silencieusement sur l'arbre par défaut, jamais sur une erreur.
func (r *FichierSchemaRepository) Load() entities.SchemaTree {
	data, err := os.ReadFile(r.chemin)
	if err != nil {
		return entities.DefaultSchemaTree()
	}

	var arbre entities.SchemaTree
	if err := json.Unmarshal(data, &arbre); err != nil {
		log.Printf("⚠️ Sauvegarde illisible (%v), retour à la structure par défaut", err)
		return entities.DefaultSchemaTree()
	}
	return arbre
}

// Save sérialise l'arbre complet et écrase la sauvegarde précédente.
// L'écriture passe par un fichier temporaire renommé ensuite, pour ne
// jamais laisser une sauvegarde tronquée sur disque.
func (r *FichierSchemaRepository) Save(arbre entities.SchemaTree) error {
	data, err := json.MarshalIndent(arbre, "", "    ")
	if err != nil {
		return fmt.Errorf("erreur de sérialisation de la structure : %w", err)
	}

	dir := filepath.Dir(r.chemin)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erreur de création du dossier de sauvegarde : %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(r.chemin), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("erreur d'écriture de la sauvegarde : %w", err)
	}
	if err := os.Rename(tmp, r.chemin); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("erreur de remplacement de la sauvegarde : %w", err)
	}
	return nil
}

// Reset supprime la sauvegarde : le prochain Load retournera la structure
// par défaut.
func (r *FichierSchemaRepository) Reset() error {
	if err := os.Remove(r.chemin); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erreur de suppression de la sauvegarde : %w", err)
	}
	return nil
}

// Structure dérive du fichier de configuration la structure de saisie. Dans
// cette variante, le libellé choisi est stocké tel quel : le code d'une
// option est son libellé.
func (r *FichierSchemaRepository) Structure() (forms.Structure, error) {
	arbre := r.Load()

	structure := make(forms.Structure, 0, len(arbre.Rubriques))
	for _, rub := range arbre.Rubriques {
		rc := forms.RubriqueChamps{Lib: rub.Nom}
		for _, v := range rub.Variables {
			champ := forms.Champ{
				Pos:    v.Position,
				Lib:    v.Nom,
				Defaut: v.Defaut,
			}
			switch v.Type {
			case entities.TypeTexteListe:
				champ.Type = entities.TypeMod
				for _, m := range v.Modalites {
					champ.Options = append(champ.Options, forms.Option{Lib: m, Code: m})
				}
			case entities.TypeNumerique:
				champ.Type = entities.TypeNum
				champ.Min, champ.Max = forms.MinDefaut, forms.MaxDefaut
				champ.PlageDefinie = true
			case entities.TypeDate:
				champ.Type = entities.TypeDate
				// Dates de validité pour le défaut du calendrier, repli
				// sur les bornes de l'année courante si illisibles
				debut, fin := v.DatesValidite()
				champ.DateDebut = debut.Format("2006-01-02")
				champ.DateFin = fin.Format("2006-01-02")
			case entities.TypeBooleen:
				champ.Type = entities.TypeBooleen
			default:
				return nil, fmt.Errorf("type de variable inconnu %q pour %q", v.Type, v.Nom)
			}
			rc.Champs = append(rc.Champs, champ)
		}
		structure = append(structure, rc)
	}
	return structure, nil
}
