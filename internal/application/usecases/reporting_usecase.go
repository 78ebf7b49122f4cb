package usecases

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
	"github.com/maison-du-droit/statistiques-api/internal/domain/repositories"
	"github.com/maison-du-droit/statistiques-api/internal/infrastructure/cache"
)

const cleLignesReporting = "reporting:lignes"

// ReportingUseCase produit les tableaux de bord et les croisements ad hoc.
// Le tableau remis en libellés est mis en cache et invalidé explicitement
// après chaque insertion de fiche.
type ReportingUseCase struct {
	repo  repositories.IEntretienRepository
	cache *cache.Cache
}

func NewReportingUseCase(repo repositories.IEntretienRepository) *ReportingUseCase {
	return &ReportingUseCase{
		repo:  repo,
		cache: cache.New(),
	}
}

// Lignes retourne toutes les fiches remises en libellés, colonnes de
// ColonnesReporting. Code inconnu : la valeur brute passe telle quelle ;
// valeur vide : "Non Renseigné".
func (u *ReportingUseCase) Lignes() ([]entities.LigneReporting, error) {
	if cached, found := u.cache.Get(cleLignesReporting); found {
		return cached.([]entities.LigneReporting), nil
	}

	entretiens, err := u.repo.GetEntretiensReporting()
	if err != nil {
		return nil, err
	}

	lignes := make([]entities.LigneReporting, 0, len(entretiens))
	for _, e := range entretiens {
		lignes = append(lignes, remapperEntretien(e))
	}

	u.cache.Set(cleLignesReporting, lignes, 5*time.Minute)
	return lignes, nil
}

// Invalider vide le cache du reporting, à appeler après toute écriture.
func (u *ReportingUseCase) Invalider() {
	u.cache.Delete(cleLignesReporting)
}

// Dashboard assemble la vue d'ensemble de l'activité : indicateurs de
// synthèse sur les fiches complètes, puis répartitions par variable.
func (u *ReportingUseCase) Dashboard() (*entities.Dashboard, error) {
	lignes, err := u.Lignes()
	if err != nil {
		return nil, err
	}

	// Les indicateurs ignorent les fiches où durée, profession ou commune
	// manquent, comme le tableau de bord historique
	var propres []entities.LigneReporting
	for _, l := range lignes {
		if l["Durée"] != entities.NonRenseigne &&
			l["Profession"] != entities.NonRenseigne &&
			l["Commune"] != entities.NonRenseigne {
			propres = append(propres, l)
		}
	}

	dashboard := &entities.Dashboard{
		Indicateurs: entities.DashboardIndicateurs{
			TotalDossiers:    int64(len(lignes)),
			DureeFrequente:   plusFrequente(propres, "Durée"),
			ModeFrequent:     plusFrequente(propres, "Mode d'entretien"),
			CommuneFrequente: plusFrequente(propres, "Commune"),
		},
		Repartitions: make(map[string]map[string]int64),
	}

	for _, colonne := range []string{"Sexe", "Situation familiale", "Enfants à charge", "Vient pour", "Commune"} {
		repartition := make(map[string]int64)
		for _, l := range propres {
			if valeur := l[colonne]; valeur != entities.NonRenseigne {
				repartition[valeur]++
			}
		}
		dashboard.Repartitions[colonne] = repartition
	}

	return dashboard, nil
}

// Croisement compte les fiches par valeur de la variable principale,
// éventuellement ventilées par une variable croisée. C'est la matière
// première du créateur de graphique, le rendu restant côté client.
func (u *ReportingUseCase) Croisement(principale, croisee string) (*entities.Croisement, error) {
	if !colonneAnalysable(principale) {
		return nil, fmt.Errorf("%w : variable inconnue %q", ErrValidation, principale)
	}
	if croisee != "" && !colonneAnalysable(croisee) {
		return nil, fmt.Errorf("%w : variable croisée inconnue %q", ErrValidation, croisee)
	}

	lignes, err := u.Lignes()
	if err != nil {
		return nil, err
	}

	type paire struct{ valeur, croisee string }
	effectifs := make(map[paire]int64)
	for _, l := range lignes {
		if l[principale] == entities.NonRenseigne {
			continue
		}
		p := paire{valeur: l[principale]}
		if croisee != "" {
			p.croisee = l[croisee]
		}
		effectifs[p]++
	}

	croisement := &entities.Croisement{Variable: principale, CroiseAvec: croisee}
	for p, n := range effectifs {
		croisement.Cellules = append(croisement.Cellules, entities.CroisementCellule{
			Valeur:   p.valeur,
			Croisee:  p.croisee,
			Effectif: n,
		})
	}
	sort.Slice(croisement.Cellules, func(i, j int) bool {
		a, b := croisement.Cellules[i], croisement.Cellules[j]
		if a.Effectif != b.Effectif {
			return a.Effectif > b.Effectif
		}
		if a.Valeur != b.Valeur {
			return a.Valeur < b.Valeur
		}
		return a.Croisee < b.Croisee
	})
	return croisement, nil
}

func colonneAnalysable(colonne string) bool {
	for _, c := range entities.ColonnesReporting {
		if c == colonne && c != "Numéro" {
			return true
		}
	}
	return false
}

// plusFrequente retourne la valeur la plus fréquente de la colonne, la plus
// petite par ordre lexical en cas d'égalité, "N/A" sans données.
func plusFrequente(lignes []entities.LigneReporting, colonne string) string {
	effectifs := make(map[string]int64)
	for _, l := range lignes {
		if valeur := l[colonne]; valeur != entities.NonRenseigne && valeur != "" {
			effectifs[valeur]++
		}
	}
	meilleure, max := "N/A", int64(0)
	for valeur, n := range effectifs {
		if n > max || (n == max && max > 0 && valeur < meilleure) {
			meilleure, max = valeur, n
		}
	}
	return meilleure
}

func remapperEntretien(e entities.Entretien) entities.LigneReporting {
	ligne := entities.LigneReporting{
		"Numéro":              strconv.FormatInt(e.Num, 10),
		"Date":                "",
		"Sexe":                e.Sexe,
		"Age":                 e.Age,
		"Situation familiale": e.SitFam,
		"Enfants à charge":    e.Enfant,
		"Profession":          e.Profession,
		"Durée":               e.Duree,
		"Commune":             e.Commune,
		"Mode d'entretien":    e.Mode,
		"Vient pour":          e.VientPr,
	}
	if !e.DateEnt.IsZero() {
		ligne["Date"] = e.DateEnt.Format("2006-01-02")
	}

	for colonne, table := range entities.ModalitesCompletes {
		brut, present := ligne[colonne]
		if !present {
			continue
		}
		if lib, ok := table[brut]; ok {
			ligne[colonne] = lib
		}
	}

	for colonne, valeur := range ligne {
		if colonne != "Numéro" && valeur == "" {
			ligne[colonne] = entities.NonRenseigne
		}
	}
	return ligne
}
