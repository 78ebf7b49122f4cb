package entities

// Libellé substitué à toute valeur vide ou inconnue dans le reporting
const NonRenseigne = "Non Renseigné"

// Colonnes du tableau de reporting, dans l'ordre d'export
var ColonnesReporting = []string{
	"Numéro", "Date", "Sexe", "Age", "Situation familiale", "Enfants à charge",
	"Profession", "Durée", "Commune", "Mode d'entretien", "Vient pour",
}

// ModalitesCompletes associe, par colonne, le code stocké en base au libellé
// affiché dans les tableaux de bord. Un code absent de la table passe tel
// quel dans le reporting.
var ModalitesCompletes = map[string]map[string]string{
	"Sexe": {
		"1": "Homme",
		"2": "Femme",
		"3": "Couple",
		"4": "Professionnel",
	},
	"Durée": {
		"1": "1 - 15 min",
		"2": "15 à 30 min",
		"3": "30 à 45 min",
		"4": "45 à 60 min",
		"5": "+ de 60 min",
	},
	"Mode d'entretien": {
		"1": "RDV",
		"2": "Sans RDV",
		"3": "Téléphonique",
		"4": "Courrier",
		"5": "Mail",
	},
	"Age": {
		"1": "-18 ans",
		"2": "18-25 ans",
		"3": "26-40 ans",
		"4": "41-60 ans",
		"5": "+ 60 ans",
	},
	"Vient pour": {
		"1": "Soi",
		"2": "Conjoint",
		"3": "Parent",
		"4": "Enfant",
		"5": "Personne morale",
		"6": "Autre",
	},
	"Situation familiale": {
		"1":  "Célibataire",
		"2":  "Concubin",
		"3":  "Pacsé",
		"4":  "Marié",
		"5":  "Séparé/divorcé",
		"51": "5a Sans enf. à charge",
		"5a": "5a Sans enf. à charge",
		"5b": "5b Avec enf. en garde alternée",
		"5c": "5c Avec enf. en garde principale",
		"5d": "5d Avec enf. en droit de visite/hbgt",
		"5e": "5e Parent isolé",
		"5f": "5f Séparés sous le même toit",
		"6":  "Veuf/ve",
		"61": "6a Sans enf. à charge",
		"6a": "6a Sans enf. à charge",
		"6b": "6b Avec enf. à charge",
		"7":  "Non renseigné",
	},
	"Enfants à charge": {
		"0":  "Sans enfant",
		"1":  "1 enfant",
		"2":  "2 enfants",
		"3":  "3 enfants",
		"4":  "4 enfants",
		"5":  "5 enfants",
		"6":  "6 enfants",
		"7":  "7 enfants",
		"8":  "8 enfants",
		"9":  "9 enfants",
		"10": "10 enfants",
	},
}

// LigneReporting est une fiche d'entretien remise en libellés, prête pour
// les tableaux de bord et l'export
type LigneReporting map[string]string

// DashboardIndicateurs regroupe les indicateurs de synthèse affichés en
// tête du tableau de bord
type DashboardIndicateurs struct {
	TotalDossiers    int64  `json:"total_dossiers"`
	DureeFrequente   string `json:"duree_frequente"`
	ModeFrequent     string `json:"mode_frequent"`
	CommuneFrequente string `json:"commune_frequente"`
}

// Dashboard est la réponse complète du tableau de bord : indicateurs de
// synthèse plus répartitions par variable.
type Dashboard struct {
	Indicateurs  DashboardIndicateurs        `json:"indicateurs"`
	Repartitions map[string]map[string]int64 `json:"repartitions"`
}

// CroisementCellule est une cellule d'un tableau croisé ad hoc.
type CroisementCellule struct {
	Valeur   string `json:"valeur"`
	Croisee  string `json:"croisee,omitempty"`
	Effectif int64  `json:"effectif"`
}

// Croisement est la réponse du créateur de graphique : les effectifs par
// valeur de la variable principale, éventuellement ventilés par la variable
// croisée.
type Croisement struct {
	Variable   string              `json:"variable"`
	CroiseAvec string              `json:"croise_avec,omitempty"`
	Cellules   []CroisementCellule `json:"cellules"`
}
