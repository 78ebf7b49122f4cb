package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maison-du-droit/statistiques-api/internal/domain/entities"
)

// Valeur est le résultat de la coercition d'un champ. Une valeur non
// renseignée reste distincte d'une chaîne vide saisie : "pas de sélection"
// est un état valide du widget, jamais confondu avec "répondu mais vide".
type Valeur struct {
	Renseignee bool
	Donnee     interface{}
}

// NonRenseignee est la sentinelle explicite d'un champ laissé sans sélection.
var NonRenseignee = Valeur{}

// Chaine retourne la donnée sous forme de chaîne, "" si non renseignée.
func (v Valeur) Chaine() string {
	if !v.Renseignee {
		return ""
	}
	switch d := v.Donnee.(type) {
	case string:
		return d
	case int:
		return strconv.Itoa(d)
	case bool:
		return strconv.FormatBool(d)
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Coercer transforme la valeur brute soumise pour un champ en valeur typée.
// fourni indique si le client a transmis une valeur pour ce champ.
func Coercer(champ Champ, brut string, fourni bool) (Valeur, error) {
	switch champ.Type {
	case entities.TypeMod:
		// Absence de sélection = état valide, sentinelle explicite
		if !fourni || brut == "" {
			return NonRenseignee, nil
		}
		code, ok := champ.Code(brut)
		if !ok {
			return NonRenseignee, fmt.Errorf("libellé %q inconnu pour le champ %q", brut, champ.Lib)
		}
		return Valeur{Renseignee: true, Donnee: code}, nil

	case entities.TypeNum:
		// Une plage déclarée de (0,0) reste (0,0) : seule l'absence de
		// plage retombe sur les bornes par défaut
		min, max := champ.Min, champ.Max
		if !champ.PlageDefinie {
			min, max = MinDefaut, MaxDefaut
		}
		if !fourni || brut == "" {
			// Le contrôle numérique est toujours initialisé à sa borne basse
			return Valeur{Renseignee: true, Donnee: min}, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(brut))
		if err != nil {
			return NonRenseignee, fmt.Errorf("valeur numérique invalide pour %q : %q", champ.Lib, brut)
		}
		// Hors plage = rejet à la frontière, jamais d'écrêtage silencieux
		if n < min || n > max {
			return NonRenseignee, fmt.Errorf("valeur %d hors plage [%d, %d] pour %q", n, min, max, champ.Lib)
		}
		return Valeur{Renseignee: true, Donnee: n}, nil

	case entities.TypeChaine:
		// Liste de valeurs proposées avec échappatoire de saisie libre :
		// toute chaîne est acceptée
		return Valeur{Renseignee: true, Donnee: brut}, nil

	case entities.TypeDate:
		if !fourni || brut == "" {
			return NonRenseignee, nil
		}
		d, err := time.Parse("2006-01-02", brut)
		if err != nil {
			return NonRenseignee, fmt.Errorf("date invalide pour %q : %q", champ.Lib, brut)
		}
		return Valeur{Renseignee: true, Donnee: d.Format("2006-01-02")}, nil

	case entities.TypeBooleen:
		if !fourni || brut == "" {
			return NonRenseignee, nil
		}
		switch strings.ToLower(strings.TrimSpace(brut)) {
		case "true", "1", "oui":
			return Valeur{Renseignee: true, Donnee: true}, nil
		case "false", "0", "non":
			return Valeur{Renseignee: true, Donnee: false}, nil
		}
		return NonRenseignee, fmt.Errorf("booléen invalide pour %q : %q", champ.Lib, brut)
	}

	return NonRenseignee, fmt.Errorf("type de champ inconnu : %q", champ.Type)
}
