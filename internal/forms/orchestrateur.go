package forms

import (
	"strings"
)

// Collecter parcourt la structure dans son ordre d'itération (ordre de
// construction, pas l'ordre des positions) et coerce la saisie brute de
// chaque champ en un enregistrement plat indexé par libellé en minuscules.
//
// Si deux variables de rubriques différentes partagent le même libellé en
// minuscules, la dernière écrase silencieusement la première : simplification
// assumée du modèle historique, à conserver.
func Collecter(structure Structure, saisie map[string]string) (map[string]Valeur, []error) {
	enregistrement := make(map[string]Valeur)
	var erreurs []error

	for _, rub := range structure {
		for _, champ := range rub.Champs {
			brut, fourni := saisie[champ.Lib]
			val, err := Coercer(champ, brut, fourni)
			if err != nil {
				erreurs = append(erreurs, err)
				continue
			}
			enregistrement[strings.ToLower(champ.Lib)] = val
		}
	}

	return enregistrement, erreurs
}
