package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Types de valeur supportés par le configurateur de structure
const (
	TypeTexteListe = "Texte (Liste)"
	TypeNumerique  = "Numérique"
	TypeDate       = "Date"
	TypeBooleen    = "Booléen"
)

// Variable représente une question du questionnaire, rattachée à une rubrique.
// Les dates de validité sont stockées au format ISO (YYYY-MM-DD).
type Variable struct {
	Nom       string   `json:"-"`
	Position  int      `json:"position"`
	Type      string   `json:"type"`
	DateDebut string   `json:"date_debut"`
	DateFin   string   `json:"date_fin"`
	Defaut    string   `json:"defaut"`
	Modalites []string `json:"modalites"`
}

// Rubrique représente une section du questionnaire (ex : "L'ENTRETIEN").
// L'ordre des variables est l'ordre d'insertion, pas l'ordre des positions.
type Rubrique struct {
	Nom       string
	Position  int
	Variables []Variable
}

// SchemaTree est l'arbre complet rubrique ➤ variable ➤ modalités.
// L'ordre des rubriques est conservé tel quel de bout en bout : l'itération
// suit l'ordre d'insertion, jamais le champ position.
type SchemaTree struct {
	Rubriques []Rubrique
}

// Rubrique retourne la rubrique nommée, ou nil si elle n'existe pas.
func (t *SchemaTree) Rubrique(nom string) *Rubrique {
	for i := range t.Rubriques {
		if t.Rubriques[i].Nom == nom {
			return &t.Rubriques[i]
		}
	}
	return nil
}

// Variable retourne la variable nommée dans la rubrique, ou nil.
func (r *Rubrique) Variable(nom string) *Variable {
	for i := range r.Variables {
		if r.Variables[i].Nom == nom {
			return &r.Variables[i]
		}
	}
	return nil
}

// NextPosition calcule la position proposée pour un nouvel élément :
// 1 si aucun frère, sinon max des positions existantes + 1. Une position
// absente compte pour 0. La valeur n'est qu'une proposition, l'appelant
// peut la remplacer.
func NextPosition(positions []int) int {
	if len(positions) == 0 {
		return 1
	}
	max := 0
	for _, p := range positions {
		if p > max {
			max = p
		}
	}
	return max + 1
}

// NextRubriquePosition propose la position pour une nouvelle rubrique.
func (t *SchemaTree) NextRubriquePosition() int {
	positions := make([]int, 0, len(t.Rubriques))
	for _, r := range t.Rubriques {
		positions = append(positions, r.Position)
	}
	return NextPosition(positions)
}

// NextVariablePosition propose la position pour une nouvelle variable.
func (r *Rubrique) NextVariablePosition() int {
	positions := make([]int, 0, len(r.Variables))
	for _, v := range r.Variables {
		positions = append(positions, v.Position)
	}
	return NextPosition(positions)
}

// SetVariable écrit la variable dans la rubrique. Si ancienNom est non vide
// et différent du nouveau nom, l'ancienne clé est supprimée et la nouvelle
// prend sa place : c'est un renommage destructif, pas une mise à jour
// d'identité stable.
func (r *Rubrique) SetVariable(ancienNom string, v Variable) {
	if ancienNom != "" && ancienNom != v.Nom {
		for i := range r.Variables {
			if r.Variables[i].Nom == ancienNom {
				r.Variables[i] = v
				return
			}
		}
	}
	for i := range r.Variables {
		if r.Variables[i].Nom == v.Nom {
			r.Variables[i] = v
			return
		}
	}
	r.Variables = append(r.Variables, v)
}

// BornesAnneeCourante retourne le 1er janvier et le 31 décembre de l'année
// en cours, valeurs par défaut des dates de validité.
func BornesAnneeCourante() (time.Time, time.Time) {
	annee := time.Now().Year()
	debut := time.Date(annee, time.January, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(annee, time.December, 31, 0, 0, 0, 0, time.UTC)
	return debut, fin
}

// DatesValidite parse les dates de validité stockées. Un échec de parsing
// retombe sur les bornes de l'année courante, jamais sur une erreur.
func (v *Variable) DatesValidite() (time.Time, time.Time) {
	debutDefaut, finDefaut := BornesAnneeCourante()
	debut, errD := time.Parse("2006-01-02", v.DateDebut)
	fin, errF := time.Parse("2006-01-02", v.DateFin)
	if errD != nil || errF != nil {
		return debutDefaut, finDefaut
	}
	return debut, fin
}

// MarshalJSON sérialise l'arbre en objet JSON dont les clés de premier
// niveau sont les noms de rubriques, dans l'ordre d'insertion. Le format
// est celui du fichier de sauvegarde historique.
func (t SchemaTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rub := range t.Rubriques {
		if i > 0 {
			buf.WriteByte(',')
		}
		nom, err := json.Marshal(rub.Nom)
		if err != nil {
			return nil, err
		}
		buf.Write(nom)
		buf.WriteString(`:{"position":`)
		fmt.Fprintf(&buf, "%d", rub.Position)
		buf.WriteString(`,"variables":{`)
		for j, v := range rub.Variables {
			if j > 0 {
				buf.WriteByte(',')
			}
			nomVar, err := json.Marshal(v.Nom)
			if err != nil {
				return nil, err
			}
			buf.Write(nomVar)
			buf.WriteByte(':')
			corps, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(corps)
		}
		buf.WriteString("}}")
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reconstruit l'arbre en conservant l'ordre des clés du
// document, ce que encoding/json ne fait pas pour une map standard.
func (t *SchemaTree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := attendreDelim(dec, '{'); err != nil {
		return err
	}

	arbre := SchemaTree{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		nomRub, ok := tok.(string)
		if !ok {
			return fmt.Errorf("nom de rubrique attendu, obtenu %v", tok)
		}

		rub := Rubrique{Nom: nomRub}
		if err := attendreDelim(dec, '{'); err != nil {
			return err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			cle, ok := tok.(string)
			if !ok {
				return fmt.Errorf("clé de rubrique attendue, obtenu %v", tok)
			}
			switch cle {
			case "position":
				if err := dec.Decode(&rub.Position); err != nil {
					return fmt.Errorf("position de la rubrique %q : %w", nomRub, err)
				}
			case "variables":
				if err := decoderVariables(dec, &rub); err != nil {
					return fmt.Errorf("variables de la rubrique %q : %w", nomRub, err)
				}
			default:
				// Clé inconnue : on saute la valeur pour rester tolérant
				var poubelle json.RawMessage
				if err := dec.Decode(&poubelle); err != nil {
					return err
				}
			}
		}
		if err := attendreDelim(dec, '}'); err != nil {
			return err
		}
		arbre.Rubriques = append(arbre.Rubriques, rub)
	}
	if err := attendreDelim(dec, '}'); err != nil {
		return err
	}

	*t = arbre
	return nil
}

func decoderVariables(dec *json.Decoder, rub *Rubrique) error {
	if err := attendreDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		nomVar, ok := tok.(string)
		if !ok {
			return fmt.Errorf("nom de variable attendu, obtenu %v", tok)
		}
		var v Variable
		if err := dec.Decode(&v); err != nil {
			return err
		}
		v.Nom = nomVar
		rub.Variables = append(rub.Variables, v)
	}
	return attendreDelim(dec, '}')
}

func attendreDelim(dec *json.Decoder, attendu json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != attendu {
		return fmt.Errorf("délimiteur %q attendu, obtenu %v", attendu, tok)
	}
	return nil
}
