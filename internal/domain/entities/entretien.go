package entities

import "time"

// Entretien représente une fiche d'entretien saisie par un intervenant.
// La ligne est immuable après insertion : aucun parcours d'édition ou de
// suppression n'existe dans le système.
type Entretien struct {
	Num        int64     `json:"num" gorm:"primaryKey;column:num;autoIncrement"`
	DateEnt    time.Time `json:"date_ent" gorm:"column:date_ent"`
	Mode       string    `json:"mode" gorm:"column:mode"`
	Duree      string    `json:"duree" gorm:"column:duree"`
	Sexe       string    `json:"sexe" gorm:"column:sexe"`
	Age        string    `json:"age" gorm:"column:age"`
	VientPr    string    `json:"vient_pr" gorm:"column:vient_pr"`
	SitFam     string    `json:"sit_fam" gorm:"column:sit_fam"`
	Enfant     string    `json:"enfant" gorm:"column:enfant"`
	ModeleFam  string    `json:"modele_fam" gorm:"column:modele_fam"`
	Profession string    `json:"profession" gorm:"column:profession"`
	Ress       string    `json:"ress" gorm:"column:ress"`
	Origine    string    `json:"origine" gorm:"column:origine"`
	Commune    string    `json:"commune" gorm:"column:commune"`
	Partenaire string    `json:"partenaire" gorm:"column:partenaire"`
}

// TableName force le nom historique de la table
func (Entretien) TableName() string {
	return "entretien"
}

// Demande est un code "nature de la demande" rattaché à un entretien,
// 3 au maximum, ordonnés par pos.
type Demande struct {
	Num    int64  `json:"num" gorm:"primaryKey;column:num"`
	Pos    int    `json:"pos" gorm:"primaryKey;column:pos"`
	Nature string `json:"nature" gorm:"column:nature"`
}

func (Demande) TableName() string {
	return "demande"
}

// Solution est un code "réponse apportée" rattaché à un entretien,
// 3 au maximum, ordonnés par pos.
type Solution struct {
	Num    int64  `json:"num" gorm:"primaryKey;column:num"`
	Pos    int    `json:"pos" gorm:"primaryKey;column:pos"`
	Nature string `json:"nature" gorm:"column:nature"`
}

func (Solution) TableName() string {
	return "solution"
}
