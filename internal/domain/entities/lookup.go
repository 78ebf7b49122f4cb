package entities

// Tables de paramétrage qui décrivent le questionnaire côté base. Elles sont
// lues pour reconstruire la structure, jamais réécrites par ce service : les
// deux outils (configurateur fichier et saisie sur base) restent des contextes
// indépendants, non réconciliés.

// Catégories et types de variable utilisés dans les tables de paramétrage
const (
	TabEntretien = "ENTRETIEN"
	TabDemande   = "DEMANDE"
	TabSolution  = "SOLUTION"

	TypeMod    = "MOD"
	TypeNum    = "NUM"
	TypeChaine = "CHAINE"
)

// RubriqueRow est une ligne de la table rubrique (position, libellé).
type RubriqueRow struct {
	Pos int    `json:"pos" gorm:"primaryKey;column:pos"`
	Lib string `json:"lib" gorm:"column:lib"`
}

func (RubriqueRow) TableName() string {
	return "rubrique"
}

// VariableRow est une ligne de la table variable.
type VariableRow struct {
	Tab         string `json:"tab" gorm:"primaryKey;column:tab"`
	Pos         int    `json:"pos" gorm:"primaryKey;column:pos"`
	Lib         string `json:"lib" gorm:"column:lib"`
	Commentaire string `json:"commentaire" gorm:"column:commentaire"`
	TypeV       string `json:"type_v" gorm:"column:type_v"`
	Rubrique    int    `json:"rubrique" gorm:"column:rubrique"`
}

func (VariableRow) TableName() string {
	return "variable"
}

// ModaliteRow est une ligne de la table modalite : une option codée d'une
// variable de type MOD.
type ModaliteRow struct {
	Tab  string `json:"tab" gorm:"primaryKey;column:tab"`
	Pos  int    `json:"pos" gorm:"primaryKey;column:pos"`
	PosM int    `json:"pos_m" gorm:"primaryKey;column:pos_m"`
	Code string `json:"code" gorm:"column:code"`
	LibM string `json:"lib_m" gorm:"column:lib_m"`
}

func (ModaliteRow) TableName() string {
	return "modalite"
}

// PlageRow borne une variable de type NUM.
type PlageRow struct {
	Tab    string `json:"tab" gorm:"primaryKey;column:tab"`
	Pos    int    `json:"pos" gorm:"primaryKey;column:pos"`
	ValMin int    `json:"val_min" gorm:"column:val_min"`
	ValMax int    `json:"val_max" gorm:"column:val_max"`
}

func (PlageRow) TableName() string {
	return "plage"
}

// ValeursCRow est une valeur proposée pour une variable de type CHAINE.
type ValeursCRow struct {
	Tab  string `json:"tab" gorm:"primaryKey;column:tab"`
	Pos  int    `json:"pos" gorm:"primaryKey;column:pos"`
	PosC int    `json:"pos_c" gorm:"primaryKey;column:pos_c"`
	Lib  string `json:"lib" gorm:"column:lib"`
}

func (ValeursCRow) TableName() string {
	return "valeurs_c"
}
