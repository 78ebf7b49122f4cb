package entities

// DefaultSchemaTree construit l'arbre de structure par défaut, utilisé quand
// aucune sauvegarde n'existe ou quand la sauvegarde est illisible. Les dates
// de validité sont bornées à l'année en cours.
func DefaultSchemaTree() SchemaTree {
	debut, fin := BornesAnneeCourante()
	dateDebut := debut.Format("2006-01-02")
	dateFin := fin.Format("2006-01-02")

	liste := func(nom string, position int, defaut string, modalites ...string) Variable {
		return Variable{
			Nom:       nom,
			Position:  position,
			Type:      TypeTexteListe,
			DateDebut: dateDebut,
			DateFin:   dateFin,
			Defaut:    defaut,
			Modalites: modalites,
		}
	}

	return SchemaTree{Rubriques: []Rubrique{
		{
			Nom:      "L'ENTRETIEN",
			Position: 1,
			Variables: []Variable{
				liste("Mode d'entretien", 1, "RDV",
					"RDV", "Sans RDV", "Téléphonique", "Courrier", "Mail"),
				liste("Durée de l'entretien", 2, "15 à 30 min",
					"- 15 min.", "15 à 30 min", "30 à 45 min", "45 à 60 min", "+ de 60 min"),
			},
		},
		{
			Nom:      "L'USAGER",
			Position: 2,
			Variables: []Variable{
				liste("Sexe", 1, "Femme", "Homme", "Femme"),
				liste("Type usager", 2, "Particulier",
					"Particulier", "Couple", "Professionnel", "Personne morale"),
				liste("Tranche d'âge", 3, "26-40 ans",
					"-18 ans", "18-25 ans", "26-40 ans", "41-60 ans", "+ 60 ans"),
				liste("Vient pour (Bénéficiaire)", 4, "Soi",
					"Soi", "Conjoint", "Parent", "Enfant", "Autre"),
				liste("Situation familiale", 5, "Célibataire",
					"Célibataire", "Concubin", "Pacsé", "Marié", "Séparé/divorcé", "Veuf/ve"),
				liste("Situation enfants", 6, "Sans enf. à charge",
					"Sans enf. à charge", "Avec enf. en garde alternée", "Avec enf. en garde principale",
					"Avec enf. en droit de visite/hbgt", "Parent isolé", "Séparés sous le même toit"),
				liste("Profession (CSP)", 7, "Employé",
					"Scolaire/étudiant/formation", "Pêcheur/agriculteur", "Chef d'entreprise", "Libéral",
					"Militaire", "Employé", "Ouvrier", "Cadre", "Retraité", "En recherche d'emploi",
					"Sans profession", "Non renseigné"),
				liste("Sources de revenus", 8, "Salaire",
					"Salaire", "Revenus pro.", "Retraite/réversion", "Allocations chômage", "RSA",
					"AAH/invalidité", "USS", "Bourse d'études.", "Sans revenu", "Autre"),
			},
		},
		{
			Nom:      "CONTEXTE / DISPOSITIF",
			Position: 3,
			Variables: []Variable{
				liste("Prescripteur (Qui a orienté)", 1, "Internet",
					"Bouche à oreille", "Internet", "Presse", "Tribunaux", "Police/gendarmerie",
					"Avocat/Notaire/Huissier", "Mairie/EPCI", "CAF", "Maison France Service",
					"Assistante sociale", "France Victimes", "Assoc. consommateurs", "ADIL", "Déjà venu"),
			},
		},
		{
			Nom:      "NATURE DE LA DEMANDE",
			Position: 4,
			Variables: []Variable{
				liste("Droit de la famille", 1, "",
					"Séparation / divorce", "PA/PC", "Droit de garde", "Autorité parentale",
					"Filiation adoption", "Régimes matrimoniaux", "Protection des majeurs",
					"Successions", "Assistance éducative", "Violences conjugales"),
				liste("Logement & Conso", 2, "",
					"Litiges locatifs", "Expulsion", "Achat/vente", "Copropriété", "Conflit voisinage",
					"Crédit/dette", "Banque/Assurance", "Surendettement", "Téléphonie/internet"),
				liste("Travail / Social / Pénal", 3, "",
					"Contrat de travail", "Licenciement/Rupture", "Droit des étrangers", "Aides sociales",
					"Retraite", "Auteur infraction", "Victime infraction", "Litige administration"),
			},
		},
		{
			Nom:      "RÉPONSE APPORTÉE",
			Position: 5,
			Variables: []Variable{
				liste("Type de réponse", 1, "Information",
					"Information", "Aide rédaction courrier", "Aide démarches en ligne",
					"Orientation Avocat", "Orientation Notaire/Huissier", "Orientation Tribunal",
					"Orientation Conciliateur/Médiateur", "Orientation CAF/Social",
					"Orientation Assoc. spécialisée"),
			},
		},
	}}
}
