package utils

import "time"

// GetParisLocation retourne le fuseau horaire de Paris. À utiliser partout
// dans le projet pour dater les fiches, afin de garder des dates cohérentes
// quel que soit le fuseau du serveur.
func GetParisLocation() *time.Location {
	parisLocation, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		// Repli sur UTC+1 si la base de fuseaux est indisponible
		parisLocation = time.FixedZone("CET", 1*60*60)
	}
	return parisLocation
}
