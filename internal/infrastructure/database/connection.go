package database

import (
	"context"

	"gorm.io/gorm"
)

// Clé de contexte indiquant que le fuseau horaire est déjà configuré
type timezoneKey struct{}

// SetTimezoneMiddleware crée un callback GORM qui fixe le fuseau horaire
// de la session à Paris avant chaque lecture, pour que date_ent sorte dans
// le fuseau des fiches.
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		// Évite la récursion infinie si la configuration est déjà en cours
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)

		tx := db.WithContext(ctx)
		tx.Exec("SET timezone = 'Europe/Paris'")
	}
}

// RegisterMiddlewares enregistre les callbacks GORM du service
func RegisterMiddlewares(db *gorm.DB) {
	// Uniquement sur le callback de lecture, pour limiter le surcoût
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
