package database

import (
	"fmt"
	"os"
	"time"

	"github.com/maison-du-droit/statistiques-api/internal/infrastructure/database/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase ouvre la connexion PostgreSQL et applique les migrations.
// Une base injoignable est fatale à la session : l'erreur remonte et le
// processus s'arrête, pas de mode dégradé.
func SetupDatabase() (*gorm.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	config := &gorm.Config{
		// Chaque groupe d'insertion gère sa propre transaction
		SkipDefaultTransaction: true,
		// Requêtes préparées pour de meilleures performances
		PrepareStmt: true,
		// Journalisation réduite aux erreurs
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(dbURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Pool de connexions
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Fuseau horaire de session
	RegisterMiddlewares(db)

	// Migrations et index
	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	return db, nil
}
