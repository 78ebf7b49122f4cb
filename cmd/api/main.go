package main

import (
	"log"
	"os"
	"time"

	"github.com/maison-du-droit/statistiques-api/internal/infrastructure/database"
	"github.com/maison-du-droit/statistiques-api/internal/interfaces/http/middleware"
	"github.com/maison-du-droit/statistiques-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Variables d'environnement
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Pas de fichier .env, utilisation de l'environnement système")
	}

	// Connexion à la base : fatale si elle échoue
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Connexion PostgreSQL impossible : %v", err)
	}

	// Fichier de sauvegarde de la structure du questionnaire
	cheminSchema := os.Getenv("SCHEMA_FILE")
	if cheminSchema == "" {
		cheminSchema = "sauvegarde_modele_complet.json"
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Middlewares
	middleware.SetupMiddlewares(app)

	// Routes
	routes.SetupRoutes(app, db, cheminSchema)

	// Démarrage du serveur
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Serveur démarré sur le port %s", port)
	log.Fatal(app.Listen(":" + port))
}
