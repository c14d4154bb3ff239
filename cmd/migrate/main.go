package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ecokosova-dashboard/internal/database"
	"ecokosova-dashboard/internal/prefs"
	"ecokosova-dashboard/internal/settings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeded, err := database.SeedPreferences(db, map[string]any{
		prefs.KeySettings: settings.Default(),
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM preferences`); err != nil {
		log.Fatalf("Failed to query summary: %v", err)
	}

	fmt.Println("\n============================================================")
	fmt.Println("MIGRATION SUMMARY")
	fmt.Println("============================================================")
	fmt.Printf("Migrations applied:      %d\n", len(database.Migrations))
	fmt.Printf("Seeded preferences:      %d\n", seeded)
	fmt.Printf("Stored preferences:      %d\n", count)
	fmt.Println("============================================================")
}
