// Command main runs the database seeder for the portfolio backend.
package main

import (
	"flag"
	"log"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/seed"
)

func main() {
	// Parse command line flags
	adminName := flag.String("admin-name", "Admin", "Admin display name")
	adminEmail := flag.String("admin-email", "admin@example.com", "Admin email")
	adminPassword := flag.String("admin-password", "changeme", "Admin password")
	numSkills := flag.Int("skills", 8, "Number of skills to create")
	numProjects := flag.Int("projects", 4, "Number of projects to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	demoContent := flag.Bool("demo", true, "Seed demo content in addition to the admin account")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	admin, err := s.SeedAdmin(*adminName, *adminEmail, *adminPassword)
	if err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}
	log.Printf("Admin account ready: %s", admin.Email)

	if *demoContent {
		if err := s.SeedDemoContent(*numSkills, *numProjects); err != nil {
			log.Fatalf("Demo content seeding failed: %v", err)
		}
		log.Printf("Seeded demo content: %d skills, %d projects", *numSkills, *numProjects)
	}

	log.Println("Seeding complete")
}
