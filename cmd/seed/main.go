package main

import (
	"context"
	"fmt"
	"log"

	"cinebook/internal/seeding"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
)

func main() {
	fmt.Println("🌱 Starting Cinebook Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Drop and recreate the schema so the seeder always starts clean
	fmt.Println("\n🧹 Resetting database schema...")
	if err := database.Reset(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}
	fmt.Println("✅ Database reset successfully")

	// Seed demo catalog and admin account
	fmt.Println("\n🌱 Seeding demo data...")
	seeder := seeding.NewSeeder(db.GetPostgreSQL())
	if err := seeder.SeedDemoData(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	// Clear Redis so rate limit windows start fresh
	if db.Redis != nil {
		if err := db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	fmt.Println("\n🎉 Seeding completed! Database is ready.")
}
