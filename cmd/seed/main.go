// Command seed populates the database with the demo user and a starter entry.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"workjournal/internal/auth"
	"workjournal/internal/db"
	"workjournal/internal/journal"
)

const (
	demoEmail    = "demo@user.com"
	demoPassword = "demopassword"
)

func main() {
	mongoURI := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGODB_DB", "workjournal")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, mongoURI, mongoDB)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	userRepo := auth.NewUserRepo(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure user indexes: %v", err)
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	created, err := userRepo.EnsureUser(ctx, demoEmail, hash)
	if err != nil {
		log.Fatalf("failed to create demo user: %v", err)
	}
	if !created {
		log.Printf("demo user %s already exists, nothing to do", demoEmail)
		return
	}

	entryRepo := journal.NewRepo(database)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	entry := &journal.Entry{
		Date:     today,
		Category: journal.CategoryLearning,
		Text:     "Learning Go for great good!",
	}
	if err := entryRepo.Insert(ctx, entry); err != nil {
		log.Fatalf("failed to create starter entry: %v", err)
	}

	log.Printf("seeded demo user %s and starter entry %s", demoEmail, entry.ID.Hex())
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
