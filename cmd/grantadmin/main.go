package main

// Grant the admin label to a user:
//   go run ./cmd/grantadmin <user-id>
//
// Labels are never set through the API; an operator runs this after the
// user's first sign-in.

import (
	"context"
	"log"
	"os"

	"codexiv-backend/internal/shared/config"
	"codexiv-backend/internal/shared/storage/db"
	"codexiv-backend/internal/users"
)

func main() {
	if len(os.Args) != 2 {
		log.Printf("usage: grantadmin <user-id>")
		os.Exit(2)
	}
	userID := os.Args[1]

	cfg := config.Load()
	ctx := context.Background()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	svc := users.NewService(&users.PGRepo{DB: sqlDB})
	if err := svc.GrantLabel(ctx, userID, users.AdminLabel); err != nil {
		log.Printf("failed to grant admin label: %v", err)
		os.Exit(1)
	}
	log.Printf("granted %q label to user %s", users.AdminLabel, userID)
}
