package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devoverflow/backend/config"
	"github.com/devoverflow/backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := cfg.AdminEmail
	if email == "" {
		email = "admin@devoverflow.local"
	}
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (name, lastname, email, password_hash, role, is_verified, profile_picture)
		VALUES ('Admin', 'User', $1, $2, 'admin', TRUE, $3)
		ON CONFLICT (email) DO UPDATE SET role = 'admin', is_verified = TRUE
		RETURNING id
	`, email, hash, cfg.DefaultAvatar).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, email, password)

	var questionID string
	err = db.QueryRow(`
		INSERT INTO questions (title, body, tags, user_id)
		VALUES ($1, $2, string_to_array($3, ','), $4)
		RETURNING id
	`, "Welcome to DevOverflow",
		"This is a seeded question. Ask away!",
		"meta,welcome",
		adminID).Scan(&questionID)
	if err != nil {
		log.Fatalf("failed to seed question: %v", err)
	}
	fmt.Printf("seeded question: id=%s\n", questionID)
}
