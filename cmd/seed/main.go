package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/howietz/placeshare/config"
)

// Seeds a demo user with one place for local development. The place insert
// and the owned-set append run in one transaction, same as the live create
// path.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "howie@g.com"
	name := "howie"
	password := "secret-demo"

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id::text
	`, name, email, password, "https://cdn-icons-png.flaticon.com/512/147/147140.png").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", userID, email, name, password)

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var placeID string
	err = tx.QueryRow(`
		INSERT INTO places (title, description, address, lat, lon, image, creator)
		VALUES ($1, $2, $3, $4, $5, $6, $7::uuid)
		RETURNING id::text
	`, "Empire State Building", "One of the most famous sky scrapers in the world",
		"20 W 34th St., New York, NY 10001 America", 40.7484474, -73.9856528, "", userID).Scan(&placeID)
	if err != nil {
		log.Fatalf("failed to seed place: %v", err)
	}
	if _, err := tx.Exec(`
		UPDATE users
		SET place_ids = array_append(place_ids, $2::uuid)
		WHERE id = $1::uuid
	`, userID, placeID); err != nil {
		log.Fatalf("failed to link place to user: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit: %v", err)
	}
	fmt.Printf("seeded place: id=%s creator=%s\n", placeID, userID)
}
