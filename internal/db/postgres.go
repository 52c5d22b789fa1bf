package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id VARCHAR(32) PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			unit VARCHAR(20) NOT NULL,
			category VARCHAR(50) NOT NULL,
			quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			min_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			expiry_date DATE NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES (ingredient lines as jsonb)
	// -------------------------------
	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id VARCHAR(32) PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			instructions TEXT NOT NULL DEFAULT '',
			servings INT NOT NULL DEFAULT 1,
			prep_time INT NOT NULL DEFAULT 0,
			cook_time INT NOT NULL DEFAULT 0,
			ingredients JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEALS
	// -------------------------------
	// meal_date is the plain YYYY-MM-DD string the API speaks; keeping
	// it as text avoids any timezone round-trip in the driver.
	mealsSQL := `
		CREATE TABLE IF NOT EXISTS meals (
			id VARCHAR(32) PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			meal_date CHAR(10) NOT NULL,
			time_slot VARCHAR(20) NOT NULL,
			recipe_id VARCHAR(32) NOT NULL,
			done BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, mealsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
