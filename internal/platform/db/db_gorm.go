// Package db opens the application's gorm database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accountentity "tradetracker/internal/feature/accounts/domain/entity"
	authentity "tradetracker/internal/feature/auth/domain/entity"
)

// OpenDB connects to Postgres using the DB_* environment variables, or to
// a local SQLite file when DB_HOST is unset. Error translation is enabled
// so the stores can match gorm.ErrDuplicatedKey across both drivers.
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	host := os.Getenv("DB_HOST")
	if host == "" {
		path := os.Getenv("DB_SQLITE_PATH")
		if path == "" {
			path = "tradetracker.db"
		}
		db, err = gorm.Open(gsqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
		)

		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&accountentity.TerminalAccount{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
