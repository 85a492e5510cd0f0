package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

// DB is the process-wide connection pool, safe for concurrent use.
var DB *gorm.DB

// Connect opens the Postgres connection pool and stores it in DB.
func Connect(cfg *config.Config) *gorm.DB {
	port := cfg.DBPort
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	DB = db
	log.Printf("database connected: %s/%s", cfg.DBHost, cfg.DBName)
	return db
}
