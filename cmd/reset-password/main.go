package main

import (
	"flag"
	"log"

	"go-warehouse-api/internal/config"
	applogger "go-warehouse-api/internal/logger"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/database"
	"go-warehouse-api/pkg/validator"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Operational escape hatch: resets a user's password directly in the
// store when the account is locked out.
func main() {
	username := flag.String("username", "admin", "account to reset")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *password == "" {
		log.Fatal("a -password value is required")
	}
	if !validator.StrongPassword(*password) {
		log.Fatal("password must be at least 10 characters with upper, lower, digit and special characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	zlog, err := applogger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.Database, zlog)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var user model.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("user %s not found: %v", *username, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		log.Fatalf("failed to update password: %v", err)
	}

	log.Printf("password for %s has been reset", *username)
}
