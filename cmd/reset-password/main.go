package main

import (
	"flag"
	"log"

	"go-dairy-books/internal/config"
	"go-dairy-books/internal/model"
	"go-dairy-books/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// One-shot ops tool: reset a user's password by email.
func main() {
	email := flag.String("email", "", "email of the user to reset")
	password := flag.String("password", "", "new password to set")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: reset-password -email <email> -password <new password>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db := database.Connect(cfg)

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
