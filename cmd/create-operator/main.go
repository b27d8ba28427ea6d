package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/pizzariapopovici/orderapi/internal/config"
	"github.com/pizzariapopovici/orderapi/internal/domain"
	"github.com/pizzariapopovici/orderapi/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/create-operator/main.go <name> <email> <password>")
		fmt.Println("Example: go run cmd/create-operator/main.go \"Ana Popovici\" ana@pizzaria.com s3cret")
		os.Exit(1)
	}

	name := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Hash the password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	// Create repositories
	repos := postgres.NewRepositories(db, logger)

	// Create operator
	operator := &domain.Operator{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		IsActive:     true,
	}

	err = repos.Operator.Create(context.Background(), operator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create operator: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Operator created successfully!\n\n")
	fmt.Printf("Operator ID: %s\n", operator.ID.String())
	fmt.Printf("Name: %s\n", operator.Name)
	fmt.Printf("Email: %s\n", operator.Email)
	fmt.Printf("\nLog in with POST /v1/auth/login to obtain a console token.\n")
}
