package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/database"
	"github.com/skillbridge-bd/institute-backend/internal/logger"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"golang.org/x/term"
)

const minPasswordLength = 6

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	credentialService := service.NewCredentialService(repository.NewAdminRepository(pool), authService, cfg, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Reset Admin Credentials ===")

	fmt.Print("New Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		os.Exit(1)
	}

	password, err := readPassword("New Password: ")
	if err != nil {
		fmt.Println("\nError reading password")
		os.Exit(1)
	}
	if len(password) < minPasswordLength {
		fmt.Printf("Error: Password must be at least %d characters\n", minPasswordLength)
		os.Exit(1)
	}

	confirm, err := readPassword("Confirm Password: ")
	if err != nil {
		fmt.Println("\nError reading password")
		os.Exit(1)
	}
	if confirm != password {
		fmt.Println("Error: Passwords do not match")
		os.Exit(1)
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := credentialService.ResetCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			fmt.Println("Error: Username is already taken")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Failed to reset admin credentials")
	}

	fmt.Printf("\nSuccess! Admin '%s' updated. Existing sessions are signed out.\n", admin.Username)
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
