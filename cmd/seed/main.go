package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/adapter/repository"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/auth"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
	"github.com/johnquangdev/engagement-tracker/pkg/config"
	"github.com/johnquangdev/engagement-tracker/pkg/jwt"
	"github.com/johnquangdev/engagement-tracker/pkg/logger"
)

// seedPassword is shared by every test account
const seedPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatalf("Refusing to seed test users in production")
	}

	appLogger := logger.New(cfg.Server.Environment)
	defer appLogger.Sync()

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg, 30*time.Second, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	store := repository.NewStore(db)
	authService := auth.NewAuthService(store.Users(), jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry), nil)

	testUsers := []string{"alice", "bob", "charlie", "diana", "eve"}

	for i, username := range testUsers {
		_, err := authService.Register(ctx, auth.RegisterInput{
			Username: username,
			Email:    username + "@test.local",
			Password: seedPassword,
		})
		if err != nil && !usecaseErrors.IsConflict(err) {
			appLogger.Error("❌ Failed to create user", zap.String("username", username), zap.Error(err))
			continue
		}

		resp, err := authService.Login(ctx, username, seedPassword)
		if err != nil {
			if errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
				appLogger.Warn("⚠️  User exists with a different password", zap.String("username", username))
				continue
			}
			appLogger.Error("❌ Failed to log in", zap.String("username", username), zap.Error(err))
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s (id %d)\n", i+1, username, resp.User.ID)
		fmt.Printf("Password:     %s\n", seedPassword)
		fmt.Printf("Access Token (expires in %v):\n%s\n", cfg.JWT.Expiry, resp.AccessToken)
	}

	appLogger.Info("✅ Test users ready", zap.Int("count", len(testUsers)))
	fmt.Println("\n🧹 To clean up: DELETE FROM users WHERE email LIKE '%@test.local'")
}
