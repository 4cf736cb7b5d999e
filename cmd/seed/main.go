// Command seed provisions a demo user with a wallet and an API key.
// The key secret is printed once and never stored in the clear.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"walletstack/internal/config"
	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/services/wallet"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	email := os.Getenv("SEED_EMAIL")
	name := os.Getenv("SEED_NAME")
	if email == "" {
		log.Fatal("SEED_EMAIL must be set in environment")
	}
	if name == "" {
		name = "Demo User"
	}

	db, err := repositories.Connect(repositories.DBConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	store := repositories.NewStore(db)

	user, err := store.Users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("User %s already exists (id=%d)", email, user.ID)
	} else {
		user = &models.User{Email: email, Name: name}
		if err := store.Users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		log.Printf("✅ Created user %s (id=%d)", email, user.ID)
	}

	walletService := wallet.NewService(store.Wallets, wallet.NoopCache{})
	w, err := walletService.CreateWallet(ctx, user.ID, models.CurrencyNGN)
	switch {
	case err == nil:
		log.Printf("✅ Created wallet %s", w.Number)
	case errors.Is(err, wallet.ErrWalletExists):
		w, _ = store.Wallets.GetByUserID(ctx, user.ID)
		log.Printf("Wallet already exists: %s", w.Number)
	default:
		log.Fatalf("Failed to create wallet: %v", err)
	}

	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash api key secret: %v", err)
	}

	key := &models.APIKey{
		UserID:     user.ID,
		PublicID:   "wsk_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		SecretHash: string(hash),
		Label:      "seed",
		Permissions: strings.Join(
			[]string{models.PermissionDeposit, models.PermissionTransfer, models.PermissionRead}, ","),
	}
	if err := store.APIKeys.Create(ctx, key); err != nil {
		log.Fatalf("Failed to create api key: %v", err)
	}

	log.Println("✅ Seed complete")
	log.Printf("API key (save it now, it will not be shown again): %s.%s", key.PublicID, secret)
}
