package wallet

import (
	"context"
	"strings"
	"testing"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/repositories/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collidingRepo wraps the in-memory repository and forces the first N
// creates to fail the unique index, as if every drawn number were taken.
type collidingRepo struct {
	repositories.WalletRepository
	collisions int
}

func (r *collidingRepo) Create(ctx context.Context, w *models.Wallet) error {
	if r.collisions > 0 {
		r.collisions--
		return repositories.ErrDuplicateKey
	}
	return r.WalletRepository.Create(ctx, w)
}

func TestWalletNumberFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateWalletNumber()
		assert.True(t, strings.HasPrefix(n, "WST"), "number %q missing prefix", n)
		assert.Len(t, n, 13)
		for _, r := range n[3:] {
			assert.True(t, r >= '0' && r <= '9', "number %q has non-digit", n)
		}
		seen[n] = true
	}
	// 100 draws from a 10-digit space should not all collide.
	assert.Greater(t, len(seen), 1)
}

func TestCreateWallet(t *testing.T) {
	t.Run("creates an empty active wallet", func(t *testing.T) {
		store, db := repotest.NewStore()
		svc := NewService(store.Wallets, NoopCache{})
		user := db.SeedUser("alice@example.com", "Alice")

		w, err := svc.CreateWallet(context.Background(), user.ID, "")
		require.NoError(t, err)
		assert.Equal(t, int64(0), w.Balance)
		assert.Equal(t, models.CurrencyNGN, w.Currency)
		assert.True(t, w.IsActive)
		assert.True(t, strings.HasPrefix(w.Number, "WST"))
	})

	t.Run("retries number collisions until the index accepts", func(t *testing.T) {
		store, db := repotest.NewStore()
		repo := &collidingRepo{WalletRepository: store.Wallets, collisions: maxNumberAttempts - 1}
		svc := NewService(repo, NoopCache{})
		user := db.SeedUser("alice@example.com", "Alice")

		w, err := svc.CreateWallet(context.Background(), user.ID, "")
		require.NoError(t, err)
		assert.Equal(t, 0, repo.collisions, "all retries should have been consumed")
		assert.NotEmpty(t, w.Number)
	})

	t.Run("gives up after exhausting the retry budget", func(t *testing.T) {
		store, db := repotest.NewStore()
		repo := &collidingRepo{WalletRepository: store.Wallets, collisions: maxNumberAttempts}
		svc := NewService(repo, NoopCache{})
		user := db.SeedUser("alice@example.com", "Alice")

		_, err := svc.CreateWallet(context.Background(), user.ID, "")
		assert.ErrorIs(t, err, ErrNumberExhausted)
	})

	t.Run("second wallet for the same user is rejected", func(t *testing.T) {
		store, db := repotest.NewStore()
		svc := NewService(store.Wallets, NoopCache{})
		user := db.SeedUser("alice@example.com", "Alice")

		_, err := svc.CreateWallet(context.Background(), user.ID, "")
		require.NoError(t, err)

		_, err = svc.CreateWallet(context.Background(), user.ID, "")
		assert.ErrorIs(t, err, ErrWalletExists)
	})
}

func TestGetWallet(t *testing.T) {
	store, db := repotest.NewStore()
	svc := NewService(store.Wallets, NoopCache{})
	user := db.SeedUser("alice@example.com", "Alice")
	seeded := db.SeedWallet(user.ID, "WST1234567890", 2_500, true)

	t.Run("by user", func(t *testing.T) {
		w, err := svc.GetWallet(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, w.ID)
		assert.Equal(t, int64(2_500), w.Balance)
	})

	t.Run("by number", func(t *testing.T) {
		w, err := svc.GetByNumber(context.Background(), "WST1234567890")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, w.ID)
	})

	t.Run("balance", func(t *testing.T) {
		balance, err := svc.GetBalance(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2_500), balance)
	})

	t.Run("missing wallet", func(t *testing.T) {
		_, err := svc.GetWallet(context.Background(), 999)
		assert.ErrorIs(t, err, ErrWalletNotFound)

		_, err = svc.GetByNumber(context.Background(), "WST0000000000")
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}
