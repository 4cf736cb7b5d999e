package transfer

import (
	"context"
	"testing"

	"walletstack/internal/models"
	"walletstack/internal/repositories/repotest"
	"walletstack/internal/services/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (Service, *repotest.DB) {
	store, db := repotest.NewStore()
	svc := NewService(&repotest.Runner{Store: store}, wallet.NoopCache{}, nil)
	return svc, db
}

func TestTransfer_Success(t *testing.T) {
	svc, db := newTestService()
	alice := db.SeedUser("alice@example.com", "Alice")
	bob := db.SeedUser("bob@example.com", "Bob")
	senderWallet := db.SeedWallet(alice.ID, "WST1000000001", 10_000, true)
	recipientWallet := db.SeedWallet(bob.ID, "WST1000000002", 500, true)

	txn, err := svc.Transfer(context.Background(), alice.ID, recipientWallet.Number, 3_000, "rent")
	require.NoError(t, err)

	assert.Equal(t, models.TransactionTypeTransfer, txn.Type)
	assert.Equal(t, models.TransactionStatusSuccess, txn.Status)
	assert.Equal(t, int64(3_000), txn.Amount)
	require.NotNil(t, txn.SenderWalletID)
	assert.Equal(t, senderWallet.ID, *txn.SenderWalletID)
	assert.Equal(t, recipientWallet.ID, txn.RecipientWalletID)

	assert.Equal(t, int64(7_000), db.Wallet(senderWallet.ID).Balance)
	assert.Equal(t, int64(3_500), db.Wallet(recipientWallet.ID).Balance)
}

func TestTransfer_ConservesTotalBalance(t *testing.T) {
	svc, db := newTestService()
	alice := db.SeedUser("alice@example.com", "Alice")
	bob := db.SeedUser("bob@example.com", "Bob")
	senderWallet := db.SeedWallet(alice.ID, "WST1000000001", 10_000, true)
	recipientWallet := db.SeedWallet(bob.ID, "WST1000000002", 500, true)
	before := db.Wallet(senderWallet.ID).Balance + db.Wallet(recipientWallet.ID).Balance

	for i := 0; i < 4; i++ {
		_, err := svc.Transfer(context.Background(), alice.ID, recipientWallet.Number, 2_000, "")
		require.NoError(t, err)
	}

	after := db.Wallet(senderWallet.ID).Balance + db.Wallet(recipientWallet.ID).Balance
	assert.Equal(t, before, after)
	assert.Equal(t, int64(2_000), db.Wallet(senderWallet.ID).Balance)
}

func TestTransfer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		userID  func(alice, bob models.User) uint
		number  string
		amount  int64
		wantErr error
	}{
		{
			name:    "insufficient balance",
			userID:  func(alice, _ models.User) uint { return alice.ID },
			number:  "WST1000000002",
			amount:  10_001,
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "zero amount",
			userID:  func(alice, _ models.User) uint { return alice.ID },
			number:  "WST1000000002",
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			userID:  func(alice, _ models.User) uint { return alice.ID },
			number:  "WST1000000002",
			amount:  -50,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "self transfer",
			userID:  func(alice, _ models.User) uint { return alice.ID },
			number:  "WST1000000001",
			amount:  100,
			wantErr: ErrSelfTransfer,
		},
		{
			name:    "recipient not found",
			userID:  func(alice, _ models.User) uint { return alice.ID },
			number:  "WST9999999999",
			amount:  100,
			wantErr: ErrRecipientWalletNotFound,
		},
		{
			name:    "sender has no wallet",
			userID:  func(_, _ models.User) uint { return 999 },
			number:  "WST1000000002",
			amount:  100,
			wantErr: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestService()
			alice := db.SeedUser("alice@example.com", "Alice")
			bob := db.SeedUser("bob@example.com", "Bob")
			senderWallet := db.SeedWallet(alice.ID, "WST1000000001", 10_000, true)
			recipientWallet := db.SeedWallet(bob.ID, "WST1000000002", 500, true)

			_, err := svc.Transfer(context.Background(), tt.userID(alice, bob), tt.number, tt.amount, "")
			assert.ErrorIs(t, err, tt.wantErr)

			// No partial application: both balances untouched, no ledger entry.
			assert.Equal(t, int64(10_000), db.Wallet(senderWallet.ID).Balance)
			assert.Equal(t, int64(500), db.Wallet(recipientWallet.ID).Balance)
			assert.Equal(t, 0, db.TransactionCount())
		})
	}
}

func TestTransfer_InactiveWalletRejected(t *testing.T) {
	svc, db := newTestService()
	alice := db.SeedUser("alice@example.com", "Alice")
	bob := db.SeedUser("bob@example.com", "Bob")
	db.SeedWallet(alice.ID, "WST1000000001", 10_000, true)
	frozen := db.SeedWallet(bob.ID, "WST1000000002", 500, false)

	_, err := svc.Transfer(context.Background(), alice.ID, frozen.Number, 100, "")
	assert.ErrorIs(t, err, ErrWalletInactive)
}
