package ledger

import (
	"context"
	"fmt"
	"testing"

	"walletstack/internal/models"
	"walletstack/internal/repositories/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (Service, *repotest.DB) {
	store, db := repotest.NewStore()
	return NewService(store.Transactions), db
}

func seedEntry(t *testing.T, svc Service, walletID uint, amount int64, reference string) *models.Transaction {
	t.Helper()
	var ref *string
	if reference != "" {
		ref = &reference
	}
	txn, err := svc.Create(context.Background(), CreateRequest{
		Type:              models.TransactionTypeDeposit,
		Amount:            amount,
		RecipientWalletID: walletID,
		Reference:         ref,
	})
	require.NoError(t, err)
	return txn
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	t.Run("defaults to pending", func(t *testing.T) {
		txn := seedEntry(t, svc, 1, 500, "DEP-a")
		assert.Equal(t, models.TransactionStatusPending, txn.Status)
		assert.False(t, txn.IsTerminal())
	})

	t.Run("duplicate reference rejected", func(t *testing.T) {
		seedEntry(t, svc, 1, 500, "DEP-dup")
		ref := "DEP-dup"
		_, err := svc.Create(context.Background(), CreateRequest{
			Type:              models.TransactionTypeDeposit,
			Amount:            500,
			RecipientWalletID: 1,
			Reference:         &ref,
		})
		assert.ErrorIs(t, err, ErrDuplicateReference)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateRequest{
			Type:              models.TransactionTypeDeposit,
			Amount:            0,
			RecipientWalletID: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("pending to success", func(t *testing.T) {
		svc, db := newTestService()
		txn := seedEntry(t, svc, 1, 500, "")

		require.NoError(t, svc.SetStatus(context.Background(), txn.ID, models.TransactionStatusSuccess))
		assert.Equal(t, models.TransactionStatusSuccess, db.Transaction(txn.ID).Status)
	})

	t.Run("same terminal status is a no-op", func(t *testing.T) {
		svc, db := newTestService()
		txn := seedEntry(t, svc, 1, 500, "")

		require.NoError(t, svc.SetStatus(context.Background(), txn.ID, models.TransactionStatusFailed))
		require.NoError(t, svc.SetStatus(context.Background(), txn.ID, models.TransactionStatusFailed))
		assert.Equal(t, models.TransactionStatusFailed, db.Transaction(txn.ID).Status)
	})

	t.Run("terminal status cannot be rewritten", func(t *testing.T) {
		svc, db := newTestService()
		txn := seedEntry(t, svc, 1, 500, "")

		require.NoError(t, svc.SetStatus(context.Background(), txn.ID, models.TransactionStatusSuccess))
		err := svc.SetStatus(context.Background(), txn.ID, models.TransactionStatusFailed)
		assert.ErrorIs(t, err, ErrStatusConflict)
		assert.Equal(t, models.TransactionStatusSuccess, db.Transaction(txn.ID).Status)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.SetStatus(context.Background(), 999, models.TransactionStatusSuccess)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestListForWallet(t *testing.T) {
	svc, _ := newTestService()
	const walletID = uint(7)
	for i := 0; i < 45; i++ {
		seedEntry(t, svc, walletID, int64(100+i), fmt.Sprintf("DEP-%03d", i))
	}

	t.Run("newest first with pagination meta", func(t *testing.T) {
		txns, meta, err := svc.ListForWallet(context.Background(), walletID, 1, 20)
		require.NoError(t, err)
		assert.Len(t, txns, 20)
		assert.Equal(t, int64(45), meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, "DEP-044", *txns[0].Reference)
	})

	t.Run("last page is partial", func(t *testing.T) {
		txns, meta, err := svc.ListForWallet(context.Background(), walletID, 3, 20)
		require.NoError(t, err)
		assert.Len(t, txns, 5)
		assert.Equal(t, 3, meta.Page)
		assert.Equal(t, "DEP-000", *txns[len(txns)-1].Reference)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		txns, meta, err := svc.ListForWallet(context.Background(), walletID, 9, 20)
		require.NoError(t, err)
		assert.Empty(t, txns)
		assert.Equal(t, int64(45), meta.Total)
	})

	t.Run("out-of-range inputs are clamped", func(t *testing.T) {
		txns, meta, err := svc.ListForWallet(context.Background(), walletID, 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 1, meta.Page)
		assert.Len(t, txns, 20)
	})

	t.Run("wallet with no history", func(t *testing.T) {
		txns, meta, err := svc.ListForWallet(context.Background(), 999, 1, 20)
		require.NoError(t, err)
		assert.Empty(t, txns)
		assert.Equal(t, int64(0), meta.Total)
	})
}

func TestTransferAppearsOnceForEachParty(t *testing.T) {
	svc, _ := newTestService()
	sender := uint(1)
	txn, err := svc.Create(context.Background(), CreateRequest{
		Type:              models.TransactionTypeTransfer,
		Amount:            1_000,
		Status:            models.TransactionStatusSuccess,
		SenderWalletID:    &sender,
		RecipientWalletID: 2,
	})
	require.NoError(t, err)

	for _, walletID := range []uint{1, 2} {
		txns, meta, err := svc.ListForWallet(context.Background(), walletID, 1, 20)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, txn.ID, txns[0].ID)
		assert.Equal(t, int64(1), meta.Total)
	}
}
