// Package repotest provides in-memory repository implementations for
// service tests. Semantics mirror the GORM-backed repositories: unique
// indexes surface ErrDuplicateKey, reads return copies so writes only
// land through the repository, and the runner executes the function
// against the same store (no rollback simulation).
package repotest

import (
	"context"
	"sort"
	"time"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
)

// DB is the backing state shared by all repositories of one test store.
type DB struct {
	users        map[uint]models.User
	wallets      map[uint]models.Wallet
	transactions map[uint]models.Transaction
	deposits     map[string]models.GatewayDeposit
	apiKeys      map[uint]models.APIKey
	auditLogs    []models.AuditLog
	nextID       uint
}

// NewStore builds an in-memory Store plus its backing DB for seeding
// and inspection.
func NewStore() (*repositories.Store, *DB) {
	db := &DB{
		users:        make(map[uint]models.User),
		wallets:      make(map[uint]models.Wallet),
		transactions: make(map[uint]models.Transaction),
		deposits:     make(map[string]models.GatewayDeposit),
		apiKeys:      make(map[uint]models.APIKey),
	}
	return &repositories.Store{
		Users:        (*userRepo)(db),
		Wallets:      (*walletRepo)(db),
		Transactions: (*transactionRepo)(db),
		Deposits:     (*depositRepo)(db),
		APIKeys:      (*apiKeyRepo)(db),
		AuditLogs:    (*auditLogRepo)(db),
	}, db
}

// Runner is a TxRunner that runs the function against the in-memory
// store. It does not roll back; tests relying on it keep their checks
// ahead of their writes, as the services do.
type Runner struct {
	Store *repositories.Store
}

func (r *Runner) Atomic(_ context.Context, fn func(s *repositories.Store) error) error {
	return fn(r.Store)
}

func (db *DB) id() uint {
	db.nextID++
	return db.nextID
}

// SeedUser inserts a user and returns it.
func (db *DB) SeedUser(email, name string) models.User {
	u := models.User{ID: db.id(), Email: email, Name: name}
	db.users[u.ID] = u
	return u
}

// SeedWallet inserts a wallet and returns it.
func (db *DB) SeedWallet(userID uint, number string, balance int64, active bool) models.Wallet {
	w := models.Wallet{
		ID:       db.id(),
		Number:   number,
		Balance:  balance,
		Currency: models.CurrencyNGN,
		IsActive: active,
		UserID:   userID,
	}
	db.wallets[w.ID] = w
	return w
}

// Wallet returns the current stored state of a wallet.
func (db *DB) Wallet(id uint) models.Wallet { return db.wallets[id] }

// Transaction returns the current stored state of a ledger entry.
func (db *DB) Transaction(id uint) models.Transaction { return db.transactions[id] }

// Deposit returns the current stored state of a reconciliation record.
func (db *DB) Deposit(reference string) models.GatewayDeposit { return db.deposits[reference] }

// TransactionCount reports how many ledger entries exist.
func (db *DB) TransactionCount() int { return len(db.transactions) }

// AuditLogCount reports how many audit entries were written.
func (db *DB) AuditLogCount() int { return len(db.auditLogs) }

type userRepo DB

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	db := (*DB)(r)
	for _, u := range db.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = db.id()
	db.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type walletRepo DB

func (r *walletRepo) Create(_ context.Context, wallet *models.Wallet) error {
	db := (*DB)(r)
	for _, w := range db.wallets {
		if w.Number == wallet.Number || w.UserID == wallet.UserID {
			return repositories.ErrDuplicateKey
		}
	}
	wallet.ID = db.id()
	db.wallets[wallet.ID] = *wallet
	return nil
}

func (r *walletRepo) GetByID(_ context.Context, id uint) (*models.Wallet, error) {
	if w, ok := r.wallets[id]; ok {
		out := w
		return &out, nil
	}
	return nil, repositories.ErrWalletNotFound
}

func (r *walletRepo) GetByUserID(_ context.Context, userID uint) (*models.Wallet, error) {
	for _, w := range r.wallets {
		if w.UserID == userID {
			out := w
			return &out, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (r *walletRepo) GetByNumber(_ context.Context, number string) (*models.Wallet, error) {
	for _, w := range r.wallets {
		if w.Number == number {
			out := w
			return &out, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (r *walletRepo) LockByID(ctx context.Context, id uint) (*models.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *walletRepo) LockByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *walletRepo) AdjustBalance(_ context.Context, id uint, delta int64) error {
	w, ok := r.wallets[id]
	if !ok {
		return repositories.ErrWalletNotFound
	}
	w.Balance += delta
	r.wallets[id] = w
	return nil
}

type transactionRepo DB

func (r *transactionRepo) Create(_ context.Context, txn *models.Transaction) error {
	db := (*DB)(r)
	if txn.Reference != nil {
		for _, t := range db.transactions {
			if t.Reference != nil && *t.Reference == *txn.Reference {
				return repositories.ErrDuplicateKey
			}
		}
	}
	txn.ID = db.id()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}
	db.transactions[txn.ID] = *txn
	return nil
}

func (r *transactionRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	if t, ok := r.transactions[id]; ok {
		out := t
		return &out, nil
	}
	return nil, repositories.ErrTransactionNotFound
}

func (r *transactionRepo) GetByReference(_ context.Context, reference string) (*models.Transaction, error) {
	for _, t := range r.transactions {
		if t.Reference != nil && *t.Reference == reference {
			out := t
			return &out, nil
		}
	}
	return nil, repositories.ErrTransactionNotFound
}

func (r *transactionRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	t, ok := r.transactions[id]
	if !ok || t.Status != models.TransactionStatusPending {
		return repositories.ErrTransactionNotPending
	}
	t.Status = status
	r.transactions[id] = t
	return nil
}

func (r *transactionRepo) forWallet(walletID uint) []models.Transaction {
	var out []models.Transaction
	for _, t := range r.transactions {
		if t.RecipientWalletID == walletID || (t.SenderWalletID != nil && *t.SenderWalletID == walletID) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *transactionRepo) ListByWallet(_ context.Context, walletID uint, limit, offset int) ([]models.Transaction, error) {
	all := r.forWallet(walletID)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *transactionRepo) CountByWallet(_ context.Context, walletID uint) (int64, error) {
	return int64(len(r.forWallet(walletID))), nil
}

type depositRepo DB

func (r *depositRepo) Create(_ context.Context, dep *models.GatewayDeposit) error {
	db := (*DB)(r)
	if _, ok := db.deposits[dep.Reference]; ok {
		return repositories.ErrDuplicateKey
	}
	dep.ID = db.id()
	db.deposits[dep.Reference] = *dep
	return nil
}

func (r *depositRepo) GetByReference(_ context.Context, reference string) (*models.GatewayDeposit, error) {
	if d, ok := r.deposits[reference]; ok {
		out := d
		return &out, nil
	}
	return nil, repositories.ErrDepositNotFound
}

func (r *depositRepo) LockByReference(ctx context.Context, reference string) (*models.GatewayDeposit, error) {
	return r.GetByReference(ctx, reference)
}

func (r *depositRepo) Update(_ context.Context, dep *models.GatewayDeposit) error {
	if _, ok := r.deposits[dep.Reference]; !ok {
		return repositories.ErrDepositNotFound
	}
	r.deposits[dep.Reference] = *dep
	return nil
}

type apiKeyRepo DB

func (r *apiKeyRepo) Create(_ context.Context, key *models.APIKey) error {
	db := (*DB)(r)
	for _, k := range db.apiKeys {
		if k.PublicID == key.PublicID {
			return repositories.ErrDuplicateKey
		}
	}
	key.ID = db.id()
	db.apiKeys[key.ID] = *key
	return nil
}

func (r *apiKeyRepo) GetByPublicID(_ context.Context, publicID string) (*models.APIKey, error) {
	for _, k := range r.apiKeys {
		if k.PublicID == publicID {
			out := k
			return &out, nil
		}
	}
	return nil, repositories.ErrAPIKeyNotFound
}

func (r *apiKeyRepo) TouchLastUsed(_ context.Context, id uint) error {
	k, ok := r.apiKeys[id]
	if !ok {
		return repositories.ErrAPIKeyNotFound
	}
	now := time.Now()
	k.LastUsedAt = &now
	r.apiKeys[id] = k
	return nil
}

type auditLogRepo DB

func (r *auditLogRepo) Create(_ context.Context, entry *models.AuditLog) error {
	db := (*DB)(r)
	entry.ID = db.id()
	db.auditLogs = append(db.auditLogs, *entry)
	return nil
}
