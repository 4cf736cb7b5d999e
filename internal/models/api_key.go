package models

import (
	"strings"
	"time"
)

// API key permissions
const (
	PermissionDeposit  = "deposit"
	PermissionTransfer = "transfer"
	PermissionRead     = "read"
)

// APIKey is a service credential scoped to a user's wallet. The secret
// is only ever stored bcrypt-hashed; the public id is the lookup handle
// presented alongside the secret as "<public_id>.<secret>".
type APIKey struct {
	ID          uint   `gorm:"primarykey"`
	UserID      uint   `gorm:"index;not null"`
	PublicID    string `gorm:"uniqueIndex;not null"`
	SecretHash  string `gorm:"not null"`
	Label       string
	Permissions string `gorm:"not null"` // comma-separated
	LastUsedAt  *time.Time
	RevokedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PermissionList splits the stored permission string.
func (k *APIKey) PermissionList() []string {
	if k.Permissions == "" {
		return nil
	}
	return strings.Split(k.Permissions, ",")
}

// HasPermission reports whether the key grants the given permission.
func (k *APIKey) HasPermission(permission string) bool {
	for _, p := range k.PermissionList() {
		if p == permission {
			return true
		}
	}
	return false
}

// IsRevoked reports whether the key has been revoked.
func (k *APIKey) IsRevoked() bool { return k.RevokedAt != nil }
