package models

import "github.com/golang-jwt/jwt/v5"

// ActorClaims identifies the authenticated caller: either a user session
// (JWT bearer) or a service credential (API key). Permissions follow the
// API-key permission set; JWT sessions carry all of them.
type ActorClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	ActorType   string   `json:"actor_type"`
	APIKeyID    uint     `json:"api_key_id,omitempty"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission.
func (c *ActorClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// AllPermissions is the full permission set granted to user sessions.
func AllPermissions() []string {
	return []string{PermissionDeposit, PermissionTransfer, PermissionRead}
}
