package models

import "time"

// User is the wallet owner. Identity management (signup, OAuth) lives in
// an upstream service; rows here are provisioned out of band (cmd/seed).
type User struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
