package model

import (
	"time"
)

// Usuario is an account owner. Every Proyecto and Responsable row carries an
// id_user column pointing here; ownership scoping hangs off that column.
// Usernames are stored case-folded (lowercase) so login is case-insensitive.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"column:pass;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "tm_user" }
