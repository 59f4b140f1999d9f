package model

import (
	"time"
)

// Responsable is a staff member / contractor owned by one Usuario and
// assignable to that user's projects. Cedula is a Venezuelan ID number
// (V-XXXXXXXX, at most 8 digits) — enforced by a DB check constraint so that
// out-of-range writes surface as a 23514 violation.
type Responsable struct {
	ID             uint   `gorm:"primaryKey"`
	IDUser         uint   `gorm:"column:id_user;index;not null"`
	Cedula         int64  `gorm:"uniqueIndex;not null;check:chk_responsables_cedula,cedula BETWEEN 1 AND 99999999"`
	NombreCompleto string `gorm:"size:255;not null"`
	Especialidad   *string `gorm:"size:100"`
	Email          string  `gorm:"uniqueIndex;size:100;not null"`
	Telefono       *string `gorm:"size:50"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Usuario *Usuario `gorm:"foreignKey:IDUser"`
}

func (Responsable) TableName() string { return "responsables" }
