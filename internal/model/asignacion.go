package model

import (
	"time"
)

// ProyectoResponsable links a Responsable to a Proyecto with a role.
// Unique per (proyecto_id, responsable_id) pair; both sides must belong to the
// acting user — the assignment endpoint verifies ownership of both rows.
type ProyectoResponsable struct {
	ID            uint `gorm:"primaryKey"`
	ProyectoID    uint `gorm:"uniqueIndex:idx_proyecto_responsable;not null"`
	ResponsableID uint `gorm:"uniqueIndex:idx_proyecto_responsable;not null"`
	Rol           *string `gorm:"size:100"`
	CreatedAt     time.Time

	Proyecto    *Proyecto    `gorm:"foreignKey:ProyectoID;constraint:OnDelete:RESTRICT"`
	Responsable *Responsable `gorm:"foreignKey:ResponsableID;constraint:OnDelete:RESTRICT"`
}

func (ProyectoResponsable) TableName() string { return "proyecto_responsables" }
