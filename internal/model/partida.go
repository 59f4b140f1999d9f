package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estatus derivado de una partida — no se almacena como columna.
const (
	EstatusPendiente  = "pendiente"
	EstatusCompletada = "completada"
)

// Partida is a budget line-item / milestone of a Proyecto. It carries no owner
// column of its own: visibility is always transitive through the parent
// project's id_user.
type Partida struct {
	ID                 uint  `gorm:"primaryKey"`
	ProyectoID         uint  `gorm:"index;not null"`
	ResponsableID      *uint `gorm:"index"`
	NombrePartida      *string
	Descripcion        string          `gorm:"size:255;not null"`
	MontoTotal         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PorcentajeAvance   int             `gorm:"not null;default:0"`
	FechaInicio        *time.Time      `gorm:"type:date"`
	FechaFinalEstimada *time.Time      `gorm:"type:date"`
	FechaFinalReal     *time.Time      `gorm:"type:date"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Proyecto    *Proyecto    `gorm:"foreignKey:ProyectoID"`
	Responsable *Responsable `gorm:"foreignKey:ResponsableID;constraint:OnDelete:RESTRICT"`
}

func (Partida) TableName() string { return "partidas" }

// Estatus derives the implicit state: completada when fecha_final_real is set
// or the progress reached 100%, pendiente otherwise. A regular edit can reach
// 100% without the dedicated complete transition, so both paths share this.
func (p *Partida) Estatus() string {
	if p.FechaFinalReal != nil || p.PorcentajeAvance >= 100 {
		return EstatusCompletada
	}
	return EstatusPendiente
}
