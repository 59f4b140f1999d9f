package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	EstadoEjecucion  = "ejecucion"
	EstadoParalizada = "paralizada"
	EstadoFinalizada = "finalizada"
)

// Proyecto is a construction job owned by exactly one Usuario.
// Invariant enforced at creation: PresupuestoPlanificado ≤ MontoTotalOperacion.
type Proyecto struct {
	ID                     uint `gorm:"primaryKey"`
	IDUser                 uint `gorm:"column:id_user;index;not null"`
	Nombre                 string
	Descripcion            *string         `gorm:"size:1000"`
	Ubicacion              *string         `gorm:"size:255"`
	MontoTotalOperacion    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PresupuestoPlanificado decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Estado                 string          `gorm:"type:varchar(20);not null;default:'ejecucion'"`
	FechaInicio            *time.Time      `gorm:"type:date"`
	FechaFinalEstimada     *time.Time      `gorm:"type:date"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Usuario  *Usuario  `gorm:"foreignKey:IDUser"`
	Partidas []Partida `gorm:"foreignKey:ProyectoID;constraint:OnDelete:RESTRICT"`
}

func (Proyecto) TableName() string { return "proyectos" }

// ResumenFinanciero carries the derived analytics of a project. None of these
// values are stored; they are recomputed from the partidas on every read.
type ResumenFinanciero struct {
	PresupuestoUsado decimal.Decimal `json:"presupuesto_usado"`
	GananciaActual   decimal.Decimal `json:"ganancia_actual"`
	PorcentajeMargen decimal.Decimal `json:"porcentaje_margen"`
	PorcentajeAvance decimal.Decimal `json:"porcentaje_avance"`
}

// Resumen computes ganancia_actual = monto_total_operacion − presupuesto_usado
// and porcentaje_margen = ganancia / monto × 100 rounded to 2 decimals
// (0 when the operation amount is not positive).
func (p *Proyecto) Resumen(presupuestoUsado, avancePromedio decimal.Decimal) ResumenFinanciero {
	ganancia := p.MontoTotalOperacion.Sub(presupuestoUsado)
	margen := decimal.Zero
	if p.MontoTotalOperacion.IsPositive() {
		margen = ganancia.Div(p.MontoTotalOperacion).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return ResumenFinanciero{
		PresupuestoUsado: presupuestoUsado,
		GananciaActual:   ganancia,
		PorcentajeMargen: margen,
		PorcentajeAvance: avancePromedio.Round(2),
	}
}
