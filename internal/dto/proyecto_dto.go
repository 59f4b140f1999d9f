package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProyectoRequest — cross-field rules (fecha_final_estimada ≥ fecha_inicio,
// presupuesto_planificado ≤ monto_total_operacion) are registered as
// struct-level validations in the handler package.
type CrearProyectoRequest struct {
	Nombre                 string          `json:"nombre"                  validate:"required,min=3,max=255"`
	Descripcion            *string         `json:"descripcion"             validate:"omitempty,max=1000"`
	Ubicacion              *string         `json:"ubicacion"               validate:"omitempty,max=255"`
	MontoTotalOperacion    decimal.Decimal `json:"monto_total_operacion"   validate:"min=0"`
	PresupuestoPlanificado decimal.Decimal `json:"presupuesto_planificado" validate:"min=0"`
	FechaInicio            *string         `json:"fecha_inicio"            validate:"omitempty,datetime=2006-01-02"`
	FechaFinalEstimada     *string         `json:"fecha_final_estimada"    validate:"omitempty,datetime=2006-01-02"`
}

// EditarProyectoRequest treats every field as optional; omitted fields retain
// their stored value.
type EditarProyectoRequest struct {
	Nombre                 *string          `json:"nombre"                  validate:"omitempty,min=3,max=255"`
	Descripcion            *string          `json:"descripcion"             validate:"omitempty,max=1000"`
	Ubicacion              *string          `json:"ubicacion"               validate:"omitempty,max=255"`
	MontoTotalOperacion    *decimal.Decimal `json:"monto_total_operacion"   validate:"omitempty,min=0"`
	PresupuestoPlanificado *decimal.Decimal `json:"presupuesto_planificado" validate:"omitempty,min=0"`
	Estado                 *string          `json:"estado"                  validate:"omitempty,oneof=ejecucion paralizada finalizada"`
	FechaInicio            *string          `json:"fecha_inicio"            validate:"omitempty,datetime=2006-01-02"`
	FechaFinalEstimada     *string          `json:"fecha_final_estimada"    validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProyectoResponse struct {
	ID                     uint            `json:"id"`
	Nombre                 string          `json:"nombre"`
	Descripcion            *string         `json:"descripcion"`
	Ubicacion              *string         `json:"ubicacion"`
	MontoTotalOperacion    decimal.Decimal `json:"monto_total_operacion"`
	PresupuestoPlanificado decimal.Decimal `json:"presupuesto_planificado"`
	Estado                 string          `json:"estado"`
	FechaInicio            *string         `json:"fecha_inicio"`
	FechaFinalEstimada     *string         `json:"fecha_final_estimada"`

	// Derived analytics — recomputed on every read, never stored.
	PresupuestoUsado decimal.Decimal `json:"presupuesto_usado"`
	GananciaActual   decimal.Decimal `json:"ganancia_actual"`
	PorcentajeMargen decimal.Decimal `json:"porcentaje_margen"`
	PorcentajeAvance decimal.Decimal `json:"porcentaje_avance"`
}
