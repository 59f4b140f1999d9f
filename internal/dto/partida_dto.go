package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPartidaRequest struct {
	ProyectoID         uint             `json:"proyecto_id"          validate:"required"`
	ResponsableID      *uint            `json:"responsable_id"`
	NombrePartida      *string          `json:"nombre_partida"       validate:"omitempty,max=100"`
	Descripcion        string           `json:"descripcion"          validate:"required,max=255"`
	MontoTotal         *decimal.Decimal `json:"monto_total"          validate:"omitempty,min=0"`
	PorcentajeAvance   *int             `json:"porcentaje_avance"    validate:"omitempty,min=0,max=100"`
	FechaInicio        *string          `json:"fecha_inicio"         validate:"omitempty,datetime=2006-01-02"`
	FechaFinalEstimada *string          `json:"fecha_final_estimada" validate:"omitempty,datetime=2006-01-02"`
}

type EditarPartidaRequest struct {
	ResponsableID      *uint            `json:"responsable_id"`
	NombrePartida      *string          `json:"nombre_partida"       validate:"omitempty,max=100"`
	Descripcion        *string          `json:"descripcion"          validate:"omitempty,max=255"`
	MontoTotal         *decimal.Decimal `json:"monto_total"          validate:"omitempty,min=0"`
	PorcentajeAvance   *int             `json:"porcentaje_avance"    validate:"omitempty,min=0,max=100"`
	FechaInicio        *string          `json:"fecha_inicio"         validate:"omitempty,datetime=2006-01-02"`
	FechaFinalEstimada *string          `json:"fecha_final_estimada" validate:"omitempty,datetime=2006-01-02"`
	FechaFinalReal     *string          `json:"fecha_final_real"     validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PartidaResponse struct {
	ID                 uint            `json:"id"`
	ProyectoID         uint            `json:"proyecto_id"`
	ResponsableID      *uint           `json:"responsable_id"`
	NombrePartida      *string         `json:"nombre_partida"`
	Descripcion        string          `json:"descripcion"`
	MontoTotal         decimal.Decimal `json:"monto_total"`
	PorcentajeAvance   int             `json:"porcentaje_avance"`
	FechaInicio        *string         `json:"fecha_inicio"`
	FechaFinalEstimada *string         `json:"fecha_final_estimada"`
	FechaFinalReal     *string         `json:"fecha_final_real"`
	Estatus            string          `json:"estatus"`
}

// PartidaVistaResponse is the analytic view row: one partida plus its derived
// estatus and the project it belongs to, ordered by estatus then deadline.
type PartidaVistaResponse struct {
	PartidaResponse
	NombreProyecto string `json:"nombre_proyecto"`
}
