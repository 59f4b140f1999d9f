package service

import (
	"time"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/model"
)

func formatFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.FechaLayout)
	return &s
}

func toProyectoResponse(p *model.Proyecto, resumen model.ResumenFinanciero) *dto.ProyectoResponse {
	return &dto.ProyectoResponse{
		ID:                     p.ID,
		Nombre:                 p.Nombre,
		Descripcion:            p.Descripcion,
		Ubicacion:              p.Ubicacion,
		MontoTotalOperacion:    p.MontoTotalOperacion,
		PresupuestoPlanificado: p.PresupuestoPlanificado,
		Estado:                 p.Estado,
		FechaInicio:            formatFecha(p.FechaInicio),
		FechaFinalEstimada:     formatFecha(p.FechaFinalEstimada),
		PresupuestoUsado:       resumen.PresupuestoUsado,
		GananciaActual:         resumen.GananciaActual,
		PorcentajeMargen:       resumen.PorcentajeMargen,
		PorcentajeAvance:       resumen.PorcentajeAvance,
	}
}

func toPartidaResponse(p *model.Partida) *dto.PartidaResponse {
	return &dto.PartidaResponse{
		ID:                 p.ID,
		ProyectoID:         p.ProyectoID,
		ResponsableID:      p.ResponsableID,
		NombrePartida:      p.NombrePartida,
		Descripcion:        p.Descripcion,
		MontoTotal:         p.MontoTotal,
		PorcentajeAvance:   p.PorcentajeAvance,
		FechaInicio:        formatFecha(p.FechaInicio),
		FechaFinalEstimada: formatFecha(p.FechaFinalEstimada),
		FechaFinalReal:     formatFecha(p.FechaFinalReal),
		Estatus:            p.Estatus(),
	}
}

func toResponsableResponse(r *model.Responsable) *dto.ResponsableResponse {
	return &dto.ResponsableResponse{
		ID:             r.ID,
		Cedula:         r.Cedula,
		NombreCompleto: r.NombreCompleto,
		Especialidad:   r.Especialidad,
		Email:          r.Email,
		Telefono:       r.Telefono,
	}
}
