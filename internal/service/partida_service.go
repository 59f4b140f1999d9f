package service

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type PartidaService interface {
	Crear(ctx context.Context, userID uint, req dto.CrearPartidaRequest) (*dto.PartidaResponse, error)
	Listar(ctx context.Context, userID uint) ([]dto.PartidaResponse, error)
	Vista(ctx context.Context, userID uint, proyectoID *uint) ([]dto.PartidaVistaResponse, error)
	ObtenerPorID(ctx context.Context, id, userID uint) (*dto.PartidaResponse, error)
	Editar(ctx context.Context, id, userID uint, req dto.EditarPartidaRequest) (*dto.PartidaResponse, error)
	Completar(ctx context.Context, id, userID uint) (*dto.PartidaResponse, error)
	Eliminar(ctx context.Context, id, userID uint) error
}

type partidaService struct {
	repo            repository.PartidaRepository
	proyectoRepo    repository.ProyectoRepository
	responsableRepo repository.ResponsableRepository
	notificador     Notificador
}

func NewPartidaService(repo repository.PartidaRepository, proyectoRepo repository.ProyectoRepository, responsableRepo repository.ResponsableRepository, notificador Notificador) PartidaService {
	return &partidaService{
		repo:            repo,
		proyectoRepo:    proyectoRepo,
		responsableRepo: responsableRepo,
		notificador:     notificador,
	}
}

func (s *partidaService) Crear(ctx context.Context, userID uint, req dto.CrearPartidaRequest) (*dto.PartidaResponse, error) {
	// The parent project must exist and belong to the acting user.
	proyecto, err := s.proyectoRepo.FindByID(ctx, req.ProyectoID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.verificarResponsable(ctx, req.ResponsableID, userID); err != nil {
		return nil, err
	}

	fechaInicio, err := dto.ParseFecha(req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fechaFinal, err := dto.ParseFecha(req.FechaFinalEstimada)
	if err != nil {
		return nil, err
	}

	p := &model.Partida{
		ProyectoID:         req.ProyectoID,
		ResponsableID:      req.ResponsableID,
		NombrePartida:      req.NombrePartida,
		Descripcion:        req.Descripcion,
		MontoTotal:         decimal.Zero,
		FechaInicio:        fechaInicio,
		FechaFinalEstimada: fechaFinal,
	}
	if req.MontoTotal != nil {
		p.MontoTotal = *req.MontoTotal
	}
	if req.PorcentajeAvance != nil {
		p.PorcentajeAvance = *req.PorcentajeAvance
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.notificarPartida(ctx, proyecto.Nombre, p, worker.AccionCreacion)
	s.notificarProyecto(ctx, proyecto)
	return toPartidaResponse(p), nil
}

func (s *partidaService) Listar(ctx context.Context, userID uint) ([]dto.PartidaResponse, error) {
	partidas, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PartidaResponse, len(partidas))
	for i := range partidas {
		resp[i] = *toPartidaResponse(&partidas[i])
	}
	return resp, nil
}

func (s *partidaService) Vista(ctx context.Context, userID uint, proyectoID *uint) ([]dto.PartidaVistaResponse, error) {
	rows, err := s.repo.Vista(ctx, userID, proyectoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PartidaVistaResponse, len(rows))
	for i := range rows {
		resp[i] = dto.PartidaVistaResponse{
			PartidaResponse: *toPartidaResponse(&rows[i].Partida),
			NombreProyecto:  rows[i].NombreProyecto,
		}
	}
	return resp, nil
}

func (s *partidaService) ObtenerPorID(ctx context.Context, id, userID uint) (*dto.PartidaResponse, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toPartidaResponse(p), nil
}

func (s *partidaService) Editar(ctx context.Context, id, userID uint, req dto.EditarPartidaRequest) (*dto.PartidaResponse, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if req.ResponsableID != nil {
		if err := s.verificarResponsable(ctx, req.ResponsableID, userID); err != nil {
			return nil, err
		}
		p.ResponsableID = req.ResponsableID
	}

	// Partial update — omitted fields keep their stored value.
	if req.NombrePartida != nil {
		p.NombrePartida = req.NombrePartida
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.MontoTotal != nil {
		p.MontoTotal = *req.MontoTotal
	}
	if req.PorcentajeAvance != nil {
		p.PorcentajeAvance = *req.PorcentajeAvance
	}
	if req.FechaInicio != nil {
		if p.FechaInicio, err = dto.ParseFecha(req.FechaInicio); err != nil {
			return nil, err
		}
	}
	if req.FechaFinalEstimada != nil {
		if p.FechaFinalEstimada, err = dto.ParseFecha(req.FechaFinalEstimada); err != nil {
			return nil, err
		}
	}
	if req.FechaFinalReal != nil {
		if p.FechaFinalReal, err = dto.ParseFecha(req.FechaFinalReal); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.notificarCambio(ctx, p, userID, worker.AccionEdicion)
	return toPartidaResponse(p), nil
}

func (s *partidaService) Completar(ctx context.Context, id, userID uint) (*dto.PartidaResponse, error) {
	if err := s.repo.Complete(ctx, id, userID); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	s.notificarCambio(ctx, p, userID, worker.AccionEdicion)
	return toPartidaResponse(p), nil
}

func (s *partidaService) Eliminar(ctx context.Context, id, userID uint) error {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	if proyecto, ferr := s.proyectoRepo.FindByID(ctx, p.ProyectoID, userID); ferr == nil {
		s.notificarProyecto(ctx, proyecto)
	}
	return nil
}

// verificarResponsable rejects a responsable_id that does not exist or that
// belongs to a different user.
func (s *partidaService) verificarResponsable(ctx context.Context, id *uint, userID uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.responsableRepo.FindByID(ctx, *id, userID); err != nil {
		if err == repository.ErrNoEncontrado {
			return repository.ErrReferenciaInvalida
		}
		return err
	}
	return nil
}

func (s *partidaService) notificarCambio(ctx context.Context, p *model.Partida, userID uint, accion string) {
	proyecto, err := s.proyectoRepo.FindByID(ctx, p.ProyectoID, userID)
	if err != nil {
		log.Warn().Err(err).Uint("partida", p.ID).Msg("notificacion de partida descartada")
		return
	}
	s.notificarPartida(ctx, proyecto.Nombre, p, accion)
	s.notificarProyecto(ctx, proyecto)
}

func (s *partidaService) notificarPartida(ctx context.Context, nombreProyecto string, p *model.Partida, accion string) {
	nombre := p.Descripcion
	if p.NombrePartida != nil && *p.NombrePartida != "" {
		nombre = *p.NombrePartida
	}
	payload := worker.PartidaNotificacion{
		Accion:             accion,
		NombreProyecto:     nombreProyecto,
		NombrePartida:      nombre,
		MontoTotal:         p.MontoTotal,
		PorcentajeAvance:   p.PorcentajeAvance,
		FechaFinalEstimada: formatFecha(p.FechaFinalEstimada),
	}
	if err := s.notificador.EnqueuePartida(ctx, payload); err != nil {
		log.Warn().Err(err).Uint("partida", p.ID).Msg("notificacion de partida descartada")
	}
}

// notificarProyecto recomputes the parent's analytics after a partida write
// and forwards the snapshot. Best-effort only.
func (s *partidaService) notificarProyecto(ctx context.Context, proyecto *model.Proyecto) {
	agg, err := s.proyectoRepo.Resumen(ctx, proyecto.ID)
	if err != nil {
		log.Warn().Err(err).Uint("proyecto", proyecto.ID).Msg("resumen para notificacion descartado")
		return
	}
	resumen := proyecto.Resumen(agg.PresupuestoUsado, agg.AvancePromedio)
	payload := worker.ProyectoNotificacion{
		Accion:                 worker.AccionEdicion,
		Nombre:                 proyecto.Nombre,
		Estado:                 proyecto.Estado,
		PresupuestoUsado:       resumen.PresupuestoUsado,
		PresupuestoPlanificado: proyecto.PresupuestoPlanificado,
		GananciaActual:         resumen.GananciaActual,
		PorcentajeMargen:       resumen.PorcentajeMargen,
		PorcentajeAvance:       resumen.PorcentajeAvance,
	}
	if err := s.notificador.EnqueueProyecto(ctx, payload); err != nil {
		log.Warn().Err(err).Uint("proyecto", proyecto.ID).Msg("notificacion de proyecto descartada")
	}
}
