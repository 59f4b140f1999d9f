package service

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/infra"
	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ProyectoService interface {
	Crear(ctx context.Context, userID uint, req dto.CrearProyectoRequest) (*dto.ProyectoResponse, error)
	Listar(ctx context.Context, userID uint) ([]dto.ProyectoResponse, error)
	ObtenerPorID(ctx context.Context, id, userID uint) (*dto.ProyectoResponse, error)
	Editar(ctx context.Context, id, userID uint, req dto.EditarProyectoRequest) (*dto.ProyectoResponse, error)
	Eliminar(ctx context.Context, id, userID uint) error
	// GenerarReporte writes the PDF report and returns its path.
	GenerarReporte(ctx context.Context, id, userID uint) (string, error)
}

type proyectoService struct {
	repo        repository.ProyectoRepository
	partidaRepo repository.PartidaRepository
	notificador Notificador
	pdfPath     string
}

func NewProyectoService(repo repository.ProyectoRepository, partidaRepo repository.PartidaRepository, notificador Notificador, pdfPath string) ProyectoService {
	return &proyectoService{repo: repo, partidaRepo: partidaRepo, notificador: notificador, pdfPath: pdfPath}
}

func (s *proyectoService) Crear(ctx context.Context, userID uint, req dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	fechaInicio, err := dto.ParseFecha(req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fechaFinal, err := dto.ParseFecha(req.FechaFinalEstimada)
	if err != nil {
		return nil, err
	}

	p := &model.Proyecto{
		IDUser:                 userID,
		Nombre:                 req.Nombre,
		Descripcion:            req.Descripcion,
		Ubicacion:              req.Ubicacion,
		MontoTotalOperacion:    req.MontoTotalOperacion,
		PresupuestoPlanificado: req.PresupuestoPlanificado,
		Estado:                 model.EstadoEjecucion,
		FechaInicio:            fechaInicio,
		FechaFinalEstimada:     fechaFinal,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	resumen := p.Resumen(decimal.Zero, decimal.Zero)
	s.notificar(ctx, p, resumen, worker.AccionNuevo)
	return toProyectoResponse(p, resumen), nil
}

func (s *proyectoService) Listar(ctx context.Context, userID uint) ([]dto.ProyectoResponse, error) {
	proyectos, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	agregados, err := s.repo.Resumenes(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProyectoResponse, len(proyectos))
	for i := range proyectos {
		p := &proyectos[i]
		agg := agregados[p.ID] // zero value when the project has no partidas
		resp[i] = *toProyectoResponse(p, p.Resumen(agg.PresupuestoUsado, agg.AvancePromedio))
	}
	return resp, nil
}

func (s *proyectoService) ObtenerPorID(ctx context.Context, id, userID uint) (*dto.ProyectoResponse, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	resumen, err := s.resumen(ctx, p)
	if err != nil {
		return nil, err
	}
	return toProyectoResponse(p, resumen), nil
}

func (s *proyectoService) Editar(ctx context.Context, id, userID uint, req dto.EditarProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Partial update — omitted fields keep their stored value.
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Ubicacion != nil {
		p.Ubicacion = req.Ubicacion
	}
	if req.MontoTotalOperacion != nil {
		p.MontoTotalOperacion = *req.MontoTotalOperacion
	}
	if req.PresupuestoPlanificado != nil {
		p.PresupuestoPlanificado = *req.PresupuestoPlanificado
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
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

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	resumen, err := s.resumen(ctx, p)
	if err != nil {
		return nil, err
	}
	s.notificar(ctx, p, resumen, worker.AccionEdicion)
	return toProyectoResponse(p, resumen), nil
}

func (s *proyectoService) Eliminar(ctx context.Context, id, userID uint) error {
	// Snapshot before the delete so the notification still has the figures.
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}
	resumen, err := s.resumen(ctx, p)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.notificar(ctx, p, resumen, worker.AccionEliminacion)
	return nil
}

func (s *proyectoService) GenerarReporte(ctx context.Context, id, userID uint) (string, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return "", err
	}
	resumen, err := s.resumen(ctx, p)
	if err != nil {
		return "", err
	}
	vista, err := s.partidaRepo.Vista(ctx, userID, &id)
	if err != nil {
		return "", err
	}
	partidas := make([]model.Partida, len(vista))
	for i := range vista {
		partidas[i] = vista[i].Partida
	}
	return infra.GenerateReporteProyecto(p, resumen, partidas, s.pdfPath)
}

func (s *proyectoService) resumen(ctx context.Context, p *model.Proyecto) (model.ResumenFinanciero, error) {
	agg, err := s.repo.Resumen(ctx, p.ID)
	if err != nil {
		return model.ResumenFinanciero{}, err
	}
	return p.Resumen(agg.PresupuestoUsado, agg.AvancePromedio), nil
}

// notificar pushes the analytics snapshot to the sink. Failures are logged
// and swallowed — they can never change the HTTP outcome.
func (s *proyectoService) notificar(ctx context.Context, p *model.Proyecto, resumen model.ResumenFinanciero, accion string) {
	payload := worker.ProyectoNotificacion{
		Accion:                 accion,
		Nombre:                 p.Nombre,
		Estado:                 p.Estado,
		PresupuestoUsado:       resumen.PresupuestoUsado,
		PresupuestoPlanificado: p.PresupuestoPlanificado,
		GananciaActual:         resumen.GananciaActual,
		PorcentajeMargen:       resumen.PorcentajeMargen,
		PorcentajeAvance:       resumen.PorcentajeAvance,
	}
	if err := s.notificador.EnqueueProyecto(ctx, payload); err != nil {
		log.Warn().Err(err).Str("proyecto", p.Nombre).Msg("notificacion de proyecto descartada")
	}
}
