package service

import (
	"context"
	"strings"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/worker"

	"github.com/rs/zerolog/log"
)

type ResponsableService interface {
	Crear(ctx context.Context, userID uint, req dto.CrearResponsableRequest) (*dto.ResponsableResponse, error)
	Listar(ctx context.Context, userID uint) ([]dto.ResponsableResponse, error)
	ObtenerPorID(ctx context.Context, id, userID uint) (*dto.ResponsableResponse, error)
	Editar(ctx context.Context, id, userID uint, req dto.EditarResponsableRequest) (*dto.ResponsableResponse, error)
	Eliminar(ctx context.Context, id, userID uint) error
	Asignar(ctx context.Context, userID uint, req dto.AsignarProyectoRequest) (*dto.StaffResponse, error)
	StaffPorProyecto(ctx context.Context, proyectoID, userID uint) ([]dto.StaffResponse, error)
}

type responsableService struct {
	repo         repository.ResponsableRepository
	proyectoRepo repository.ProyectoRepository
	notificador  Notificador
}

func NewResponsableService(repo repository.ResponsableRepository, proyectoRepo repository.ProyectoRepository, notificador Notificador) ResponsableService {
	return &responsableService{repo: repo, proyectoRepo: proyectoRepo, notificador: notificador}
}

func (s *responsableService) Crear(ctx context.Context, userID uint, req dto.CrearResponsableRequest) (*dto.ResponsableResponse, error) {
	r := &model.Responsable{
		IDUser:         userID,
		Cedula:         req.Cedula,
		NombreCompleto: req.NombreCompleto,
		Especialidad:   req.Especialidad,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Telefono:       req.Telefono,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toResponsableResponse(r), nil
}

func (s *responsableService) Listar(ctx context.Context, userID uint) ([]dto.ResponsableResponse, error) {
	responsables, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ResponsableResponse, len(responsables))
	for i := range responsables {
		resp[i] = *toResponsableResponse(&responsables[i])
	}
	return resp, nil
}

func (s *responsableService) ObtenerPorID(ctx context.Context, id, userID uint) (*dto.ResponsableResponse, error) {
	r, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toResponsableResponse(r), nil
}

func (s *responsableService) Editar(ctx context.Context, id, userID uint, req dto.EditarResponsableRequest) (*dto.ResponsableResponse, error) {
	r, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Partial update — omitted fields keep their stored value.
	if req.Cedula != nil {
		r.Cedula = *req.Cedula
	}
	if req.NombreCompleto != nil {
		r.NombreCompleto = *req.NombreCompleto
	}
	if req.Especialidad != nil {
		r.Especialidad = req.Especialidad
	}
	if req.Email != nil {
		r.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Telefono != nil {
		r.Telefono = req.Telefono
	}

	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return toResponsableResponse(r), nil
}

func (s *responsableService) Eliminar(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// Asignar links a responsable to a project. Both rows must belong to the
// acting user — assigning someone else's responsable is rejected even though
// the row exists.
func (s *responsableService) Asignar(ctx context.Context, userID uint, req dto.AsignarProyectoRequest) (*dto.StaffResponse, error) {
	proyecto, err := s.proyectoRepo.FindByID(ctx, req.ProyectoID, userID)
	if err != nil {
		return nil, err
	}
	responsable, err := s.repo.FindByID(ctx, req.ResponsableID, userID)
	if err != nil {
		if err == repository.ErrNoEncontrado {
			return nil, repository.ErrReferenciaInvalida
		}
		return nil, err
	}

	a := &model.ProyectoResponsable{
		ProyectoID:    req.ProyectoID,
		ResponsableID: req.ResponsableID,
		Rol:           req.Rol,
	}
	if err := s.repo.CreateAsignacion(ctx, a); err != nil {
		return nil, err
	}

	s.notificarAsignacion(ctx, proyecto, responsable, req.Rol)
	return &dto.StaffResponse{
		ResponsableResponse: *toResponsableResponse(responsable),
		Rol:                 req.Rol,
	}, nil
}

func (s *responsableService) StaffPorProyecto(ctx context.Context, proyectoID, userID uint) ([]dto.StaffResponse, error) {
	rows, err := s.repo.StaffPorProyecto(ctx, proyectoID, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StaffResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.StaffResponse{
			ResponsableResponse: dto.ResponsableResponse{
				ID:             row.ID,
				Cedula:         row.Cedula,
				NombreCompleto: row.NombreCompleto,
				Especialidad:   row.Especialidad,
				Email:          row.Email,
				Telefono:       row.Telefono,
			},
			Rol: row.Rol,
		}
	}
	return resp, nil
}

func (s *responsableService) notificarAsignacion(ctx context.Context, proyecto *model.Proyecto, responsable *model.Responsable, rol *string) {
	payload := worker.AsignacionEmail{
		To:                responsable.Email,
		NombreResponsable: responsable.NombreCompleto,
		NombreProyecto:    proyecto.Nombre,
		Rol:               rol,
	}
	if err := s.notificador.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Str("email", responsable.Email).Msg("correo de asignacion descartado")
	}
}
