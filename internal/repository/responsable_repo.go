package repository

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/model"

	"gorm.io/gorm"
)

// StaffRow is one responsable assigned to a project, with the rol held there.
type StaffRow struct {
	ID             uint
	Cedula         int64
	NombreCompleto string
	Especialidad   *string
	Email          string
	Telefono       *string
	Rol            *string
}

type ResponsableRepository interface {
	Create(ctx context.Context, r *model.Responsable) error
	FindByID(ctx context.Context, id, userID uint) (*model.Responsable, error)
	List(ctx context.Context, userID uint) ([]model.Responsable, error)
	Save(ctx context.Context, r *model.Responsable) error
	Delete(ctx context.Context, id, userID uint) error
	CreateAsignacion(ctx context.Context, a *model.ProyectoResponsable) error
	StaffPorProyecto(ctx context.Context, proyectoID, userID uint) ([]StaffRow, error)
}

type responsableRepo struct{ db *gorm.DB }

func NewResponsableRepository(db *gorm.DB) ResponsableRepository {
	return &responsableRepo{db: db}
}

func (r *responsableRepo) Create(ctx context.Context, resp *model.Responsable) error {
	return TranslateError(r.db.WithContext(ctx).Create(resp).Error)
}

func (r *responsableRepo) FindByID(ctx context.Context, id, userID uint) (*model.Responsable, error) {
	var resp model.Responsable
	err := r.db.WithContext(ctx).
		Where("id = ? AND id_user = ?", id, userID).
		First(&resp).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return &resp, nil
}

func (r *responsableRepo) List(ctx context.Context, userID uint) ([]model.Responsable, error) {
	var responsables []model.Responsable
	err := r.db.WithContext(ctx).
		Where("id_user = ?", userID).
		Order("created_at DESC").
		Find(&responsables).Error
	return responsables, TranslateError(err)
}

func (r *responsableRepo) Save(ctx context.Context, resp *model.Responsable) error {
	return TranslateError(r.db.WithContext(ctx).Save(resp).Error)
}

// Delete refuses when partidas or asignaciones still reference the row
// (RESTRICT foreign keys surface as ErrRegistrosVinculados).
func (r *responsableRepo) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND id_user = ?", id, userID).
		Delete(&model.Responsable{})
	if result.Error != nil {
		return translateDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *responsableRepo) CreateAsignacion(ctx context.Context, a *model.ProyectoResponsable) error {
	return TranslateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *responsableRepo) StaffPorProyecto(ctx context.Context, proyectoID, userID uint) ([]StaffRow, error) {
	var rows []StaffRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT re.id, re.cedula, re.nombre_completo, re.especialidad,
		       re.email, re.telefono, a.rol
		FROM proyecto_responsables a
		INNER JOIN responsables re ON re.id = a.responsable_id
		INNER JOIN proyectos pr ON pr.id = a.proyecto_id
		WHERE a.proyecto_id = ? AND pr.id_user = ?
		ORDER BY re.nombre_completo ASC`, proyectoID, userID).
		Scan(&rows).Error
	return rows, TranslateError(err)
}
