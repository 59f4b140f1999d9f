package repository

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/model"

	"gorm.io/gorm"
)

// PartidaVista is an analytic-view row: the partida plus its parent project's
// name. The derived estatus is computed in model.Partida, the ordering in SQL.
type PartidaVista struct {
	model.Partida
	NombreProyecto string
}

// PartidaRepository scopes transitively: a partida carries no owner column,
// so every query joins (or sub-selects) through proyectos.id_user.
type PartidaRepository interface {
	Create(ctx context.Context, p *model.Partida) error
	FindByID(ctx context.Context, id, userID uint) (*model.Partida, error)
	List(ctx context.Context, userID uint) ([]model.Partida, error)
	Vista(ctx context.Context, userID uint, proyectoID *uint) ([]PartidaVista, error)
	Save(ctx context.Context, p *model.Partida) error
	Complete(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id, userID uint) error
}

type partidaRepo struct{ db *gorm.DB }

func NewPartidaRepository(db *gorm.DB) PartidaRepository { return &partidaRepo{db: db} }

func (r *partidaRepo) Create(ctx context.Context, p *model.Partida) error {
	return TranslateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *partidaRepo) FindByID(ctx context.Context, id, userID uint) (*model.Partida, error) {
	var p model.Partida
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN proyectos ON proyectos.id = partidas.proyecto_id").
		Where("partidas.id = ? AND proyectos.id_user = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return &p, nil
}

func (r *partidaRepo) List(ctx context.Context, userID uint) ([]model.Partida, error) {
	var partidas []model.Partida
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN proyectos ON proyectos.id = partidas.proyecto_id").
		Where("proyectos.id_user = ?", userID).
		Order("partidas.created_at DESC").
		Find(&partidas).Error
	return partidas, TranslateError(err)
}

func (r *partidaRepo) Vista(ctx context.Context, userID uint, proyectoID *uint) ([]PartidaVista, error) {
	query := `
		SELECT pa.*, pr.nombre AS nombre_proyecto
		FROM partidas pa
		INNER JOIN proyectos pr ON pr.id = pa.proyecto_id
		WHERE pr.id_user = ?`
	args := []interface{}{userID}
	if proyectoID != nil {
		query += ` AND pa.proyecto_id = ?`
		args = append(args, *proyectoID)
	}
	query += `
		ORDER BY CASE WHEN pa.fecha_final_real IS NOT NULL OR pa.porcentaje_avance >= 100
		              THEN 'completada' ELSE 'pendiente' END ASC,
		         pa.fecha_final_estimada ASC NULLS LAST`

	var rows []PartidaVista
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, TranslateError(err)
}

func (r *partidaRepo) Save(ctx context.Context, p *model.Partida) error {
	return TranslateError(r.db.WithContext(ctx).Save(p).Error)
}

// Complete is the dedicated transition: progress jumps to 100 and
// fecha_final_real is stamped once — COALESCE keeps the first completion date
// so re-invoking is idempotent.
func (r *partidaRepo) Complete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE partidas
		SET fecha_final_real = COALESCE(fecha_final_real, CURRENT_DATE),
		    porcentaje_avance = 100,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		  AND proyecto_id IN (SELECT id FROM proyectos WHERE id_user = ?)`, id, userID)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *partidaRepo) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND proyecto_id IN (SELECT id FROM proyectos WHERE id_user = ?)", id, userID).
		Delete(&model.Partida{})
	if result.Error != nil {
		return translateDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}
