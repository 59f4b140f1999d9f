package repository

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResumenAgregado holds the per-project aggregates over partidas that feed
// the derived analytics (presupuesto_usado, avance físico).
type ResumenAgregado struct {
	ProyectoID       uint
	PresupuestoUsado decimal.Decimal
	AvancePromedio   decimal.Decimal
}

// ProyectoRepository is ownership-scoped: every read/delete takes the acting
// user's id and constrains the query with id_user. Update goes through Save
// only after a scoped FindByID proved ownership.
type ProyectoRepository interface {
	Create(ctx context.Context, p *model.Proyecto) error
	FindByID(ctx context.Context, id, userID uint) (*model.Proyecto, error)
	List(ctx context.Context, userID uint) ([]model.Proyecto, error)
	Save(ctx context.Context, p *model.Proyecto) error
	Delete(ctx context.Context, id, userID uint) error
	Resumen(ctx context.Context, proyectoID uint) (ResumenAgregado, error)
	Resumenes(ctx context.Context, userID uint) (map[uint]ResumenAgregado, error)
}

type proyectoRepo struct{ db *gorm.DB }

func NewProyectoRepository(db *gorm.DB) ProyectoRepository { return &proyectoRepo{db: db} }

func (r *proyectoRepo) Create(ctx context.Context, p *model.Proyecto) error {
	return TranslateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *proyectoRepo) FindByID(ctx context.Context, id, userID uint) (*model.Proyecto, error) {
	var p model.Proyecto
	err := r.db.WithContext(ctx).
		Where("id = ? AND id_user = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return &p, nil
}

func (r *proyectoRepo) List(ctx context.Context, userID uint) ([]model.Proyecto, error) {
	var proyectos []model.Proyecto
	err := r.db.WithContext(ctx).
		Where("id_user = ?", userID).
		Order("created_at DESC").
		Find(&proyectos).Error
	return proyectos, TranslateError(err)
}

func (r *proyectoRepo) Save(ctx context.Context, p *model.Proyecto) error {
	return TranslateError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *proyectoRepo) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND id_user = ?", id, userID).
		Delete(&model.Proyecto{})
	if result.Error != nil {
		return translateDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *proyectoRepo) Resumen(ctx context.Context, proyectoID uint) (ResumenAgregado, error) {
	row := ResumenAgregado{ProyectoID: proyectoID}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto_total), 0)       AS presupuesto_usado,
		       COALESCE(AVG(porcentaje_avance), 0) AS avance_promedio
		FROM partidas
		WHERE proyecto_id = ?`, proyectoID).
		Scan(&row).Error
	return row, TranslateError(err)
}

// Resumenes computes the aggregates for every project of the user in one
// query (GROUP BY), so listing projects does not fan out per row.
func (r *proyectoRepo) Resumenes(ctx context.Context, userID uint) (map[uint]ResumenAgregado, error) {
	var rows []ResumenAgregado
	err := r.db.WithContext(ctx).Raw(`
		SELECT pa.proyecto_id                          AS proyecto_id,
		       COALESCE(SUM(pa.monto_total), 0)        AS presupuesto_usado,
		       COALESCE(AVG(pa.porcentaje_avance), 0)  AS avance_promedio
		FROM partidas pa
		INNER JOIN proyectos pr ON pr.id = pa.proyecto_id
		WHERE pr.id_user = ?
		GROUP BY pa.proyecto_id`, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	out := make(map[uint]ResumenAgregado, len(rows))
	for _, row := range rows {
		out[row.ProyectoID] = row
	}
	return out, nil
}
