package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Domain error kinds produced at the repository boundary. Handlers map these
// to HTTP statuses; nothing above the repositories inspects SQLSTATE codes.
var (
	ErrNoEncontrado        = errors.New("registro no encontrado")
	ErrReferenciaInvalida  = errors.New("la referencia indicada no existe")
	ErrRegistrosVinculados = errors.New("existen registros vinculados")
)

// ErrCampoDuplicado names the column that violated a unique constraint.
type ErrCampoDuplicado struct {
	Campo string
}

func (e *ErrCampoDuplicado) Error() string {
	return fmt.Sprintf("valor duplicado en el campo %s", e.Campo)
}

// ErrCheckViolado reports a violated CHECK constraint (e.g. cedula range).
type ErrCheckViolado struct {
	Restriccion string
}

func (e *ErrCheckViolado) Error() string {
	return fmt.Sprintf("restriccion violada: %s", e.Restriccion)
}

// TranslateError converts driver/ORM failures into the domain error kinds
// above. This is the single place that inspects PostgreSQL error codes —
// 23505 unique, 23503 foreign key, 23514 check.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ErrCampoDuplicado{Campo: campoDuplicado(pgErr)}
		case "23503":
			return ErrReferenciaInvalida
		case "23514":
			return &ErrCheckViolado{Restriccion: pgErr.ConstraintName}
		}
	}
	return err
}

// translateDelete is TranslateError for delete paths: a foreign-key violation
// there means dependent rows exist, not a bad reference.
func translateDelete(err error) error {
	err = TranslateError(err)
	if errors.Is(err, ErrReferenciaInvalida) {
		return ErrRegistrosVinculados
	}
	return err
}

func campoDuplicado(pgErr *pgconn.PgError) string {
	detalle := pgErr.ConstraintName + " " + pgErr.Detail
	switch {
	case strings.Contains(detalle, "cedula"):
		return "cedula"
	case strings.Contains(detalle, "email"):
		return "email"
	case strings.Contains(detalle, "username"):
		return "username"
	case strings.Contains(detalle, "proyecto_responsable"):
		return "asignacion"
	}
	return "desconocido"
}
