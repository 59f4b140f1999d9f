package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Albertgui/teg-backend/internal/apierror"
	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Report violations under the json name so clients see "monto_total", not
	// "MontoTotal".
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	validate.RegisterStructValidation(validarCrearProyecto, dto.CrearProyectoRequest{})
	validate.RegisterStructValidation(validarEditarProyecto, dto.EditarProyectoRequest{})
	validate.RegisterStructValidation(validarFechasPartida, dto.CrearPartidaRequest{}, dto.EditarPartidaRequest{})
}

// Cross-field rules run only when both sides are present in the request;
// a partial update that supplies just one side is accepted as-is.

func validarCrearProyecto(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CrearProyectoRequest)
	if req.PresupuestoPlanificado.GreaterThan(req.MontoTotalOperacion) {
		sl.ReportError(req.PresupuestoPlanificado, "presupuesto_planificado", "PresupuestoPlanificado", "ltefield", "monto_total_operacion")
	}
	validarOrdenFechas(sl, req.FechaInicio, req.FechaFinalEstimada)
}

func validarEditarProyecto(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.EditarProyectoRequest)
	if req.MontoTotalOperacion != nil && req.PresupuestoPlanificado != nil &&
		req.PresupuestoPlanificado.GreaterThan(*req.MontoTotalOperacion) {
		sl.ReportError(req.PresupuestoPlanificado, "presupuesto_planificado", "PresupuestoPlanificado", "ltefield", "monto_total_operacion")
	}
	validarOrdenFechas(sl, req.FechaInicio, req.FechaFinalEstimada)
}

func validarFechasPartida(sl validator.StructLevel) {
	switch req := sl.Current().Interface().(type) {
	case dto.CrearPartidaRequest:
		validarOrdenFechas(sl, req.FechaInicio, req.FechaFinalEstimada)
	case dto.EditarPartidaRequest:
		validarOrdenFechas(sl, req.FechaInicio, req.FechaFinalEstimada)
	}
}

func validarOrdenFechas(sl validator.StructLevel, inicio, final *string) {
	if inicio == nil || final == nil {
		return
	}
	fi, err1 := dto.ParseFecha(inicio)
	ff, err2 := dto.ParseFecha(final)
	if err1 != nil || err2 != nil || fi == nil || ff == nil {
		return // format violations already reported by the datetime tag
	}
	if ff.Before(*fi) {
		sl.ReportError(final, "fecha_final_estimada", "FechaFinalEstimada", "gtefield", "fecha_inicio")
	}
}

// bindAndValidate binds the JSON body and runs validator tags plus the
// struct-level rules. Returns false and writes the 400 response if anything
// fails — the caller must return without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []apierror.FieldError
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: mensajeCampo(fe)})
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

func mensajeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return fmt.Sprintf("debe ser como minimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como maximo %s", fe.Param())
	case "email":
		return "debe ser un email valido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "datetime":
		return "debe tener el formato YYYY-MM-DD"
	case "ltefield":
		return fmt.Sprintf("no puede ser mayor que %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("no puede ser anterior a %s", fe.Param())
	}
	return "es invalido"
}

// parseIDParam reads a numeric path parameter; writes the 400 response itself.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("El ID debe ser un numero"))
		return 0, false
	}
	return uint(id), true
}

// respond writes the success envelope {message, data}.
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"message": message, "data": data})
}

// responderError maps domain errors to HTTP statuses. Anything unrecognized
// is logged and hidden behind a 500.
func responderError(c *gin.Context, err error) {
	var dup *repository.ErrCampoDuplicado
	var chk *repository.ErrCheckViolado

	switch {
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
	case errors.Is(err, repository.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Recurso no encontrado"))
	case errors.Is(err, repository.ErrReferenciaInvalida):
		c.JSON(http.StatusBadRequest, apierror.New("La referencia indicada no existe"))
	case errors.Is(err, repository.ErrRegistrosVinculados):
		c.JSON(http.StatusConflict, apierror.New("No se puede eliminar: existen registros vinculados"))
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, apierror.New("Error en dato duplicado: "+dup.Campo))
	case errors.As(err, &chk):
		c.JSON(http.StatusBadRequest, apierror.New("La cedula debe estar entre 1 y 99999999"))
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Err(err).
			Msg("error no manejado")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
