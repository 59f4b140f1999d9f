package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Albertgui/teg-backend/internal/apierror"
	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/model"
	"github.com/Albertgui/teg-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Service stub ──────────────────────────────────────────────────────────────

type stubProyectoService struct {
	llamadas int
	crearErr error
}

func (s *stubProyectoService) Crear(_ context.Context, userID uint, req dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	s.llamadas++
	if s.crearErr != nil {
		return nil, s.crearErr
	}
	return &dto.ProyectoResponse{
		ID:                     1,
		Nombre:                 req.Nombre,
		MontoTotalOperacion:    req.MontoTotalOperacion,
		PresupuestoPlanificado: req.PresupuestoPlanificado,
		Estado:                 model.EstadoEjecucion,
	}, nil
}

func (s *stubProyectoService) Listar(_ context.Context, _ uint) ([]dto.ProyectoResponse, error) {
	s.llamadas++
	return []dto.ProyectoResponse{}, nil
}

func (s *stubProyectoService) ObtenerPorID(_ context.Context, id, _ uint) (*dto.ProyectoResponse, error) {
	s.llamadas++
	if id != 1 {
		return nil, repository.ErrNoEncontrado
	}
	return &dto.ProyectoResponse{ID: 1, Nombre: "Torre Norte"}, nil
}

func (s *stubProyectoService) Editar(_ context.Context, _, _ uint, _ dto.EditarProyectoRequest) (*dto.ProyectoResponse, error) {
	s.llamadas++
	return &dto.ProyectoResponse{ID: 1}, nil
}

func (s *stubProyectoService) Eliminar(_ context.Context, _, _ uint) error {
	s.llamadas++
	return repository.ErrRegistrosVinculados
}

func (s *stubProyectoService) GenerarReporte(_ context.Context, _, _ uint) (string, error) {
	s.llamadas++
	return "", repository.ErrNoEncontrado
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// fakeAuth injects claims directly, skipping JWT parsing.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{UserID: userID, Username: "testuser"})
		c.Next()
	}
}

func proyectosTestRouter(svc *stubProyectoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProyectosHandler(svc)
	grp := r.Group("/api/proyectos", fakeAuth(1))
	grp.POST("", h.Crear)
	grp.GET("/:id", h.ObtenerPorID)
	grp.DELETE("/:id", h.Eliminar)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearProyecto_Exitoso_Envelope(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := postJSON(r, "/api/proyectos", gin.H{
		"nombre":                  "Torre Norte",
		"monto_total_operacion":   1000,
		"presupuesto_planificado": 600,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Message string               `json:"message"`
		Data    dto.ProyectoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Proyecto creado exitosamente", resp.Message)
	assert.Equal(t, "Torre Norte", resp.Data.Nombre)
	assert.Equal(t, 1, svc.llamadas)
}

func TestCrearProyecto_PresupuestoMayorQueMonto(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := postJSON(r, "/api/proyectos", gin.H{
		"nombre":                  "Torre Norte",
		"monto_total_operacion":   1000,
		"presupuesto_planificado": 2000,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "presupuesto_planificado", resp.Errors[0].Field)
	assert.Zero(t, svc.llamadas, "la validacion debe cortar antes del servicio")
}

func TestCrearProyecto_FechasDesordenadas(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := postJSON(r, "/api/proyectos", gin.H{
		"nombre":                  "Torre Norte",
		"monto_total_operacion":   1000,
		"presupuesto_planificado": 600,
		"fecha_inicio":            "2024-02-01",
		"fecha_final_estimada":    "2024-01-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "fecha_final_estimada", resp.Errors[0].Field)
	assert.Zero(t, svc.llamadas)
}

func TestCrearProyecto_NombreCorto(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := postJSON(r, "/api/proyectos", gin.H{
		"nombre":                  "ab",
		"monto_total_operacion":   1000,
		"presupuesto_planificado": 600,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nombre")
	assert.Zero(t, svc.llamadas)
}

func TestObtenerProyecto_IDNoNumerico(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/proyectos/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El ID debe ser un numero")
	assert.Zero(t, svc.llamadas)
}

func TestObtenerProyecto_NoEncontrado(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/proyectos/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recurso no encontrado")
}

func TestEliminarProyecto_ConVinculados(t *testing.T) {
	svc := &stubProyectoService{}
	r := proyectosTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/proyectos/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "registros vinculados")
}

func TestCrearProyecto_DuplicadoTraducido(t *testing.T) {
	svc := &stubProyectoService{crearErr: &repository.ErrCampoDuplicado{Campo: "email"}}
	r := proyectosTestRouter(svc)

	w := postJSON(r, "/api/proyectos", gin.H{
		"nombre":                  "Torre Norte",
		"monto_total_operacion":   1000,
		"presupuesto_planificado": 600,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error en dato duplicado: email")
}

func TestEditarProyecto_PresupuestoSuperaMontoEnPatch(t *testing.T) {
	// La regla cruzada solo corre cuando ambos montos vienen en el request.
	gin.SetMode(gin.TestMode)
	svc := &stubProyectoService{}
	r := gin.New()
	h := NewProyectosHandler(svc)
	r.PATCH("/api/proyectos/:id", fakeAuth(1), h.Editar)

	raw, _ := json.Marshal(gin.H{
		"monto_total_operacion":   100,
		"presupuesto_planificado": 500,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/proyectos/1", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.llamadas)
}
