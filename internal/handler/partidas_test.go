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
	"github.com/Albertgui/teg-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPartidaService struct {
	vistaProyectoID *uint
	vistaLlamada    bool
	llamadas        int
}

func (s *stubPartidaService) Crear(_ context.Context, _ uint, req dto.CrearPartidaRequest) (*dto.PartidaResponse, error) {
	s.llamadas++
	return &dto.PartidaResponse{ID: 1, ProyectoID: req.ProyectoID, Descripcion: req.Descripcion, Estatus: model.EstatusPendiente}, nil
}

func (s *stubPartidaService) Listar(_ context.Context, _ uint) ([]dto.PartidaResponse, error) {
	s.llamadas++
	return nil, nil
}

func (s *stubPartidaService) Vista(_ context.Context, _ uint, proyectoID *uint) ([]dto.PartidaVistaResponse, error) {
	s.vistaLlamada = true
	s.vistaProyectoID = proyectoID
	return []dto.PartidaVistaResponse{}, nil
}

func (s *stubPartidaService) ObtenerPorID(_ context.Context, _, _ uint) (*dto.PartidaResponse, error) {
	s.llamadas++
	return &dto.PartidaResponse{ID: 1}, nil
}

func (s *stubPartidaService) Editar(_ context.Context, _, _ uint, _ dto.EditarPartidaRequest) (*dto.PartidaResponse, error) {
	s.llamadas++
	return &dto.PartidaResponse{ID: 1}, nil
}

func (s *stubPartidaService) Completar(_ context.Context, id, _ uint) (*dto.PartidaResponse, error) {
	s.llamadas++
	return &dto.PartidaResponse{ID: id, PorcentajeAvance: 100, Estatus: model.EstatusCompletada}, nil
}

func (s *stubPartidaService) Eliminar(_ context.Context, _, _ uint) error {
	s.llamadas++
	return nil
}

func partidasTestRouter(svc *stubPartidaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPartidasHandler(svc)
	grp := r.Group("/api/partidas", fakeAuth(1))
	grp.GET("/view", h.ListarVista)
	grp.GET("/:id", h.ObtenerPorID)
	grp.POST("", h.Crear)
	grp.PATCH("/:id", h.Editar)
	grp.PATCH("/complete/:id", h.Completar)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListarVista_SinFiltro(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := getPath(r, "/api/partidas/view")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.vistaLlamada)
	assert.Nil(t, svc.vistaProyectoID)
}

func TestListarVista_ConProyectoID(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := getPath(r, "/api/partidas/view?proyecto_id=7")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.vistaProyectoID)
	assert.Equal(t, uint(7), *svc.vistaProyectoID)
}

func TestListarVista_ProyectoIDInvalido(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := getPath(r, "/api/partidas/view?proyecto_id=abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.vistaLlamada)
}

func TestCrearPartida_SinProyectoID(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := postJSON(r, "/api/partidas", gin.H{"descripcion": "Fundaciones"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "proyecto_id")
	assert.Zero(t, svc.llamadas)
}

func TestCrearPartida_FechasDesordenadas(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := postJSON(r, "/api/partidas", gin.H{
		"proyecto_id":          1,
		"descripcion":          "Fundaciones",
		"fecha_inicio":         "2024-02-01",
		"fecha_final_estimada": "2024-01-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "fecha_final_estimada", resp.Errors[0].Field)
	assert.Zero(t, svc.llamadas)
}

func TestEditarPartida_FechasDesordenadas(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	raw, _ := json.Marshal(gin.H{
		"fecha_inicio":         "2024-02-01",
		"fecha_final_estimada": "2024-01-01",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/partidas/5", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "fecha_final_estimada", resp.Errors[0].Field)
	assert.Zero(t, svc.llamadas)
}

func TestCompletarPartida_Exitoso(t *testing.T) {
	svc := &stubPartidaService{}
	r := partidasTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/partidas/complete/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Partida completada exitosamente")
	assert.Contains(t, w.Body.String(), model.EstatusCompletada)
}
