package handler

import (
	"net/http"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ProyectosHandler struct{ svc service.ProyectoService }

func NewProyectosHandler(svc service.ProyectoService) *ProyectosHandler {
	return &ProyectosHandler{svc: svc}
}

func (h *ProyectosHandler) Crear(c *gin.Context) {
	var req dto.CrearProyectoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Proyecto creado exitosamente", resp)
}

func (h *ProyectosHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proyectos obtenidos exitosamente", resp)
}

func (h *ProyectosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id, claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proyecto obtenido exitosamente", resp)
}

func (h *ProyectosHandler) Editar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarProyectoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Editar(c.Request.Context(), id, claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proyecto actualizado exitosamente", resp)
}

func (h *ProyectosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.UserID); err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proyecto eliminado exitosamente", nil)
}

// DescargarReporte generates the project PDF on demand and streams it back.
func (h *ProyectosHandler) DescargarReporte(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	path, err := h.svc.GenerarReporte(c.Request.Context(), id, claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
