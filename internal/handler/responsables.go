package handler

import (
	"net/http"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ResponsablesHandler struct{ svc service.ResponsableService }

func NewResponsablesHandler(svc service.ResponsableService) *ResponsablesHandler {
	return &ResponsablesHandler{svc: svc}
}

func (h *ResponsablesHandler) Crear(c *gin.Context) {
	var req dto.CrearResponsableRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Responsable creado exitosamente", resp)
}

func (h *ResponsablesHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Responsables obtenidos exitosamente", resp)
}

func (h *ResponsablesHandler) ObtenerPorID(c *gin.Context) {
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
	respond(c, http.StatusOK, "Responsable obtenido exitosamente", resp)
}

// ListarPorProyecto lists the staff assigned to one project with their roles.
func (h *ResponsablesHandler) ListarPorProyecto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.StaffPorProyecto(c.Request.Context(), id, claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Personal del proyecto obtenido exitosamente", resp)
}

func (h *ResponsablesHandler) AsignarProyecto(c *gin.Context) {
	var req dto.AsignarProyectoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Asignar(c.Request.Context(), claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Responsable asignado al proyecto exitosamente", resp)
}

func (h *ResponsablesHandler) Editar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarResponsableRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Editar(c.Request.Context(), id, claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Responsable actualizado exitosamente", resp)
}

func (h *ResponsablesHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.UserID); err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Responsable eliminado exitosamente", nil)
}
