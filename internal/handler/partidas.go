package handler

import (
	"net/http"
	"strconv"

	"github.com/Albertgui/teg-backend/internal/apierror"
	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PartidasHandler struct{ svc service.PartidaService }

func NewPartidasHandler(svc service.PartidaService) *PartidasHandler {
	return &PartidasHandler{svc: svc}
}

func (h *PartidasHandler) Crear(c *gin.Context) {
	var req dto.CrearPartidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Partida creada exitosamente", resp)
}

func (h *PartidasHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partidas obtenidas exitosamente", resp)
}

// ListarVista serves the analytic view: partidas with derived estatus and the
// project name, ordered by estatus then deadline. Optional ?proyecto_id=
// narrows to one project.
func (h *PartidasHandler) ListarVista(c *gin.Context) {
	var proyectoID *uint
	if raw := c.Query("proyecto_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, apierror.New("El ID debe ser un numero"))
			return
		}
		v := uint(id)
		proyectoID = &v
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Vista(c.Request.Context(), claims.UserID, proyectoID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vista de partidas obtenida exitosamente", resp)
}

func (h *PartidasHandler) ObtenerPorID(c *gin.Context) {
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
	respond(c, http.StatusOK, "Partida obtenida exitosamente", resp)
}

func (h *PartidasHandler) Editar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarPartidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Editar(c.Request.Context(), id, claims.UserID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partida actualizada exitosamente", resp)
}

func (h *PartidasHandler) Completar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Completar(c.Request.Context(), id, claims.UserID)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partida completada exitosamente", resp)
}

func (h *PartidasHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.UserID); err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Partida eliminada exitosamente", nil)
}
