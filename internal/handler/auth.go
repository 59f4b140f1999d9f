package handler

import (
	"net/http"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Inicio de sesion exitoso", data)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Usuario registrado exitosamente", user)
}

func (h *AuthHandler) EditUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	user, err := h.svc.EditUser(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	respond(c, http.StatusOK, "Usuario actualizado exitosamente", user)
}
