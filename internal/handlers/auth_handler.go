package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/auth"
)

type AuthHandler struct {
	signIn *auth.SignIn
}

func NewAuthHandler(signIn *auth.SignIn) *AuthHandler {
	return &AuthHandler{signIn: signIn}
}

// --------- Requests ---------

type loginRequest struct {
	Email    string `json:"user_email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.signIn.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}
