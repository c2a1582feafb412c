package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
)

type MeHandler struct {
	users *user.Service
}

func NewMeHandler(users *user.Service) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	u, err := h.users.FindOne(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(*u))
}
