package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// --------- Requests ---------

type createUserRequest struct {
	Name     string  `json:"user_name" binding:"required,max=100"`
	Email    string  `json:"user_email" binding:"required,email,max=100"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Phone    *string `json:"phone_number" binding:"omitempty,max=20"`
}

type updateUserRequest struct {
	Name            *string `json:"user_name" binding:"omitempty,max=100"`
	Email           *string `json:"user_email" binding:"omitempty,email,max=100"`
	Phone           *string `json:"phone_number" binding:"omitempty,max=20"`
	Password        *string `json:"password" binding:"omitempty,min=6,max=72"`
	CurrentPassword *string `json:"current_password"`
}

// ======================================================
// READ
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var f domain.Filter
	if !bindQuery(c, &f) {
		return
	}

	users, err := h.users.FindAll(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, dto.NewUserDTOs(users))
}

func (h *UserHandler) Paginate(c *gin.Context) {
	var f domain.Filter
	req, ok := bindPage(c, &f)
	if !ok {
		return
	}

	page, err := h.users.Paginate(c.Request.Context(), f, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, pagination.Map(page, dto.NewUserDTO))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(*u))
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(*u))
}

// ======================================================
// WRITE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Create(c.Request.Context(), user.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, dto.NewUserDTO(*u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Update(c.Request.Context(), c.Param("id"), user.UpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(*u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	affected, err := h.users.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Deleted(c, affected)
}
