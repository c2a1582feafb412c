package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	clients *client.Service
}

func NewClientHandler(clients *client.Service) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// --------- Requests ---------

type createClientRequest struct {
	Name      string `json:"client_name" binding:"required,max=100"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	BirthDate string `json:"birth_date" binding:"required,max=10"`
	Phone     string `json:"client_phone" binding:"max=20"`
	IsActive  *bool  `json:"is_active"`
	BranchID  string `json:"branch_id" binding:"required"`
}

type updateClientRequest struct {
	Name      *string `json:"client_name" binding:"omitempty,max=100"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	BirthDate *string `json:"birth_date" binding:"omitempty,max=10"`
	Phone     *string `json:"client_phone" binding:"omitempty,max=20"`
	IsActive  *bool   `json:"is_active"`
	BranchID  *string `json:"branch_id"`
}

// ======================================================
// READ
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var f domain.Filter
	if !bindQuery(c, &f) {
		return
	}

	clients, err := h.clients.FindAll(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Paginate(c *gin.Context) {
	var f domain.Filter
	req, ok := bindPage(c, &f)
	if !ok {
		return
	}

	page, err := h.clients.Paginate(c.Request.Context(), f, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.clients.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, cl)
}

// ======================================================
// WRITE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.clients.Create(c.Request.Context(), client.CreateInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		IsActive:  req.IsActive,
		BranchID:  req.BranchID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req updateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.clients.Update(c.Request.Context(), c.Param("id"), client.UpdateInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		IsActive:  req.IsActive,
		BranchID:  req.BranchID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	affected, err := h.clients.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Deleted(c, affected)
}
