package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/offering"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/offering"
)

type ServiceHandler struct {
	offerings *offering.Service
}

func NewServiceHandler(offerings *offering.Service) *ServiceHandler {
	return &ServiceHandler{offerings: offerings}
}

// --------- Requests ---------

type createServiceRequest struct {
	Name         string `json:"service_name" binding:"required,max=100"`
	Value        *int   `json:"service_value" binding:"required,gte=0"`
	ExpectedTime string `json:"expected_time" binding:"required,hhmm"`
	IsActive     *bool  `json:"is_active"`
	UserID       string `json:"user_id" binding:"required"`
}

type updateServiceRequest struct {
	Name         *string `json:"service_name" binding:"omitempty,max=100"`
	Value        *int    `json:"service_value" binding:"omitempty,gte=0"`
	ExpectedTime *string `json:"expected_time" binding:"omitempty,hhmm"`
	IsActive     *bool   `json:"is_active"`
	UserID       *string `json:"user_id"`
}

// ======================================================
// READ
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var f domain.Filter
	if !bindQuery(c, &f) {
		return
	}

	services, err := h.offerings.FindAll(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Paginate(c *gin.Context) {
	var f domain.Filter
	req, ok := bindPage(c, &f)
	if !ok {
		return
	}

	page, err := h.offerings.Paginate(c.Request.Context(), f, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.offerings.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// WRITE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req createServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.offerings.Create(c.Request.Context(), offering.CreateInput{
		Name:         req.Name,
		Value:        *req.Value,
		ExpectedTime: req.ExpectedTime,
		IsActive:     req.IsActive,
		UserID:       req.UserID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req updateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.offerings.Update(c.Request.Context(), c.Param("id"), offering.UpdateInput{
		Name:         req.Name,
		Value:        req.Value,
		ExpectedTime: req.ExpectedTime,
		IsActive:     req.IsActive,
		UserID:       req.UserID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	affected, err := h.offerings.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Deleted(c, affected)
}
