package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/branch"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/branch"
)

type BranchHandler struct {
	branches *branch.Service
}

func NewBranchHandler(branches *branch.Service) *BranchHandler {
	return &BranchHandler{branches: branches}
}

// --------- Requests ---------

type createBranchRequest struct {
	Name         string   `json:"branch_name" binding:"required,max=100"`
	CNPJ         *string  `json:"cnpj" binding:"omitempty,len=14,numeric"`
	Street       string   `json:"street" binding:"required,max=150"`
	CEP          string   `json:"cep" binding:"required,len=8,numeric"`
	City         string   `json:"city" binding:"required,max=100"`
	District     string   `json:"district" binding:"required,max=100"`
	LocalNumber  string   `json:"local_number" binding:"required,max=10"`
	Phone        *string  `json:"branch_phone" binding:"omitempty,max=20"`
	Complements  string   `json:"complements" binding:"max=100"`
	OpeningHours string   `json:"opening_hours" binding:"required,hhmm"`
	ClosingHours string   `json:"closing_hours" binding:"required,hhmm"`
	UserID       string   `json:"user_id" binding:"required"`
	Services     []string `json:"services"`
}

type updateBranchRequest struct {
	Name         *string   `json:"branch_name" binding:"omitempty,max=100"`
	CNPJ         *string   `json:"cnpj" binding:"omitempty,len=14,numeric"`
	Street       *string   `json:"street" binding:"omitempty,max=150"`
	CEP          *string   `json:"cep" binding:"omitempty,len=8,numeric"`
	City         *string   `json:"city" binding:"omitempty,max=100"`
	District     *string   `json:"district" binding:"omitempty,max=100"`
	LocalNumber  *string   `json:"local_number" binding:"omitempty,max=10"`
	Phone        *string   `json:"branch_phone" binding:"omitempty,max=20"`
	Complements  *string   `json:"complements" binding:"omitempty,max=100"`
	OpeningHours *string   `json:"opening_hours" binding:"omitempty,hhmm"`
	ClosingHours *string   `json:"closing_hours" binding:"omitempty,hhmm"`
	UserID       *string   `json:"user_id"`
	Services     *[]string `json:"services"`
}

// ======================================================
// READ
// ======================================================

func (h *BranchHandler) List(c *gin.Context) {
	var f domain.Filter
	if !bindQuery(c, &f) {
		return
	}

	branches, err := h.branches.FindAll(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, branches)
}

func (h *BranchHandler) Paginate(c *gin.Context) {
	var f domain.Filter
	req, ok := bindPage(c, &f)
	if !ok {
		return
	}

	page, err := h.branches.Paginate(c.Request.Context(), f, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *BranchHandler) Get(c *gin.Context) {
	b, err := h.branches.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// WRITE
// ======================================================

func (h *BranchHandler) Create(c *gin.Context) {
	var req createBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.branches.Create(c.Request.Context(), branch.CreateInput{
		Fields: domain.Fields{
			Name:         req.Name,
			CNPJ:         req.CNPJ,
			Street:       req.Street,
			CEP:          req.CEP,
			City:         req.City,
			District:     req.District,
			LocalNumber:  req.LocalNumber,
			Phone:        req.Phone,
			Complements:  req.Complements,
			OpeningHours: req.OpeningHours,
			ClosingHours: req.ClosingHours,
			UserID:       req.UserID,
		},
		ServiceIDs: req.Services,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BranchHandler) Update(c *gin.Context) {
	var req updateBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.branches.Update(c.Request.Context(), c.Param("id"), branch.UpdateInput{
		Name:         req.Name,
		CNPJ:         req.CNPJ,
		Street:       req.Street,
		CEP:          req.CEP,
		City:         req.City,
		District:     req.District,
		LocalNumber:  req.LocalNumber,
		Phone:        req.Phone,
		Complements:  req.Complements,
		OpeningHours: req.OpeningHours,
		ClosingHours: req.ClosingHours,
		UserID:       req.UserID,
		ServiceIDs:   req.Services,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	affected, err := h.branches.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Deleted(c, affected)
}
