package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/userphoto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/userphoto"
)

type UserPhotoHandler struct {
	photos *userphoto.Service
}

func NewUserPhotoHandler(photos *userphoto.Service) *UserPhotoHandler {
	return &UserPhotoHandler{photos: photos}
}

// ======================================================
// READ
// ======================================================

func (h *UserPhotoHandler) List(c *gin.Context) {
	var f domain.Filter
	if !bindQuery(c, &f) {
		return
	}

	photos, err := h.photos.FindAll(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, photos)
}

func (h *UserPhotoHandler) Paginate(c *gin.Context) {
	var f domain.Filter
	req, ok := bindPage(c, &f)
	if !ok {
		return
	}

	page, err := h.photos.Paginate(c.Request.Context(), f, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *UserPhotoHandler) Get(c *gin.Context) {
	p, err := h.photos.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// WRITE
// ======================================================

// Create stores the photo for ?userId=, defaulting to the caller.
func (h *UserPhotoHandler) Create(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = middleware.UserID(c)
	}

	f, ok := readFile(c)
	if !ok {
		return
	}

	p, err := h.photos.Create(c.Request.Context(), userID, f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *UserPhotoHandler) Update(c *gin.Context) {
	var owner *string
	if userID, ok := c.GetQuery("userId"); ok && userID != "" {
		owner = &userID
	}

	f, ok := readFile(c)
	if !ok {
		return
	}

	p, err := h.photos.Update(c.Request.Context(), c.Param("id"), f, owner)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *UserPhotoHandler) Delete(c *gin.Context) {
	affected, err := h.photos.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Deleted(c, affected)
}
