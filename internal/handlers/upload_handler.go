package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/upload"
)

const fileField = "file"

type UploadHandler struct {
	uploads *upload.Service
}

func NewUploadHandler(uploads *upload.Service) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) Photo(c *gin.Context) {
	f, ok := readFile(c)
	if !ok {
		return
	}

	res, err := h.uploads.Upload(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *UploadHandler) Bulk(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_multipart", "Request must be multipart/form-data.")
		return
	}

	headers := form.File[fileField]
	if len(headers) == 0 {
		httperr.BadRequest(c, "file_required", "At least one file is required.")
		return
	}
	if err := upload.CheckBulkCount(len(headers)); err != nil {
		httperr.Abort(c, err)
		return
	}

	files := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		f, err := upload.FromHeader(fh)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		files = append(files, f)
	}

	res, err := h.uploads.BulkUpload(c.Request.Context(), files)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, res)
}

// readFile loads the single "file" part of a multipart request.
func readFile(c *gin.Context) (upload.File, bool) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		httperr.BadRequest(c, "file_required", "A file is required.")
		return upload.File{}, false
	}

	f, err := upload.FromHeader(fh)
	if err != nil {
		httperr.Abort(c, err)
		return upload.File{}, false
	}
	return f, true
}
