package handlers

import (
	"mime/multipart"
	"net/http"

	"servis_backend/internal/services"
	"servis_backend/internal/services/dto"
	"servis_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartMemoryLimit caps the in-memory part of multipart parsing; larger
// parts spill to temp files.
const multipartMemoryLimit = 8 << 20

type PesananHandler struct {
	*BaseHandler
	pesananService services.PesananService
}

func NewPesananHandler(base *BaseHandler, pesananService services.PesananService) *PesananHandler {
	return &PesananHandler{
		BaseHandler:    base,
		pesananService: pesananService,
	}
}

// Index handles GET /pesanan.
func (h *PesananHandler) Index(c *gin.Context) {
	response, err := h.pesananService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Posting handles POST /posting-pesanan: a multipart form with a JSON
// payload in the "data" field and optional photos in foto_1..foto_3.
func (h *PesananHandler) Posting(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(multipartMemoryLimit); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	data := c.PostForm("data")
	if data == "" {
		apperrors.HandleError(c, apperrors.ErrInvalidDataFormat)
		return
	}

	req := &dto.PostingRequest{
		Data: data,
		Foto: make(map[string]*multipart.FileHeader),
	}
	for _, slot := range dto.FotoSlots {
		if fh, err := c.FormFile(slot); err == nil {
			req.Foto[slot] = fh
		}
	}

	response, err := h.pesananService.Posting(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
