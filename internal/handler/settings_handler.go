package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sowbrand/manager-sowbrand/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": settings})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "Parâmetros inválidos: " + err.Error()})
		return
	}

	settings, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": settings})
}

// UploadLogo stores a new company logo.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "Arquivo ausente: " + err.Error()})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	settings, err := h.svc.UploadLogo(c.Request.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": settings})
}

// Logo streams the stored company logo.
func (h *SettingsHandler) Logo(c *gin.Context) {
	obj, _, err := h.svc.Logo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "Logo não encontrado"})
		return
	}
	defer obj.Close()

	c.Status(http.StatusOK)
	io.Copy(c.Writer, obj)
}
