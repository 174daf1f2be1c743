package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turmalink/backend/internal/service"
	"turmalink/backend/pkg/response"
)

// DirectoryHandler serves the full-directory endpoints.
type DirectoryHandler struct {
	svc    service.DirectoryService
	export service.ExportService
	logger *zap.Logger
}

// NewDirectoryHandler creates the DirectoryHandler.
func NewDirectoryHandler(svc service.DirectoryService, export service.ExportService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, export: export, logger: logger}
}

// ListAll handles GET /directory.
func (h *DirectoryHandler) ListAll(c *gin.Context) {
	resp, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// Export handles GET /directory/export, streaming the directory workbook.
func (h *DirectoryHandler) Export(c *gin.Context) {
	data, err := h.export.ExportDirectory(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	filename := fmt.Sprintf("directory-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
