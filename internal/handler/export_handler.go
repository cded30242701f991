package handler

import (
	"github.com/gin-gonic/gin"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/service"
)

// ExportHandler handles export-related HTTP requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// StreamExportRequest holds the export query. An empty format means ndjson.
type StreamExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv ndjson"`
}

// ginStreamWriter adapts the gin response to service.StreamWriter.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamExport handles GET /api/v1/articles/export?format=csv|ndjson.
func (h *ExportHandler) StreamExport(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req StreamExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "format must be one of: csv, ndjson")
		return
	}

	format := domain.NormalizeFormat(req.Format)

	c.Header("Content-Type", domain.ContentType(format))
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\"articles."+format+"\"")

	ctx := c.Request.Context()
	_, err := h.exportService.StreamArticles(ctx, caller.ID, format, &ginStreamWriter{writer: c.Writer})
	if err != nil {
		if !c.Writer.Written() {
			c.Header("Content-Type", "")
			c.Header("Content-Disposition", "")
			writeError(c, err)
			return
		}
		// The status line is already sent; the client sees a truncated body.
		logger.WarnContext(ctx, "export aborted mid-stream", "author_id", caller.ID, "error", err)
	}
}
