package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the downloadable artifacts.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportClassAttendance downloads a class attendance sheet as xlsx.
// GET /api/v1/classes/:id/attendance/export
func (h *ExportHandler) ExportClassAttendance(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportClassAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrExportNoRecords):
			response.BadRequest(c, 40004, "class has no attendance records")
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ClassCalendar serves the class schedule as an iCalendar feed.
// GET /api/v1/classes/calendar.ics
func (h *ExportHandler) ClassCalendar(c *gin.Context) {
	data, err := h.exportSvc.ClassCalendar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="gdsc-nexus-classes.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
