package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"reddybook/internal/report"
	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	svc    *service.SubmissionService
	loc    *time.Location
	logger *zap.Logger
}

// loc is the zone the start/end filter dates are read in.
func NewSubmissionHandler(svc *service.SubmissionService, loc *time.Location, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, loc: loc, logger: logger}
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

func (h *SubmissionHandler) List(c *gin.Context) {
	r, ok := h.dateRange(c)
	if !ok {
		return
	}
	rows, inRange, err := h.svc.List(r)
	if err != nil {
		h.logger.Error("failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": rows, "total": len(rows), "in_range_total": inRange})
}

func (h *SubmissionHandler) ExportCSV(c *gin.Context) {
	h.export(c, "text/csv; charset=utf-8", report.CSVFileName, h.svc.ExportCSV)
}

func (h *SubmissionHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report.XLSXFileName, h.svc.ExportXLSX)
}

func (h *SubmissionHandler) export(c *gin.Context, contentType, filename string, write func(io.Writer, report.DateRange) error) {
	r, ok := h.dateRange(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, r); err != nil {
		h.logger.Error("export failed", zap.String("file", filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *SubmissionHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.BulkDelete(req.IDs)
	if err != nil {
		h.logger.Error("bulk delete failed", zap.Int("count", len(req.IDs)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *SubmissionHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	status, err := h.svc.ToggleStatus(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *SubmissionHandler) ContactLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	url, err := h.svc.ContactLink(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *SubmissionHandler) dateRange(c *gin.Context) (report.DateRange, bool) {
	r, err := report.ParseDateRange(c.Query("start"), c.Query("end"), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD: " + err.Error()})
		return report.DateRange{}, false
	}
	return r, true
}

func (h *SubmissionHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("submission operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
}
