package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockturn/internal/exporter"
)

type exportProgressEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ExportStream 导出 PDF（SSE 进度 + 完成后提供下载地址）
// POST /api/v1/export/stream
func (h *Handler) ExportStream(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	opts, err := buildExportOptions(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	send := func(event exportProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	send(exportProgressEvent{
		Type:      "start",
		Message:   "export started",
		Data:      map[string]any{"fileName": exporter.PDFFileName},
		Timestamp: time.Now(),
	})

	lastPercent := -1
	opts.Progress = func(p exporter.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(exportProgressEvent{
			Type:      "progress",
			Message:   p.Stage,
			Data:      map[string]any{"percent": p.Percent},
			Timestamp: time.Now(),
		})
	}

	exp := exporter.NewExporter(h.cfg.Export)
	pdf, err := exp.ExportPDF(opts)
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "export failed: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}

	tempPath := filepath.Join(h.exportsDir, fmt.Sprintf("stockturn_export_%s.pdf", uuid.New().String()))
	if err := pdf.OutputFileAndClose(tempPath); err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "write export file: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		_ = os.Remove(tempPath)
		return
	}

	token := h.downloads.put(tempPath, exporter.PDFFileName, downloadTTL)

	send(exportProgressEvent{
		Type:    "done",
		Message: "export complete",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": "/api/v1/export/download/" + token,
			"fileName":    exporter.PDFFileName,
		},
		Timestamp: time.Now(),
	})
}
