package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockturn/internal/calculator"
	"stockturn/internal/exporter"
)

// 下载链接有效期
const downloadTTL = 10 * time.Minute

// ExportRequest 导出请求
// Snapshot 为前端栅格化的结果面板 PNG（data URL 或纯 base64），可为空
type ExportRequest struct {
	Mode               string `json:"mode"`
	CostOfGoodsSold    string `json:"costOfGoodsSold"`
	BeginningInventory string `json:"beginningInventory"`
	EndingInventory    string `json:"endingInventory"`
	AverageInventory   string `json:"averageInventory"`
	Snapshot           string `json:"snapshot"`
}

// ExportResponse 导出响应
type ExportResponse struct {
	DownloadURL string `json:"downloadUrl"` // 一次性下载地址
	FileName    string `json:"fileName"`    // 固定产物文件名
}

// decodeSnapshot 解码截图字段（兼容 data URL 前缀）
func decodeSnapshot(snapshot string) ([]byte, error) {
	snapshot = strings.TrimSpace(snapshot)
	if snapshot == "" {
		return nil, nil
	}
	if idx := strings.Index(snapshot, "base64,"); idx >= 0 {
		snapshot = snapshot[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return data, nil
}

// buildExportOptions 把导出请求转换为导出选项
func buildExportOptions(req ExportRequest) (exporter.ExportOptions, error) {
	mode, ok := parseMode(req.Mode)
	if !ok {
		return exporter.ExportOptions{}, fmt.Errorf("unknown input mode: %s", req.Mode)
	}

	snapshot, err := decodeSnapshot(req.Snapshot)
	if err != nil {
		return exporter.ExportOptions{}, err
	}

	inputs := calculator.ParseInputs(
		req.CostOfGoodsSold,
		req.BeginningInventory,
		req.EndingInventory,
		req.AverageInventory,
	)

	return exporter.ExportOptions{
		Mode:        mode,
		Inputs:      inputs,
		Result:      calculator.Compute(mode, inputs),
		Snapshot:    snapshot,
		GeneratedAt: time.Now(),
	}, nil
}

// Export 导出 PDF 报告
// POST /api/v1/export
func (h *Handler) Export(c *gin.Context) {
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

	exp := exporter.NewExporter(h.cfg.Export)
	pdf, err := exp.ExportPDF(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed: " + err.Error()})
		return
	}

	tempPath := filepath.Join(h.exportsDir, fmt.Sprintf("stockturn_export_%s.pdf", uuid.New().String()))
	if err := pdf.OutputFileAndClose(tempPath); err != nil {
		_ = os.Remove(tempPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "write export file: " + err.Error()})
		return
	}

	token := h.downloads.put(tempPath, exporter.PDFFileName, downloadTTL)
	c.JSON(http.StatusOK, ExportResponse{
		DownloadURL: "/api/v1/export/download/" + token,
		FileName:    exporter.PDFFileName,
	})
}

// ExportXLSX 导出电子表格报告
// POST /api/v1/export/xlsx
func (h *Handler) ExportXLSX(c *gin.Context) {
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

	exp := exporter.NewExporter(h.cfg.Export)
	f, err := exp.ExportXLSX(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed: " + err.Error()})
		return
	}
	defer f.Close()

	tempPath := filepath.Join(h.exportsDir, fmt.Sprintf("stockturn_export_%s.xlsx", uuid.New().String()))
	if err := f.SaveAs(tempPath); err != nil {
		_ = os.Remove(tempPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "write export file: " + err.Error()})
		return
	}

	token := h.downloads.put(tempPath, exporter.XLSXFileName, downloadTTL)
	c.JSON(http.StatusOK, ExportResponse{
		DownloadURL: "/api/v1/export/download/" + token,
		FileName:    exporter.XLSXFileName,
	})
}

// DownloadExport 下载已生成的报告（一次性 token）
// GET /api/v1/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or not found"})
		return
	}

	c.FileAttachment(item.filePath, item.fileName)
	h.downloads.delete(token)
}
