package v1

import (
	"os"

	"github.com/gin-gonic/gin"

	"stockturn/internal/config"
)

// Handler V1 API 处理器
type Handler struct {
	cfg        *config.AppConfig
	exportsDir string // 导出临时产物目录
	downloads  *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(cfg *config.AppConfig, exportsDir string) *Handler {
	_ = os.MkdirAll(exportsDir, 0755)
	return &Handler{
		cfg:        cfg,
		exportsDir: exportsDir,
		downloads:  newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 周转率计算
	router.POST("/calculate", h.Calculate)
	// 行业基准表
	router.GET("/benchmarks", h.GetBenchmarks)

	// 报告导出
	router.POST("/export", h.Export)
	router.POST("/export/stream", h.ExportStream)
	router.POST("/export/xlsx", h.ExportXLSX)
	router.GET("/export/download/:token", h.DownloadExport)

	// 邮件发送（占位，未接入任何邮件服务）
	router.POST("/report/email", h.EmailReport)
}
