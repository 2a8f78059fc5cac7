package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockturn/internal/calculator"
)

// AppVersion 应用版本
const AppVersion = "1.0.0"

// StatusResponse 系统状态响应
type StatusResponse struct {
	App                  string  `json:"app"`                  // 应用名
	Version              string  `json:"version"`              // 版本号
	DefaultMode          string  `json:"defaultMode"`          // 默认输入模式
	DaysPerYear          int     `json:"daysPerYear"`          // DSI 年天数
	IndustryAverageRatio float64 `json:"industryAverageRatio"` // 行业平均周转率
	BenchmarkCount       int     `json:"benchmarkCount"`       // 基准行业数
}

// GetStatus 获取系统状态
// GET /api/v1/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		App:                  h.cfg.Export.BrandName,
		Version:              AppVersion,
		DefaultMode:          string(calculator.ModeCOGSAverage),
		DaysPerYear:          calculator.DaysPerYear,
		IndustryAverageRatio: calculator.IndustryAverageRatio,
		BenchmarkCount:       len(calculator.Benchmarks()),
	})
}
