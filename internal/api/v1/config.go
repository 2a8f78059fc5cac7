package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockturn/internal/config"
)

// ConfigResponse 配置响应
type ConfigResponse struct {
	Port       int    `json:"port"`       // 服务端口
	BrandName  string `json:"brandName"`  // 报告页眉品牌名
	Tagline    string `json:"tagline"`    // 报告页眉副标题
	FooterNote string `json:"footerNote"` // 报告页脚文案
}

// UpdateConfigRequest 更新配置请求
// 指针字段允许部分更新，未携带的字段保持原值
type UpdateConfigRequest struct {
	BrandName  *string `json:"brandName"`
	Tagline    *string `json:"tagline"`
	FooterNote *string `json:"footerNote"`
}

// GetConfig 获取报告品牌配置
// GET /api/v1/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Port:       h.cfg.Server.Port,
		BrandName:  h.cfg.Export.BrandName,
		Tagline:    h.cfg.Export.Tagline,
		FooterNote: h.cfg.Export.FooterNote,
	})
}

// UpdateConfig 更新报告品牌配置并持久化到 config.toml
// PATCH /api/v1/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.BrandName != nil {
		h.cfg.Export.BrandName = *req.BrandName
	}
	if req.Tagline != nil {
		h.cfg.Export.Tagline = *req.Tagline
	}
	if req.FooterNote != nil {
		h.cfg.Export.FooterNote = *req.FooterNote
	}

	if err := config.SaveConfig(h.cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save config: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "config updated"})
}
