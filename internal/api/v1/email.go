package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EmailReportRequest 邮件发送请求
type EmailReportRequest struct {
	Address string `json:"address"`
}

// EmailReport 邮件发送占位接口
// 未接入任何邮件服务，恒返回提示文案
// POST /api/v1/report/email
func (h *Handler) EmailReport(c *gin.Context) {
	var req EmailReportRequest
	_ = c.ShouldBindJSON(&req)

	c.JSON(http.StatusOK, gin.H{
		"sent":    false,
		"message": "Email delivery is not available yet. Please use the PDF download instead.",
	})
}
