package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockturn/internal/calculator"
	"stockturn/internal/util"
)

// CalculateRequest 计算请求
// 四个字段均为自由文本，由净化层统一做数值强制转换
type CalculateRequest struct {
	Mode               string `json:"mode"`               // cogs_average | direct_average
	CostOfGoodsSold    string `json:"costOfGoodsSold"`    // 销货成本
	BeginningInventory string `json:"beginningInventory"` // 期初库存
	EndingInventory    string `json:"endingInventory"`    // 期末库存
	AverageInventory   string `json:"averageInventory"`   // 平均库存（直接模式）
}

// CalculateResponse 计算响应
type CalculateResponse struct {
	Undefined                 bool                         `json:"undefined"`                 // 分母为零
	TurnoverRatio             float64                      `json:"turnoverRatio"`             // 周转率（两位小数）
	TurnoverRatioDisplay      string                       `json:"turnoverRatioDisplay"`      // 展示文本
	DSI                       float64                      `json:"dsi"`                       // 周转天数（整数天）
	DSIDisplay                string                       `json:"dsiDisplay"`                // 展示文本
	RatioCategory             string                       `json:"ratioCategory"`             // 周转率分类
	DSICategory               string                       `json:"dsiCategory"`               // 周转天数分类
	EffectiveAverageInventory float64                      `json:"effectiveAverageInventory"` // 有效平均库存
	Comparison                []calculator.ComparisonEntry `json:"comparison"`                // 本企业 vs 行业平均
	Benchmarks                []calculator.BenchmarkEntry  `json:"benchmarks"`                // 行业基准表
}

// parseMode 解析输入模式
func parseMode(mode string) (calculator.InputMode, bool) {
	switch calculator.InputMode(mode) {
	case calculator.ModeCOGSAverage:
		return calculator.ModeCOGSAverage, true
	case calculator.ModeDirectAverage:
		return calculator.ModeDirectAverage, true
	}
	return "", false
}

// buildCalculateResponse 把纯计算结果映射为展示友好的响应
func buildCalculateResponse(result calculator.Result) CalculateResponse {
	resp := CalculateResponse{
		Undefined:                 result.Undefined,
		EffectiveAverageInventory: result.EffectiveAverageInventory,
		Comparison:                calculator.Comparison(result),
		Benchmarks:                calculator.Benchmarks(),
	}

	if result.Undefined {
		resp.TurnoverRatioDisplay = util.DisplayUndefined
		resp.DSIDisplay = util.DisplayUndefined
		resp.RatioCategory = util.DisplayUndefined
		resp.DSICategory = util.DisplayUndefined
		return resp
	}

	resp.TurnoverRatio = round2(result.TurnoverRatio)
	resp.TurnoverRatioDisplay = util.FormatRatio(result.TurnoverRatio)
	resp.DSI = roundDays(result.DSI)
	resp.DSIDisplay = util.FormatDays(result.DSI)
	resp.RatioCategory = result.RatioCategory
	resp.DSICategory = result.DSICategory
	return resp
}

// Calculate 计算周转率与 DSI
// POST /api/v1/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	mode, ok := parseMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown input mode: " + req.Mode})
		return
	}

	inputs := calculator.ParseInputs(
		req.CostOfGoodsSold,
		req.BeginningInventory,
		req.EndingInventory,
		req.AverageInventory,
	)
	result := calculator.Compute(mode, inputs)

	c.JSON(http.StatusOK, buildCalculateResponse(result))
}

// GetBenchmarks 获取行业基准表
// GET /api/v1/benchmarks
func (h *Handler) GetBenchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"industryAverage": calculator.IndustryAverageRatio,
		"benchmarks":      calculator.Benchmarks(),
	})
}
