package calculator

import (
	"strconv"
	"strings"
)

// ParseNumeric 把自由文本输入净化为数值
// 契约：去除首尾空白与千分位逗号后按十进制浮点数解析；
// 解析失败（含空串）一律返回 0，不作为错误上报
func ParseNumeric(text string) float64 {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseInputs 把四个文本字段净化为计算输入
func ParseInputs(cogs, beginning, ending, average string) Inputs {
	return Inputs{
		CostOfGoodsSold:    ParseNumeric(cogs),
		BeginningInventory: ParseNumeric(beginning),
		EndingInventory:    ParseNumeric(ending),
		AverageInventory:   ParseNumeric(average),
	}
}
