package util

import (
	"fmt"
	"math"
	"strings"
)

// DisplayUndefined 分母为零时面向用户的占位文案
const DisplayUndefined = "N/A"

// FormatRatio 格式化周转率（两位小数）
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

// FormatDays 格式化周转天数（取整天）
func FormatDays(days float64) string {
	return fmt.Sprintf("%d", int(math.Round(days)))
}

// FormatCurrency 格式化货币（千分位，两位小数）
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(whole, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
