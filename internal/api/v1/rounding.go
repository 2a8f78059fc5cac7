package v1

import "math"

// round2 四舍五入到两位小数（周转率的对外精度）
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundDays 四舍五入到整天（DSI 的对外精度）
func roundDays(v float64) float64 {
	return math.Round(v)
}
