package calculator

// InputMode 输入模式
type InputMode string

const (
	// ModeCOGSAverage 期初+期末库存取平均
	ModeCOGSAverage InputMode = "cogs_average"
	// ModeDirectAverage 直接使用已平均的库存值
	ModeDirectAverage InputMode = "direct_average"
)

// DaysPerYear DSI 计算使用的年天数
const DaysPerYear = 365

// 周转率分类阈值（严格不等式，恰好等于 2 或 6 归入 average）
const (
	LowTurnoverBelow  = 2.0
	HighTurnoverAbove = 6.0
)

// DSI 分类阈值（严格不等式，恰好等于 60 或 180 归入 average pace）
const (
	FastMovingBelowDays = 60.0
	SlowMovingAboveDays = 180.0
)

// 分类描述（面向用户的英文文案）
const (
	CategoryLowTurnover     = "low turnover"
	CategoryHighTurnover    = "high turnover"
	CategoryAverageTurnover = "average"

	CategorySlowMoving  = "slow-moving"
	CategoryFastMoving  = "fast-moving"
	CategoryAveragePace = "average pace"
)

// Inputs 计算输入（同一货币单位）
// 非当前模式的字段保留但不参与计算
type Inputs struct {
	CostOfGoodsSold    float64 `json:"costOfGoodsSold"`    // 销货成本
	BeginningInventory float64 `json:"beginningInventory"` // 期初库存
	EndingInventory    float64 `json:"endingInventory"`    // 期末库存
	AverageInventory   float64 `json:"averageInventory"`   // 平均库存（直接模式）
}

// Result 计算结果（纯函数输出，不持有任何状态）
type Result struct {
	Undefined                 bool    `json:"undefined"`                 // 分母为零时为 true
	TurnoverRatio             float64 `json:"turnoverRatio"`             // 周转率（次/年）
	DSI                       float64 `json:"dsi"`                       // 库存周转天数
	EffectiveAverageInventory float64 `json:"effectiveAverageInventory"` // 实际使用的平均库存
	RatioCategory             string  `json:"ratioCategory"`             // 周转率分类
	DSICategory               string  `json:"dsiCategory"`               // 周转天数分类
}

// EffectiveAverageInventory 按模式计算有效平均库存
func EffectiveAverageInventory(mode InputMode, inputs Inputs) float64 {
	if mode == ModeDirectAverage {
		return inputs.AverageInventory
	}
	return (inputs.BeginningInventory + inputs.EndingInventory) / 2
}

// Compute 计算周转率与库存周转天数
// 相同输入恒产生相同输出。有效平均库存为零时周转率分母为零，
// 周转率为零时 DSI 分母为零；两种情况均返回 Undefined 哨兵结果，
// 不向上层泄漏 NaN / Inf
func Compute(mode InputMode, inputs Inputs) Result {
	effectiveAvg := EffectiveAverageInventory(mode, inputs)

	if effectiveAvg == 0 {
		return Result{
			Undefined: true,
		}
	}

	ratio := inputs.CostOfGoodsSold / effectiveAvg
	if ratio == 0 {
		return Result{
			Undefined:                 true,
			EffectiveAverageInventory: effectiveAvg,
		}
	}
	dsi := DaysPerYear / ratio

	return Result{
		TurnoverRatio:             ratio,
		DSI:                       dsi,
		EffectiveAverageInventory: effectiveAvg,
		RatioCategory:             ClassifyRatio(ratio),
		DSICategory:               ClassifyDSI(dsi),
	}
}

// ClassifyRatio 周转率分类
func ClassifyRatio(ratio float64) string {
	switch {
	case ratio < LowTurnoverBelow:
		return CategoryLowTurnover
	case ratio > HighTurnoverAbove:
		return CategoryHighTurnover
	default:
		return CategoryAverageTurnover
	}
}

// ClassifyDSI 周转天数分类
func ClassifyDSI(dsi float64) string {
	switch {
	case dsi > SlowMovingAboveDays:
		return CategorySlowMoving
	case dsi < FastMovingBelowDays:
		return CategoryFastMoving
	default:
		return CategoryAveragePace
	}
}
