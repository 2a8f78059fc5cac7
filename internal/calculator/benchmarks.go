package calculator

// IndustryAverageRatio 零售业平均周转率（对比图基准常量）
const IndustryAverageRatio = 3.8

// BenchmarkEntry 行业基准条目（静态参考数据，不可编辑）
type BenchmarkEntry struct {
	Industry string  `json:"industry"` // 行业名称
	Ratio    float64 `json:"ratio"`    // 参考周转率
}

// ComparisonEntry 对比条目（本企业 vs 行业平均）
type ComparisonEntry struct {
	Label string  `json:"label"` // 序列名称
	Ratio float64 `json:"ratio"` // 周转率
}

// benchmarks 五个行业的固定基准表
var benchmarks = []BenchmarkEntry{
	{Industry: "Apparel", Ratio: 4.5},
	{Industry: "Electronics", Ratio: 5.2},
	{Industry: "Grocery", Ratio: 12.8},
	{Industry: "Furniture", Ratio: 2.3},
	{Industry: "General Retail", Ratio: 3.8},
}

// Benchmarks 返回行业基准表副本
func Benchmarks() []BenchmarkEntry {
	out := make([]BenchmarkEntry, len(benchmarks))
	copy(out, benchmarks)
	return out
}

// Comparison 构造本企业与行业平均的两元素对比序列
// 结果为 Undefined 时本企业一栏取 0
func Comparison(result Result) []ComparisonEntry {
	yours := 0.0
	if !result.Undefined {
		yours = result.TurnoverRatio
	}
	return []ComparisonEntry{
		{Label: "Your Business", Ratio: yours},
		{Label: "Industry Average", Ratio: IndustryAverageRatio},
	}
}
