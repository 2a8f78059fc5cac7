package calculator

import "testing"

func TestCompute_COGSAverageScenario(t *testing.T) {
	t.Parallel()

	result := Compute(ModeCOGSAverage, Inputs{
		CostOfGoodsSold:    1000000,
		BeginningInventory: 250000,
		EndingInventory:    150000,
	})

	if result.Undefined {
		t.Fatalf("expected defined result")
	}
	if result.EffectiveAverageInventory != 200000 {
		t.Fatalf("effective avg want=200000 got=%v", result.EffectiveAverageInventory)
	}
	if result.TurnoverRatio != 5.0 {
		t.Fatalf("ratio want=5.00 got=%v", result.TurnoverRatio)
	}
	if result.DSI != 73.0 {
		t.Fatalf("dsi want=73 got=%v", result.DSI)
	}
	if result.RatioCategory != CategoryAverageTurnover {
		t.Fatalf("ratio category want=%q got=%q", CategoryAverageTurnover, result.RatioCategory)
	}
	if result.DSICategory != CategoryAveragePace {
		t.Fatalf("dsi category want=%q got=%q", CategoryAveragePace, result.DSICategory)
	}
}

func TestCompute_DirectAverageMatchesCOGSAverage(t *testing.T) {
	t.Parallel()

	direct := Compute(ModeDirectAverage, Inputs{
		CostOfGoodsSold:  1000000,
		AverageInventory: 200000,
	})
	averaged := Compute(ModeCOGSAverage, Inputs{
		CostOfGoodsSold:    1000000,
		BeginningInventory: 250000,
		EndingInventory:    150000,
	})

	if direct != averaged {
		t.Fatalf("mode mismatch: direct=%+v averaged=%+v", direct, averaged)
	}
}

// 两种模式在 期初=期末=平均 时必须完全等价
func TestCompute_ModeEquivalenceOnEqualInventory(t *testing.T) {
	t.Parallel()

	values := []float64{1, 1234.56, 200000, 987654.321}
	for _, x := range values {
		inputs := Inputs{
			CostOfGoodsSold:    750000,
			BeginningInventory: x,
			EndingInventory:    x,
			AverageInventory:   x,
		}
		a := Compute(ModeCOGSAverage, inputs)
		b := Compute(ModeDirectAverage, inputs)
		if a != b {
			t.Fatalf("x=%v: cogs_average=%+v direct_average=%+v", x, a, b)
		}
	}
}

func TestCompute_ExactArithmetic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cogs float64
		avg  float64
	}{
		{365, 1},
		{1000000, 200000},
		{500, 125},
		{73000, 36500},
	}

	for _, tc := range cases {
		result := Compute(ModeDirectAverage, Inputs{
			CostOfGoodsSold:  tc.cogs,
			AverageInventory: tc.avg,
		})
		if result.Undefined {
			t.Fatalf("cogs=%v avg=%v: unexpected undefined", tc.cogs, tc.avg)
		}
		if result.TurnoverRatio != tc.cogs/tc.avg {
			t.Fatalf("cogs=%v avg=%v: ratio want=%v got=%v", tc.cogs, tc.avg, tc.cogs/tc.avg, result.TurnoverRatio)
		}
		if result.DSI != DaysPerYear/result.TurnoverRatio {
			t.Fatalf("cogs=%v avg=%v: dsi want=%v got=%v", tc.cogs, tc.avg, DaysPerYear/result.TurnoverRatio, result.DSI)
		}
	}
}

func TestCompute_ZeroInventoryIsUndefinedSentinel(t *testing.T) {
	t.Parallel()

	result := Compute(ModeCOGSAverage, Inputs{
		CostOfGoodsSold:    500000,
		BeginningInventory: 0,
		EndingInventory:    0,
	})

	if !result.Undefined {
		t.Fatalf("expected undefined sentinel, got %+v", result)
	}
	if result.TurnoverRatio != 0 || result.DSI != 0 {
		t.Fatalf("sentinel must not carry Inf/NaN values: %+v", result)
	}

	direct := Compute(ModeDirectAverage, Inputs{
		CostOfGoodsSold:  500000,
		AverageInventory: 0,
	})
	if !direct.Undefined {
		t.Fatalf("expected undefined sentinel in direct mode, got %+v", direct)
	}
}

// 销货成本为零时周转率为零，DSI 分母为零，同样走哨兵
func TestCompute_ZeroCOGSIsUndefinedSentinel(t *testing.T) {
	t.Parallel()

	result := Compute(ModeDirectAverage, Inputs{
		CostOfGoodsSold:  0,
		AverageInventory: 200000,
	})
	if !result.Undefined {
		t.Fatalf("expected undefined sentinel, got %+v", result)
	}
}

func TestClassifyRatio_StrictBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio float64
		want  string
	}{
		{1.99, CategoryLowTurnover},
		{2.0, CategoryAverageTurnover}, // 恰好 2 不属于 low
		{4.0, CategoryAverageTurnover},
		{6.0, CategoryAverageTurnover}, // 恰好 6 不属于 high
		{6.01, CategoryHighTurnover},
		{12.8, CategoryHighTurnover},
	}
	for _, tc := range cases {
		if got := ClassifyRatio(tc.ratio); got != tc.want {
			t.Fatalf("ratio=%v want=%q got=%q", tc.ratio, tc.want, got)
		}
	}
}

func TestClassifyDSI_StrictBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dsi  float64
		want string
	}{
		{59.9, CategoryFastMoving},
		{60.0, CategoryAveragePace}, // 恰好 60 不属于 fast
		{73.0, CategoryAveragePace},
		{180.0, CategoryAveragePace}, // 恰好 180 不属于 slow
		{180.5, CategorySlowMoving},
	}
	for _, tc := range cases {
		if got := ClassifyDSI(tc.dsi); got != tc.want {
			t.Fatalf("dsi=%v want=%q got=%q", tc.dsi, tc.want, got)
		}
	}
}

func TestBenchmarks_FixedTable(t *testing.T) {
	t.Parallel()

	table := Benchmarks()
	if len(table) != 5 {
		t.Fatalf("benchmark count want=5 got=%d", len(table))
	}

	want := map[string]float64{
		"Apparel":        4.5,
		"Electronics":    5.2,
		"Grocery":        12.8,
		"Furniture":      2.3,
		"General Retail": 3.8,
	}
	for _, entry := range table {
		ref, ok := want[entry.Industry]
		if !ok {
			t.Fatalf("unexpected industry %q", entry.Industry)
		}
		if entry.Ratio != ref {
			t.Fatalf("industry=%q ratio want=%v got=%v", entry.Industry, ref, entry.Ratio)
		}
	}

	// 返回的是副本，调用方修改不得影响基准表
	table[0].Ratio = 99
	if Benchmarks()[0].Ratio == 99 {
		t.Fatalf("Benchmarks must return a copy")
	}
}

func TestComparison_Series(t *testing.T) {
	t.Parallel()

	result := Compute(ModeDirectAverage, Inputs{
		CostOfGoodsSold:  1000000,
		AverageInventory: 200000,
	})
	series := Comparison(result)
	if len(series) != 2 {
		t.Fatalf("series length want=2 got=%d", len(series))
	}
	if series[0].Label != "Your Business" || series[0].Ratio != 5.0 {
		t.Fatalf("unexpected first entry: %+v", series[0])
	}
	if series[1].Label != "Industry Average" || series[1].Ratio != IndustryAverageRatio {
		t.Fatalf("unexpected second entry: %+v", series[1])
	}

	undefined := Comparison(Result{Undefined: true})
	if undefined[0].Ratio != 0 {
		t.Fatalf("undefined result must compare as 0, got %v", undefined[0].Ratio)
	}
}
