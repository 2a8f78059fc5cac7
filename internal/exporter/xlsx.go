package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"stockturn/internal/calculator"
	"stockturn/internal/util"
)

const reportSheet = "Report"

// ExportXLSX 导出结果与基准表的电子表格
func (e *Exporter) ExportXLSX(opts ExportOptions) (*excelize.File, error) {
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	reportProgress(opts.Progress, 20, "composing workbook")

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", reportSheet)

	if err := f.SetColWidth(reportSheet, "A", "A", 32); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "B", "B", 24); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	ratioDisplay := util.DisplayUndefined
	dsiDisplay := util.DisplayUndefined
	ratioCategory := util.DisplayUndefined
	dsiCategory := util.DisplayUndefined
	if !opts.Result.Undefined {
		ratioDisplay = util.FormatRatio(opts.Result.TurnoverRatio)
		dsiDisplay = util.FormatDays(opts.Result.DSI)
		ratioCategory = opts.Result.RatioCategory
		dsiCategory = opts.Result.DSICategory
	}

	rows := [][2]any{
		{e.branding.BrandName, e.branding.Tagline},
		{ReportTitle, "Generated " + generatedAt.Format("2006-01-02 15:04:05")},
		{"", ""},
		{"Input Mode", string(opts.Mode)},
		{"Cost of Goods Sold", opts.Inputs.CostOfGoodsSold},
		{"Beginning Inventory", opts.Inputs.BeginningInventory},
		{"Ending Inventory", opts.Inputs.EndingInventory},
		{"Average Inventory (direct)", opts.Inputs.AverageInventory},
		{"Effective Average Inventory", opts.Result.EffectiveAverageInventory},
		{"", ""},
		{"Inventory Turnover Ratio", ratioDisplay},
		{"Turnover Assessment", ratioCategory},
		{"Days Sales of Inventory", dsiDisplay},
		{"Inventory Pace", dsiCategory},
		{"", ""},
		{"Industry Benchmarks", "Reference Ratio"},
	}

	for _, entry := range calculator.Benchmarks() {
		rows = append(rows, [2]any{entry.Industry, entry.Ratio})
	}
	rows = append(rows, [2]any{"Industry Average", calculator.IndustryAverageRatio})

	reportProgress(opts.Progress, 60, "writing cells")

	for i, row := range rows {
		rowNum := i + 1
		if err := f.SetCellValue(reportSheet, fmt.Sprintf("A%d", rowNum), row[0]); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write cell A%d: %w", rowNum, err)
		}
		if err := f.SetCellValue(reportSheet, fmt.Sprintf("B%d", rowNum), row[1]); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write cell B%d: %w", rowNum, err)
		}
	}

	f.SetActiveSheet(0)

	reportProgress(opts.Progress, 90, "finalizing")
	return f, nil
}
