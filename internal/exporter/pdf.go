package exporter

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"

	"stockturn/internal/calculator"
	"stockturn/internal/config"
	"stockturn/internal/util"
)

// 导出产物固定文件名
const (
	PDFFileName  = "inventory-turnover-report.pdf"
	XLSXFileName = "inventory-turnover-report.xlsx"
)

// ReportTitle 报告标题
const ReportTitle = "Inventory Turnover Report"

// Exporter 报告导出器
// 把已栅格化的结果面板合成为带品牌页眉页脚的单页（溢出时多页）文档
type Exporter struct {
	branding config.ExportConfig
}

// NewExporter 创建导出器
func NewExporter(branding config.ExportConfig) *Exporter {
	return &Exporter{
		branding: branding,
	}
}

// ExportOptions 导出选项
type ExportOptions struct {
	Mode        calculator.InputMode
	Inputs      calculator.Inputs
	Result      calculator.Result
	Snapshot    []byte    // 前端栅格化后的结果面板 PNG，可为空
	GeneratedAt time.Time // 生成时间戳（零值时取当前时间）
	Progress    func(ProgressEvent)
}

// ExportPDF 合成 PDF 报告
// 结构：品牌页眉 → 标题 → 生成时间 → 结果面板截图 → 结果摘要表 → 品牌页脚
// 任何一步失败都是该次导出的终态错误，不产生部分产物
func (e *Exporter) ExportPDF(opts ExportOptions) (*fpdf.Fpdf, error) {
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	reportProgress(opts.Progress, 10, "validating snapshot")

	// 提前校验截图可解码，避免 fpdf 在渲染期才报错
	if len(opts.Snapshot) > 0 {
		if _, err := png.DecodeConfig(bytes.NewReader(opts.Snapshot)); err != nil {
			return nil, fmt.Errorf("decode results snapshot: %w", err)
		}
	}

	reportProgress(opts.Progress, 40, "composing document")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ReportTitle, false)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(209, 213, 219)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 5, e.branding.FooterNote, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	e.drawHeader(pdf)
	e.drawTitle(pdf, generatedAt)

	if len(opts.Snapshot) > 0 {
		if err := e.drawSnapshot(pdf, opts.Snapshot); err != nil {
			return nil, err
		}
	}

	e.drawSummary(pdf, opts)

	reportProgress(opts.Progress, 90, "finalizing")

	if pdf.Err() {
		return nil, fmt.Errorf("compose pdf: %w", pdf.Error())
	}
	return pdf, nil
}

// drawHeader 品牌页眉色带
func (e *Exporter) drawHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(17, 24, 39)
	pdf.Rect(0, 0, 210, 26, "F")

	pdf.SetXY(10, 6)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 9, e.branding.BrandName, "", 1, "L", false, 0, "")

	pdf.SetX(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(209, 213, 219)
	pdf.CellFormat(0, 6, e.branding.Tagline, "", 1, "L", false, 0, "")

	pdf.SetY(32)
}

// drawTitle 标题与生成时间
func (e *Exporter) drawTitle(pdf *fpdf.Fpdf, generatedAt time.Time) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 9, ReportTitle, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "Generated "+generatedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

// drawSnapshot 嵌入结果面板截图（等比缩放到版心宽度）
func (e *Exporter) drawSnapshot(pdf *fpdf.Fpdf, snapshot []byte) error {
	const imageName = "results-panel"
	const contentWidth = 190.0

	pdf.RegisterImageOptionsReader(imageName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(snapshot))
	if pdf.Err() {
		return fmt.Errorf("embed results snapshot: %w", pdf.Error())
	}

	pdf.ImageOptions(imageName, 10, pdf.GetY(), contentWidth, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	if pdf.Err() {
		return fmt.Errorf("embed results snapshot: %w", pdf.Error())
	}
	pdf.Ln(6)
	return nil
}

// drawSummary 结果摘要表
func (e *Exporter) drawSummary(pdf *fpdf.Fpdf, opts ExportOptions) {
	ratioDisplay := util.DisplayUndefined
	dsiDisplay := util.DisplayUndefined
	ratioCategory := util.DisplayUndefined
	dsiCategory := util.DisplayUndefined
	if !opts.Result.Undefined {
		ratioDisplay = util.FormatRatio(opts.Result.TurnoverRatio) + " times / year"
		dsiDisplay = util.FormatDays(opts.Result.DSI) + " days"
		ratioCategory = opts.Result.RatioCategory
		dsiCategory = opts.Result.DSICategory
	}

	rows := [][2]string{
		{"Cost of Goods Sold", util.FormatCurrency(opts.Inputs.CostOfGoodsSold)},
		{"Effective Average Inventory", util.FormatCurrency(opts.Result.EffectiveAverageInventory)},
		{"Inventory Turnover Ratio", ratioDisplay},
		{"Turnover Assessment", ratioCategory},
		{"Days Sales of Inventory", dsiDisplay},
		{"Inventory Pace", dsiCategory},
		{"Industry Average Ratio", util.FormatRatio(calculator.IndustryAverageRatio)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(243, 244, 246)
		pdf.SetTextColor(55, 65, 81)
		pdf.CellFormat(80, 8, row[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(110, 8, row[1], "1", 1, "L", fill, 0, "")
	}
}
