package exporter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockturn/internal/calculator"
	"stockturn/internal/config"
)

func testBranding() config.ExportConfig {
	return config.DefaultConfig().Export
}

func testOptions() ExportOptions {
	inputs := calculator.Inputs{
		CostOfGoodsSold:    1000000,
		BeginningInventory: 250000,
		EndingInventory:    150000,
	}
	return ExportOptions{
		Mode:        calculator.ModeCOGSAverage,
		Inputs:      inputs,
		Result:      calculator.Compute(calculator.ModeCOGSAverage, inputs),
		GeneratedAt: time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
	}
}

// 生成一张小 PNG 作为结果面板截图
func testSnapshotPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.RGBA{R: 60, G: 130, B: 246, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestExportPDF_WithSnapshot(t *testing.T) {
	t.Parallel()

	exp := NewExporter(testBranding())
	opts := testOptions()
	opts.Snapshot = testSnapshotPNG(t)

	var stages []string
	opts.Progress = func(p ProgressEvent) {
		stages = append(stages, p.Stage)
	}

	pdf, err := exp.ExportPDF(opts)
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), PDFFileName)
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf, %d bytes", len(data))
	}
	if len(stages) == 0 {
		t.Fatalf("expected progress events")
	}
}

func TestExportPDF_WithoutSnapshot(t *testing.T) {
	t.Parallel()

	exp := NewExporter(testBranding())
	pdf, err := exp.ExportPDF(testOptions())
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

// 无法解码的截图是该次导出的终态错误
func TestExportPDF_BadSnapshotFails(t *testing.T) {
	t.Parallel()

	exp := NewExporter(testBranding())
	opts := testOptions()
	opts.Snapshot = []byte("definitely not a png")

	if _, err := exp.ExportPDF(opts); err == nil {
		t.Fatalf("expected decode error for invalid snapshot")
	}
}

func TestExportPDF_UndefinedResult(t *testing.T) {
	t.Parallel()

	inputs := calculator.Inputs{CostOfGoodsSold: 500000}
	opts := ExportOptions{
		Mode:   calculator.ModeCOGSAverage,
		Inputs: inputs,
		Result: calculator.Compute(calculator.ModeCOGSAverage, inputs),
	}

	exp := NewExporter(testBranding())
	pdf, err := exp.ExportPDF(opts)
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	exp := NewExporter(testBranding())
	f, err := exp.ExportXLSX(testOptions())
	if err != nil {
		t.Fatalf("export xlsx: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	ratio, err := f.GetCellValue(reportSheet, "B11")
	if err != nil {
		t.Fatalf("read ratio cell: %v", err)
	}
	if ratio != "5.00" {
		t.Fatalf("ratio cell want=5.00 got=%q", ratio)
	}

	dsi, err := f.GetCellValue(reportSheet, "B13")
	if err != nil {
		t.Fatalf("read dsi cell: %v", err)
	}
	if dsi != "73" {
		t.Fatalf("dsi cell want=73 got=%q", dsi)
	}

	// 基准表跟在第 16 行表头之后
	firstIndustry, err := f.GetCellValue(reportSheet, "A17")
	if err != nil {
		t.Fatalf("read benchmark cell: %v", err)
	}
	if firstIndustry != "Apparel" {
		t.Fatalf("benchmark row want=Apparel got=%q", firstIndustry)
	}
}
