package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// XLSXService produces XLSX bytes for catalog exports.
type XLSXService struct {
	sheet  string
	logger *slog.Logger
}

func NewXLSXService(sheet string, logger *slog.Logger) *XLSXService {
	if sheet == "" {
		sheet = "Catalog"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXService{sheet: sheet, logger: logger}
}

// ExportXLSX returns a workbook (as bytes) with one row per record in the
// shared Header column order.
func (s *XLSXService) ExportXLSX(records []entity.CatalogRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(s.sheet); index == -1 {
		if _, err := f.NewSheet(s.sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(s.sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(s.sheet, cell, h)
	}

	for i := range records {
		rowIdx := i + 2
		for col, v := range Row(&records[i]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			_ = f.SetCellValue(s.sheet, cell, v)
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(s.sheet, "A", "A", 28) // source_file
	_ = f.SetColWidth(s.sheet, "C", "C", 60) // raw_text
	_ = f.SetColWidth(s.sheet, "D", "K", 24) // catalog fields

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"records", len(records),
		"bytes", buf.Len(),
		"took", time.Since(start).String(),
	)
	return buf.Bytes(), nil
}
