// Package xlsxsink writes all report tables of a run into one Excel workbook,
// one sheet per table.
package xlsxsink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"warehouse/internal/core/domain/model/report"

	"github.com/xuri/excelize/v2"
)

// Writer implements ports.ReportWriter. Workbooks are named report_<run>.xlsx.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the workbook path for a run.
func (w *Writer) Path(run string) string {
	return filepath.Join(w.dir, "report_"+run+".xlsx")
}

func (w *Writer) Write(ctx context.Context, run string, tables []report.Table) error {
	if len(tables) == 0 {
		return nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := addSheet(f, i, t); err != nil {
			return fmt.Errorf("sheet %s: %w", t.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(w.Path(run)); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, index int, t report.Table) error {
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(t.Name); err != nil {
		return err
	}

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
