// Package csvsink writes report tables as UTF-8 CSV files, one file per table
// named after it, inside a results directory.
package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"warehouse/internal/core/domain/model/report"

	"github.com/shopspring/decimal"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer implements ports.ReportWriter. Each run overwrites the previous files.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir is the directory the tables are written to.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) Write(ctx context.Context, _ string, tables []report.Table) error {
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeTable(t); err != nil {
			return fmt.Errorf("write table %s: %w", t.Name, err)
		}
	}
	return nil
}

func (w *Writer) writeTable(t report.Table) (err error) {
	f, err := os.OpenFile(filepath.Join(w.dir, t.Name+".csv"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = FormatCell(cell)
		}
		if err := cw.Write(record[:len(row)]); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatCell renders a cell value. Floats use the shortest decimal form
// without exponent, so 1728.75 stays 1728.75 and 100 becomes "100".
func FormatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return decimal.NewFromFloat(x).String()
	case fmt.Stringer:
		return x.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
