package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter implements SheetWriter by saving an .xlsx workbook.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates an XLSXWriter that saves to path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write builds one worksheet per statement table and saves the workbook.
func (w *XLSXWriter) Write(_ context.Context, st Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, tbl := range st.Tables() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tbl.Name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(tbl.Name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", tbl.Name, err)
		}

		if err := writeTable(f, tbl); err != nil {
			return err
		}
		if err := f.SetRowStyle(tbl.Name, 1, 1, header); err != nil {
			return fmt.Errorf("styling %s header: %w", tbl.Name, err)
		}
		if err := f.SetPanes(tbl.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("freezing %s header: %w", tbl.Name, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving %s: %w", w.path, err)
	}
	return nil
}

func writeTable(f *excelize.File, tbl Table) error {
	for r, row := range tbl.Rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			// Numbers go in as their exact decimal literal.
			if cell.Numeric {
				err = f.SetCellDefault(tbl.Name, name, cell.Number.String())
			} else {
				err = f.SetCellStr(tbl.Name, name, cell.Text)
			}
			if err != nil {
				return fmt.Errorf("writing %s!%s: %w", tbl.Name, name, err)
			}
		}
	}
	return nil
}
