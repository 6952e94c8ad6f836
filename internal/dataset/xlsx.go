package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

func loadXLSX(path, sheet string) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &DataFormatError{Source: path, Reason: fmt.Sprintf("unreadable sheet %q", sheet), Err: err}
	}
	if len(rows) == 0 {
		return nil, &DataFormatError{Source: path, Reason: fmt.Sprintf("sheet %q is empty", sheet)}
	}

	// GetRows drops trailing empty cells; LoadRecords needs a rectangle.
	width := len(rows[0])
	for i, r := range rows {
		if len(r) < width {
			padded := make([]string, width)
			copy(padded, r)
			rows[i] = padded
		} else if len(r) > width {
			rows[i] = r[:width]
		}
	}

	df := dataframe.LoadRecords(rows, frameOptions()...)
	return fromFrame(path, df)
}
