// Package export serializes dashboard and map row sets for download.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// ErrUnknownFormat is returned by ParseFormat for anything but csv or xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is a download file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat reads a format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns base with the format's extension.
func (f Format) Filename(base string) string {
	return base + "." + string(f)
}

// Table is a row set with the columns to write, in order.
type Table struct {
	Sheet   string
	Columns []models.Field
	Rows    []models.AggregateRow
}

var (
	dashboardColumns = []models.Field{models.FieldDepartamento, models.FieldDestino, models.FieldTemporada, models.FieldVisitantes}
	mapColumns       = models.RequiredFields
)

// DashboardTable exports reconciled dashboard rows without coordinates.
func DashboardTable(rows []models.ReconciledRow) Table {
	return Table{Sheet: "Dashboard", Columns: dashboardColumns, Rows: models.AggregateRows(rows)}
}

// MapTable exports marker rows with their coordinates.
func MapTable(rows []models.AggregateRow) Table {
	return Table{Sheet: "Mapa", Columns: mapColumns, Rows: rows}
}

// Write serializes t to w in the given format.
func Write(w io.Writer, t Table, f Format) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, t)
	case FormatXLSX:
		return writeXLSX(w, t)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// cell renders one field of a row as text. Coordinates are blank when absent.
func cell(row models.AggregateRow, f models.Field) string {
	switch f {
	case models.FieldVisitantes:
		return strconv.FormatFloat(row.Visitantes, 'f', -1, 64)
	case models.FieldLatitud:
		if !row.HasGeo {
			return ""
		}
		return strconv.FormatFloat(row.Latitud, 'f', -1, 64)
	case models.FieldLongitud:
		if !row.HasGeo {
			return ""
		}
		return strconv.FormatFloat(row.Longitud, 'f', -1, 64)
	}
	return row.Dimension(f)
}

func writeCSV(w io.Writer, t Table) error {
	cols := make([]series.Series, len(t.Columns))
	for i, f := range t.Columns {
		values := make([]string, len(t.Rows))
		for j, row := range t.Rows {
			values[j] = cell(row, f)
		}
		cols[i] = series.New(values, series.String, string(f))
	}

	if len(t.Rows) == 0 {
		// gota cannot hold a zero-row frame; write the header alone.
		names := make([]string, len(t.Columns))
		for i, f := range t.Columns {
			names[i] = string(f)
		}
		_, err := io.WriteString(w, strings.Join(names, ",")+"\n")
		return err
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return fmt.Errorf("failed to build export frame: %w", df.Err)
	}
	return df.WriteCSV(w)
}

func writeXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for i, col := range t.Columns {
		c, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, c, string(col)); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for i, col := range t.Columns {
			c, _ := excelize.CoordinatesToCellName(i+1, r+2)
			var v interface{}
			switch col {
			case models.FieldVisitantes:
				v = row.Visitantes
			case models.FieldLatitud, models.FieldLongitud:
				if !row.HasGeo {
					continue
				}
				if col == models.FieldLatitud {
					v = row.Latitud
				} else {
					v = row.Longitud
				}
			default:
				v = row.Dimension(col)
			}
			if err := f.SetCellValue(sheet, c, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
