package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/spatial"
)

// rawRow yields the text of one cell by field.
type rawRow func(models.Field) string

// columnIndex maps every required field to its position in a header.
// Header cells are compared after trimming blanks and a UTF-8 BOM.
func columnIndex(source string, header []string) (map[models.Field]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	idx := make(map[models.Field]int, len(models.RequiredFields))
	for _, f := range models.RequiredFields {
		i, ok := pos[string(f)]
		if !ok {
			return nil, &DataFormatError{Source: source, Column: string(f), Reason: "missing column"}
		}
		idx[f] = i
	}
	return idx, nil
}

// buildRecords converts raw rows into records. It stops at the first bad row.
func buildRecords(source string, n int, row func(i int) rawRow) ([]models.Record, error) {
	records := make([]models.Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := parseRecord(source, i+1, row(i))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(source string, line int, cell rawRow) (models.Record, error) {
	rec := models.Record{
		Departamento: strings.TrimSpace(cell(models.FieldDepartamento)),
		Destino:      strings.TrimSpace(cell(models.FieldDestino)),
		Temporada:    strings.TrimSpace(cell(models.FieldTemporada)),
	}
	fail := func(f models.Field, reason string, err error) (models.Record, error) {
		return models.Record{}, &DataFormatError{Source: source, Row: line, Column: string(f), Reason: reason, Err: err}
	}

	for _, f := range []models.Field{models.FieldDepartamento, models.FieldDestino, models.FieldTemporada} {
		if rec.Dimension(f) == "" {
			return fail(f, "empty value", nil)
		}
	}

	raw := strings.TrimSpace(cell(models.FieldVisitantes))
	v, err := strconv.ParseFloat(raw, 64)
	switch {
	case err != nil:
		return fail(models.FieldVisitantes, "not a number: "+strconv.Quote(raw), nil)
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fail(models.FieldVisitantes, "not a finite number", nil)
	case v < 0:
		return fail(models.FieldVisitantes, "negative count", nil)
	}
	rec.Visitantes = v

	lat, latOK, err := parseCoordinate(cell(models.FieldLatitud))
	if err != nil {
		return fail(models.FieldLatitud, "not a number", err)
	}
	lon, lonOK, err := parseCoordinate(cell(models.FieldLongitud))
	if err != nil {
		return fail(models.FieldLongitud, "not a number", err)
	}
	if latOK && lonOK {
		if !spatial.ValidCoordinates(lat, lon) {
			return fail(models.FieldLatitud, "coordinates out of range", nil)
		}
		rec.Latitud, rec.Longitud, rec.HasGeo = lat, lon, true
	}
	return rec, nil
}

// parseCoordinate reads an optional coordinate. Blank and NaN cells are missing.
func parseCoordinate(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}
