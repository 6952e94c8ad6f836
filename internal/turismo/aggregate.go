// Package turismo implements the filtering and aggregation pipeline behind the
// dashboard and map views: grouping records into mean rows, reconciling a
// filtered result against the full Destino universe, summarizing row sets and
// scaling map markers. Every function here is pure and safe to call from
// concurrent requests as long as callers do not mutate the records they pass.
package turismo

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// ErrInvalidGroupKey is returned when a grouping key is not a groupable field
var ErrInvalidGroupKey = errors.New("invalid group key")

// Grouping keys used by the views
var (
	DashboardKeys = []models.Field{models.FieldDepartamento, models.FieldDestino, models.FieldTemporada}
	MapKeys       = []models.Field{models.FieldDepartamento, models.FieldDestino, models.FieldTemporada, models.FieldLatitud, models.FieldLongitud}
	BoxplotKeys   = []models.Field{models.FieldDepartamento, models.FieldDestino}
)

// rowColumn carries the source index of each record through gota's grouping
const rowColumn = "_row"

// Aggregate groups records by equality of every key field and returns one row
// per key tuple holding the arithmetic mean of Visitantes. Grouping by Latitud
// or Longitud drops records without coordinates. Rows are sorted by key tuple.
func Aggregate(records []models.Record, keys ...models.Field) ([]models.AggregateRow, error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}

	src := records
	if groupsByGeo(keys) {
		src = geoRecords(records)
	}
	if len(src) == 0 {
		return []models.AggregateRow{}, nil
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}

	groups := keyFrame(src, keys).GroupBy(names...)
	if groups == nil {
		return nil, fmt.Errorf("group records: no grouping produced")
	}
	if groups.Err != nil {
		return nil, fmt.Errorf("group records: %w", groups.Err)
	}

	byKey := groups.GetGroups()
	rows := make([]models.AggregateRow, 0, len(byKey))
	for _, g := range byKey {
		idx, err := g.Col(rowColumn).Int()
		if err != nil {
			return nil, fmt.Errorf("read group row indexes: %w", err)
		}
		rows = append(rows, collapse(src, idx, keys))
	}

	SortRows(rows)
	return rows, nil
}

// SortRows orders aggregate rows by their key tuple
func SortRows(rows []models.AggregateRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Departamento != b.Departamento {
			return a.Departamento < b.Departamento
		}
		if a.Destino != b.Destino {
			return a.Destino < b.Destino
		}
		if a.Temporada != b.Temporada {
			return a.Temporada < b.Temporada
		}
		if a.Latitud != b.Latitud {
			return a.Latitud < b.Latitud
		}
		return a.Longitud < b.Longitud
	})
}

func validateKeys(keys []models.Field) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: no keys given", ErrInvalidGroupKey)
	}

	seen := make(map[models.Field]bool, len(keys))
	for _, k := range keys {
		switch k {
		case models.FieldDepartamento, models.FieldDestino, models.FieldTemporada,
			models.FieldLatitud, models.FieldLongitud:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidGroupKey, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: %q repeated", ErrInvalidGroupKey, k)
		}
		seen[k] = true
	}
	return nil
}

func groupsByGeo(keys []models.Field) bool {
	for _, k := range keys {
		if k == models.FieldLatitud || k == models.FieldLongitud {
			return true
		}
	}
	return false
}

func geoRecords(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.HasGeo {
			out = append(out, r)
		}
	}
	return out
}

// keyFrame builds a frame with one string column per key plus the row index.
// Values are quoted so gota's "_" key separator cannot make two tuples collide,
// and coordinates are formatted exactly so equal floats land in the same group.
func keyFrame(records []models.Record, keys []models.Field) dataframe.DataFrame {
	cols := make([]series.Series, 0, len(keys)+1)
	for _, k := range keys {
		values := make([]string, len(records))
		for i, r := range records {
			values[i] = strconv.Quote(keyValue(r, k))
		}
		cols = append(cols, series.New(values, series.String, string(k)))
	}

	idx := make([]int, len(records))
	for i := range records {
		idx[i] = i
	}
	cols = append(cols, series.New(idx, series.Int, rowColumn))

	return dataframe.New(cols...)
}

func keyValue(r models.Record, k models.Field) string {
	switch k {
	case models.FieldLatitud:
		return strconv.FormatFloat(r.Latitud, 'g', -1, 64)
	case models.FieldLongitud:
		return strconv.FormatFloat(r.Longitud, 'g', -1, 64)
	}
	return r.Dimension(k)
}

// collapse turns the records of one group into its aggregate row
func collapse(records []models.Record, idx []int, keys []models.Field) models.AggregateRow {
	values := make([]float64, len(idx))
	for i, j := range idx {
		values[i] = records[j].Visitantes
	}

	first := records[idx[0]]
	row := models.AggregateRow{
		Visitantes: stats.Mean(values),
		Count:      len(idx),
	}
	for _, k := range keys {
		switch k {
		case models.FieldDepartamento:
			row.Departamento = first.Departamento
		case models.FieldDestino:
			row.Destino = first.Destino
		case models.FieldTemporada:
			row.Temporada = first.Temporada
		case models.FieldLatitud:
			row.Latitud = first.Latitud
			row.HasGeo = true
		case models.FieldLongitud:
			row.Longitud = first.Longitud
			row.HasGeo = true
		}
	}
	return row
}

// Distinct returns the distinct non-empty values of a field in first-seen order
func Distinct(rows []models.AggregateRow, f models.Field) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range rows {
		v := r.Dimension(f)
		if v == "" || v == models.AllValues || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// DistinctRecords returns the distinct non-empty values of a field over raw records
func DistinctRecords(records []models.Record, f models.Field) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		v := r.Dimension(f)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
