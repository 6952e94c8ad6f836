package turismo

import (
	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// Reconcile restricts rows to the filter and left-joins the result from the
// Destino universe so every universe value appears exactly once, in universe
// order. Values without matching rows are zero-filled and carry the filter's
// selected Departamento/Temporada, or models.AllValues for an open dimension.
// Several rows matching one Destino (possible when a filter dimension is open)
// are collapsed into their record-weighted mean.
func Reconcile(rows []models.AggregateRow, filter models.FilterSelection, universe []string) []models.ReconciledRow {
	byDestino := make(map[string][]models.AggregateRow)
	for _, r := range rows {
		if !filter.Matches(r) {
			continue
		}
		byDestino[r.Destino] = append(byDestino[r.Destino], r)
	}

	seen := make(map[string]bool, len(universe))
	out := make([]models.ReconciledRow, 0, len(universe))
	for _, destino := range universe {
		if seen[destino] {
			continue
		}
		seen[destino] = true

		matched := byDestino[destino]
		switch len(matched) {
		case 0:
			out = append(out, models.ReconciledRow{
				AggregateRow: models.AggregateRow{
					Departamento: orAll(filter.Departamento),
					Destino:      destino,
					Temporada:    orAll(filter.Temporada),
				},
				Filled: true,
			})
		case 1:
			out = append(out, models.ReconciledRow{AggregateRow: complete(matched[0], filter)})
		default:
			out = append(out, models.ReconciledRow{AggregateRow: merge(destino, filter, matched)})
		}
	}
	return out
}

// complete fills dimensions the aggregate did not group by
func complete(r models.AggregateRow, filter models.FilterSelection) models.AggregateRow {
	if r.Departamento == "" {
		r.Departamento = orAll(filter.Departamento)
	}
	if r.Temporada == "" {
		r.Temporada = orAll(filter.Temporada)
	}
	return r
}

func merge(destino string, filter models.FilterSelection, matched []models.AggregateRow) models.AggregateRow {
	row := models.AggregateRow{
		Departamento: sharedOrAll(matched, models.FieldDepartamento, filter.Departamento),
		Destino:      destino,
		Temporada:    sharedOrAll(matched, models.FieldTemporada, filter.Temporada),
	}

	values := make([]float64, len(matched))
	weights := make([]float64, len(matched))
	for i, m := range matched {
		values[i] = m.Visitantes
		weights[i] = float64(m.Count)
		row.Count += m.Count
	}
	if row.Count > 0 {
		row.Visitantes = stats.WeightedMean(values, weights)
	}
	return row
}

// sharedOrAll returns the value every matched row agrees on, the filter value
// when set, or models.AllValues
func sharedOrAll(matched []models.AggregateRow, f models.Field, selected string) string {
	if selected != "" {
		return selected
	}

	v := matched[0].Dimension(f)
	for _, m := range matched[1:] {
		if m.Dimension(f) != v {
			return models.AllValues
		}
	}
	return orAll(v)
}

func orAll(v string) string {
	if v == "" {
		return models.AllValues
	}
	return v
}
