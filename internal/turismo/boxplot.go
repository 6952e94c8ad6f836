package turismo

import (
	"fmt"
	"sort"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// RenderBoxplot computes, for one season, the distribution of department
// means per destination. Each point of a box is one department.
func RenderBoxplot(records []models.Record, temporada string) (*models.BoxplotView, error) {
	temporadas := DistinctRecords(records, models.FieldTemporada)
	selected, err := pick(models.FieldTemporada, temporada, temporadas)
	if err != nil {
		return nil, err
	}

	season := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.Temporada == selected {
			season = append(season, r)
		}
	}

	grouped, err := Aggregate(season, BoxplotKeys...)
	if err != nil {
		return nil, fmt.Errorf("aggregate boxplot rows: %w", err)
	}

	byDestino := make(map[string][]models.AggregateRow)
	for _, r := range grouped {
		byDestino[r.Destino] = append(byDestino[r.Destino], r)
	}
	destinos := Distinct(grouped, models.FieldDestino)
	sort.Strings(destinos)

	boxes := make([]models.Box, 0, len(destinos))
	for _, d := range destinos {
		boxes = append(boxes, buildBox(d, byDestino[d]))
	}

	return &models.BoxplotView{
		Title:      fmt.Sprintf("Distribución de Visitantes por Destino - Temporada %s", selected),
		Caption:    fmt.Sprintf("Muestra la distribución de visitantes entre diferentes destinos en temporada %s, cada punto representa un departamento específico", selected),
		Temporada:  selected,
		Temporadas: temporadas,
		Boxes:      boxes,
	}, nil
}

func buildBox(destino string, rows []models.AggregateRow) models.Box {
	values := Values(rows)
	min, q1, median, q3, max := stats.FiveNumberSummary(values)
	low, high := stats.Whiskers(values)

	points := make([]models.BoxPoint, len(rows))
	for i, r := range rows {
		points[i] = models.BoxPoint{Departamento: r.Departamento, Visitantes: r.Visitantes}
	}

	return models.Box{
		Destino:      destino,
		Min:          min,
		Q1:           q1,
		Median:       median,
		Q3:           q3,
		Max:          max,
		Mean:         stats.Mean(values),
		LowerWhisker: low,
		UpperWhisker: high,
		Points:       points,
	}
}
