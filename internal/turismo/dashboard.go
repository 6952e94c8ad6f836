package turismo

import (
	"fmt"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// DashboardOptions configures the dashboard render
type DashboardOptions struct {
	Stops []Color // Bar color ramp, BluesStops when empty
}

// RenderDashboard computes the dashboard view for one selection: global
// metrics over every aggregate row, then the Departamento/Temporada filter
// reconciled against all destinations with its own metrics and bar colors.
func RenderDashboard(records []models.Record, sel models.FilterSelection, opts DashboardOptions) (*models.DashboardView, error) {
	stops := opts.Stops
	if len(stops) == 0 {
		stops = BluesStops
	}

	grouped, err := Aggregate(records, DashboardKeys...)
	if err != nil {
		return nil, fmt.Errorf("aggregate dashboard rows: %w", err)
	}

	options := models.SelectorOptions{
		Departamentos: Distinct(grouped, models.FieldDepartamento),
		Destinos:      Distinct(grouped, models.FieldDestino),
		Temporadas:    Distinct(grouped, models.FieldTemporada),
	}

	departamento, err := pick(models.FieldDepartamento, sel.Departamento, options.Departamentos)
	if err != nil {
		return nil, err
	}
	temporada, err := pick(models.FieldTemporada, sel.Temporada, options.Temporadas)
	if err != nil {
		return nil, err
	}
	filter := models.FilterSelection{Departamento: departamento, Temporada: temporada}

	rows := Reconcile(grouped, filter, options.Destinos)
	plain := models.AggregateRows(rows)

	scale, err := NewColorScale(Values(plain), stops)
	if err != nil {
		return nil, err
	}

	bars := make([]models.Bar, len(rows))
	for i, r := range rows {
		bars[i] = models.Bar{
			Destino:    r.Destino,
			Visitantes: r.Visitantes,
			Label:      fmt.Sprintf("%.0f", r.Visitantes),
			Color:      scale.At(r.Visitantes).Hex(),
			Filled:     r.Filled,
		}
	}

	return &models.DashboardView{
		Title:     fmt.Sprintf("Visitantes en %s - %s", departamento, temporada),
		Caption:   "Muestra el número de visitantes por destino en el departamento y temporada seleccionados",
		Selection: filter,
		Options:   options,
		Overview:  Summarize(grouped),
		Filtered:  Summarize(plain),
		Bars:      bars,
		Rows:      rows,
		XTitle:    "Destinos",
		YTitle:    "Número de Visitantes",
	}, nil
}
