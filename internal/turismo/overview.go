package turismo

import (
	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// RenderOverview computes the landing page metrics over the raw records
func RenderOverview(records []models.Record, source string) *models.OverviewView {
	values := make([]float64, len(records))
	geo := 0
	for i, r := range records {
		values[i] = r.Visitantes
		if r.HasGeo {
			geo++
		}
	}

	view := &models.OverviewView{
		Source:          source,
		TotalRecords:    len(records),
		GeoRecords:      geo,
		TotalVisitantes: stats.Sum(values),
		Departamentos:   DistinctRecords(records, models.FieldDepartamento),
		Destinos:        DistinctRecords(records, models.FieldDestino),
		Temporadas:      DistinctRecords(records, models.FieldTemporada),
	}
	view.DepartmentCount = len(view.Departamentos)
	view.DestinationCount = len(view.Destinos)
	view.SeasonCount = len(view.Temporadas)
	return view
}
