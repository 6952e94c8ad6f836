package turismo

import (
	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// Summarize computes descriptive statistics over the Visitantes of rows.
// An empty input yields zeros, a nil StdDev and no leader. StdDev stays nil
// below two rows. The leader is the first row holding the maximum, and there
// is none when that maximum is zero.
func Summarize(rows []models.AggregateRow) models.Summary {
	s := models.Summary{Count: len(rows)}
	if len(rows) == 0 {
		return s
	}

	values := Values(rows)
	s.Mean = stats.Mean(values)
	s.Max = stats.Max(values)
	s.Min = stats.Min(values)
	s.Sum = stats.Sum(values)
	s.Median = stats.Median(values)

	if sd, err := stats.SampleStdDev(values); err == nil {
		s.StdDev = &sd
	}

	s.DepartmentCount = len(Distinct(rows, models.FieldDepartamento))
	s.DestinationCount = len(Distinct(rows, models.FieldDestino))
	s.SeasonCount = len(Distinct(rows, models.FieldTemporada))

	if i := stats.ArgMax(values); i >= 0 && values[i] > 0 {
		leader := rows[i]
		s.Leader = &leader
	}
	return s
}

// Values extracts the Visitantes column
func Values(rows []models.AggregateRow) []float64 {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Visitantes
	}
	return values
}
