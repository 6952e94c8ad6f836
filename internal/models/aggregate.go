package models

// AggregateRow is the mean Visitantes of all records sharing one grouping key.
// Fields that are not part of the grouping key are left empty.
type AggregateRow struct {
	Departamento string  `json:"departamento,omitempty"`
	Destino      string  `json:"destino,omitempty"`
	Temporada    string  `json:"temporada,omitempty"`
	Latitud      float64 `json:"latitud,omitempty"`
	Longitud     float64 `json:"longitud,omitempty"`
	HasGeo       bool    `json:"-"`
	Visitantes   float64 `json:"visitantes"`
	Count        int     `json:"count"` // Number of source records in the group
}

// Dimension returns the categorical value of the row for a field
func (r AggregateRow) Dimension(f Field) string {
	switch f {
	case FieldDepartamento:
		return r.Departamento
	case FieldDestino:
		return r.Destino
	case FieldTemporada:
		return r.Temporada
	}
	return ""
}

// ReconciledRow is an aggregate row guaranteed to exist for one value of the
// reconciled dimension. Filled is true when no source data matched and the
// row was zero-filled.
type ReconciledRow struct {
	AggregateRow
	Filled bool `json:"filled"`
}

// AggregateRows strips the reconciliation flag from a reconciled set
func AggregateRows(rows []ReconciledRow) []AggregateRow {
	out := make([]AggregateRow, len(rows))
	for i, r := range rows {
		out[i] = r.AggregateRow
	}
	return out
}

// FilterSelection is the set of dimension values chosen for one render
type FilterSelection struct {
	Departamento string `form:"departamento" json:"departamento,omitempty"`
	Destino      string `form:"destino" json:"destino,omitempty"`
	Temporada    string `form:"temporada" json:"temporada,omitempty"`
}

// Get returns the selected value for a field, empty when the field is open
func (f FilterSelection) Get(field Field) string {
	switch field {
	case FieldDepartamento:
		return f.Departamento
	case FieldDestino:
		return f.Destino
	case FieldTemporada:
		return f.Temporada
	}
	return ""
}

// Matches reports whether a row satisfies every non-empty field of the filter
func (f FilterSelection) Matches(r AggregateRow) bool {
	if f.Departamento != "" && r.Departamento != f.Departamento {
		return false
	}
	if f.Destino != "" && r.Destino != f.Destino {
		return false
	}
	if f.Temporada != "" && r.Temporada != f.Temporada {
		return false
	}
	return true
}
