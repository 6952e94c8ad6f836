package models

// Field names a column of the tourism dataset
type Field string

const (
	FieldDepartamento Field = "Departamento"
	FieldDestino      Field = "Destino"
	FieldTemporada    Field = "Temporada"
	FieldVisitantes   Field = "Visitantes"
	FieldLatitud      Field = "Latitud"
	FieldLongitud     Field = "Longitud"
)

// RequiredFields lists the columns every dataset source must carry, in export order
var RequiredFields = []Field{
	FieldDepartamento,
	FieldDestino,
	FieldTemporada,
	FieldVisitantes,
	FieldLatitud,
	FieldLongitud,
}

// Temporada values
const (
	TemporadaAlta  = "Alta"
	TemporadaMedia = "Media"
	TemporadaBaja  = "Baja"
)

// AllValues marks a dimension left open by the current filter
const AllValues = "Todos"

// Record represents one observation of the dataset
type Record struct {
	Departamento string  `json:"departamento" db:"Departamento"`
	Destino      string  `json:"destino" db:"Destino"`     // Montaña, Playa, Ciudad, Selva...
	Temporada    string  `json:"temporada" db:"Temporada"` // Alta, Media, Baja
	Visitantes   float64 `json:"visitantes" db:"Visitantes"`
	Latitud      float64 `json:"latitud,omitempty" db:"Latitud"`
	Longitud     float64 `json:"longitud,omitempty" db:"Longitud"`
	HasGeo       bool    `json:"-"` // Latitud/Longitud present in the source
}

// Dimension returns the categorical value of the record for a field
func (r Record) Dimension(f Field) string {
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
