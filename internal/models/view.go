package models

// Summary holds descriptive statistics over the Visitantes column of a row set
type Summary struct {
	Count            int     `json:"count"`
	DepartmentCount  int     `json:"department_count"`
	DestinationCount int     `json:"destination_count"`
	SeasonCount      int     `json:"season_count"`
	Mean             float64 `json:"mean"`
	Max              float64 `json:"max"`
	Min              float64 `json:"min"`
	Sum              float64 `json:"sum"`
	Median           float64 `json:"median"`

	// StdDev is the sample standard deviation; nil when fewer than 2 rows
	StdDev *float64 `json:"std_dev"`

	// Leader is the row with the highest Visitantes; nil when there is no
	// row or every row is zero
	Leader *AggregateRow `json:"leader"`
}

// SelectorOptions lists the distinct values offered by each dropdown
type SelectorOptions struct {
	Departamentos []string `json:"departamentos,omitempty"`
	Destinos      []string `json:"destinos,omitempty"`
	Temporadas    []string `json:"temporadas,omitempty"`
}

// Bar is one bar of the visitors-by-destination chart
type Bar struct {
	Destino    string  `json:"destino"`
	Visitantes float64 `json:"visitantes"`
	Label      string  `json:"label"` // Rounded value shown above the bar
	Color      string  `json:"color"` // Hex color from the continuous scale
	Filled     bool    `json:"filled"`
}

// DashboardView is everything the dashboard page needs for one selection
type DashboardView struct {
	Title     string          `json:"title"`
	Caption   string          `json:"caption"`
	Selection FilterSelection `json:"selection"`
	Options   SelectorOptions `json:"options"`
	Overview  Summary         `json:"overview"` // Over every aggregate row
	Filtered  Summary         `json:"filtered"` // Over the reconciled rows
	Bars      []Bar           `json:"bars"`
	Rows      []ReconciledRow `json:"rows"`
	XTitle    string          `json:"x_title"`
	YTitle    string          `json:"y_title"`
}

// BoxPoint is one department mean inside a box
type BoxPoint struct {
	Departamento string  `json:"departamento"`
	Visitantes   float64 `json:"visitantes"`
}

// Box is the distribution of department means for one Destino
type Box struct {
	Destino string  `json:"destino"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`

	// Whiskers end at the most extreme points inside 1.5 IQR of the box
	LowerWhisker float64    `json:"lower_whisker"`
	UpperWhisker float64    `json:"upper_whisker"`
	Points       []BoxPoint `json:"points"`
}

// BoxplotView is the per-destination distribution for one season
type BoxplotView struct {
	Title      string   `json:"title"`
	Caption    string   `json:"caption"`
	Temporada  string   `json:"temporada"`
	Temporadas []string `json:"temporadas"`
	Boxes      []Box    `json:"boxes"`
}

// GeoPoint is a latitude/longitude pair in degrees
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoBounds is the bounding box of a set of markers
type GeoBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Marker is one proportional circle on the map
type Marker struct {
	Departamento string   `json:"departamento"`
	Destino      string   `json:"destino"`
	Temporada    string   `json:"temporada"`
	Location     GeoPoint `json:"location"`
	Visitantes   float64  `json:"visitantes"`
	Radius       float64  `json:"radius"`
	Color        string   `json:"color"`
	FillOpacity  float64  `json:"fill_opacity"`
	Popup        string   `json:"popup"`
	DistanceKm   float64  `json:"distance_km"` // Great-circle distance from the map center
}

// Legend describes the color scale drawn next to the map
type Legend struct {
	Caption string   `json:"caption"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Stops   []string `json:"stops"`
}

// MapView is everything the map page needs for one selection
type MapView struct {
	Title     string          `json:"title"`
	Caption   string          `json:"caption"`
	Selection FilterSelection `json:"selection"`
	Options   SelectorOptions `json:"options"`
	Center    GeoPoint        `json:"center"`
	Zoom      int             `json:"zoom"`
	Legend    Legend          `json:"legend"`
	Markers   []Marker        `json:"markers"`
	Centroid  *GeoPoint       `json:"centroid,omitempty"`
	Bounds    *GeoBounds      `json:"bounds,omitempty"`
	Rows      []AggregateRow  `json:"-"`
}

// OverviewView holds the landing page metrics
type OverviewView struct {
	Source           string   `json:"source"`
	TotalRecords     int      `json:"total_records"`
	GeoRecords       int      `json:"geo_records"`
	DepartmentCount  int      `json:"department_count"`
	DestinationCount int      `json:"destination_count"`
	SeasonCount      int      `json:"season_count"`
	TotalVisitantes  float64  `json:"total_visitantes"`
	Departamentos    []string `json:"departamentos"`
	Destinos         []string `json:"destinos"`
	Temporadas       []string `json:"temporadas"`
}
