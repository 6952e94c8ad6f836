package turismo

import (
	"fmt"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/spatial"
)

// DefaultCenter is Bogotá, where the map opens
var DefaultCenter = models.GeoPoint{Lat: 4.6097, Lon: -74.0818}

// MapOptions is the display configuration of the map view
type MapOptions struct {
	Radius  RadiusScale
	Stops   []Color // MarkerStops when empty
	Opacity float64
	Center  models.GeoPoint
	Zoom    int
}

// DefaultMapOptions mirrors the original map: divisor 500, no clamp,
// green-yellow-red legend, 0.7 fill opacity, zoom 5 over Bogotá
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Radius:  FixedRadius,
		Stops:   MarkerStops,
		Opacity: 0.7,
		Center:  DefaultCenter,
		Zoom:    5,
	}
}

// RenderMap computes the proportional-symbol map for one Destino/Temporada.
// Color bounds come from the filtered rows only, so every selection uses the
// full ramp.
func RenderMap(records []models.Record, sel models.FilterSelection, opts MapOptions) (*models.MapView, error) {
	stops := opts.Stops
	if len(stops) == 0 {
		stops = MarkerStops
	}
	if err := opts.Radius.Validate(); err != nil {
		return nil, err
	}

	grouped, err := Aggregate(records, MapKeys...)
	if err != nil {
		return nil, fmt.Errorf("aggregate map rows: %w", err)
	}

	options := models.SelectorOptions{
		Destinos:   Distinct(grouped, models.FieldDestino),
		Temporadas: Distinct(grouped, models.FieldTemporada),
	}

	destino, err := pick(models.FieldDestino, sel.Destino, options.Destinos)
	if err != nil {
		return nil, err
	}
	temporada, err := pick(models.FieldTemporada, sel.Temporada, options.Temporadas)
	if err != nil {
		return nil, err
	}
	filter := models.FilterSelection{Destino: destino, Temporada: temporada}

	var rows []models.AggregateRow
	for _, r := range grouped {
		if filter.Matches(r) {
			rows = append(rows, r)
		}
	}

	scale, err := NewColorScale(Values(rows), stops)
	if err != nil {
		return nil, err
	}

	markers := make([]models.Marker, len(rows))
	points := make([]spatial.Point, len(rows))
	center := spatial.Point{Lat: opts.Center.Lat, Lon: opts.Center.Lon}
	for i, r := range rows {
		points[i] = spatial.Point{Lat: r.Latitud, Lon: r.Longitud}
		markers[i] = models.Marker{
			Departamento: r.Departamento,
			Destino:      r.Destino,
			Temporada:    r.Temporada,
			Location:     models.GeoPoint{Lat: r.Latitud, Lon: r.Longitud},
			Visitantes:   r.Visitantes,
			Radius:       opts.Radius.Radius(r.Visitantes),
			Color:        scale.At(r.Visitantes).Hex(),
			FillOpacity:  opts.Opacity,
			Popup:        fmt.Sprintf("%s<br>Visitantes: %.0f", r.Departamento, r.Visitantes),
			DistanceKm:   spatial.DistanceKm(center, points[i]),
		}
	}

	view := &models.MapView{
		Title:     "Mapa Interactivo de Visitantes",
		Caption:   "Mapa de símbolos proporcionales con respecto al destino y temporada seleccionado",
		Selection: filter,
		Options:   options,
		Center:    opts.Center,
		Zoom:      opts.Zoom,
		Legend: models.Legend{
			Caption: fmt.Sprintf("Visitantes (%s - %s)", destino, temporada),
			Min:     scale.Min,
			Max:     scale.Max,
			Stops:   scale.HexStops(),
		},
		Markers: markers,
		Rows:    rows,
	}

	if len(points) > 0 {
		c := spatial.Centroid(points)
		view.Centroid = &models.GeoPoint{Lat: c.Lat, Lon: c.Lon}

		minLat, minLon, maxLat, maxLon := spatial.BoundingBox(points)
		view.Bounds = &models.GeoBounds{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}
	}

	return view, nil
}
