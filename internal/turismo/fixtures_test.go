package turismo

import "github.com/jengzang/turismo-backend-go/internal/models"

func rec(dep, dest, temp string, visitantes float64) models.Record {
	return models.Record{Departamento: dep, Destino: dest, Temporada: temp, Visitantes: visitantes}
}

func geoRec(dep, dest, temp string, visitantes, lat, lon float64) models.Record {
	r := rec(dep, dest, temp, visitantes)
	r.Latitud, r.Longitud, r.HasGeo = lat, lon, true
	return r
}

// sampleRecords is a small dataset covering every view:
// two Bolívar/Playa/Alta observations at one site, two Antioquia/Montaña/Alta
// sites, and one Amazonas record without coordinates.
func sampleRecords() []models.Record {
	return []models.Record{
		geoRec("Bolívar", "Playa", "Alta", 1000, 10.39, -75.48),
		geoRec("Bolívar", "Playa", "Alta", 3000, 10.39, -75.48),
		geoRec("Bolívar", "Playa", "Media", 500, 10.39, -75.48),
		geoRec("Antioquia", "Montaña", "Alta", 800, 6.25, -75.56),
		geoRec("Antioquia", "Ciudad", "Baja", 1200, 6.25, -75.56),
		geoRec("Antioquia", "Montaña", "Alta", 400, 6.10, -75.40),
		rec("Amazonas", "Selva", "Alta", 300),
	}
}
