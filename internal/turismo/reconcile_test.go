package turismo

import (
	"encoding/json"
	"testing"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

func TestReconcileFillsMissingDestino(t *testing.T) {
	records := []models.Record{
		rec("Bolívar", "Playa", "Alta", 1000),
		rec("Bolívar", "Playa", "Alta", 2000),
		rec("Antioquia", "Montaña", "Alta", 800),
	}
	rows, err := Aggregate(records, DashboardKeys...)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	filter := models.FilterSelection{Departamento: "Bolívar", Temporada: "Alta"}
	got := Reconcile(rows, filter, []string{"Playa", "Montaña"})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}

	playa := got[0]
	if playa.Destino != "Playa" || playa.Visitantes != 1500 || playa.Filled {
		t.Errorf("Playa row = %+v, want mean 1500 unfilled", playa)
	}

	montana := got[1]
	if montana.Destino != "Montaña" || montana.Visitantes != 0 || !montana.Filled {
		t.Errorf("Montaña row = %+v, want zero-filled", montana)
	}
	if montana.Departamento != "Bolívar" || montana.Temporada != "Alta" {
		t.Errorf("Montaña row carries %s/%s, want Bolívar/Alta", montana.Departamento, montana.Temporada)
	}
}

func TestReconcileSizeMatchesUniverse(t *testing.T) {
	rows, err := Aggregate(sampleRecords(), DashboardKeys...)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	universe := Distinct(rows, models.FieldDestino)

	filters := []models.FilterSelection{
		{},
		{Departamento: "Bolívar", Temporada: "Alta"},
		{Departamento: "Bolívar"},
		{Temporada: "Baja"},
		{Departamento: "Vaupés", Temporada: "Alta"},
		{Departamento: "Amazonas", Temporada: "Media"},
	}

	for _, f := range filters {
		got := Reconcile(rows, f, universe)
		if len(got) != len(universe) {
			t.Errorf("filter %+v: len = %d, want %d", f, len(got), len(universe))
		}

		seen := make(map[string]bool)
		for i, r := range got {
			if r.Destino != universe[i] {
				t.Errorf("filter %+v: row %d destino = %q, want %q", f, i, r.Destino, universe[i])
			}
			if seen[r.Destino] {
				t.Errorf("filter %+v: duplicate destino %q", f, r.Destino)
			}
			seen[r.Destino] = true
			if r.Departamento == "" || r.Temporada == "" {
				t.Errorf("filter %+v: row %+v has an empty field", f, r)
			}
		}
	}
}

func TestReconcileOpenDimensionMerges(t *testing.T) {
	records := []models.Record{
		rec("Bolívar", "Playa", "Alta", 1000),
		rec("Bolívar", "Playa", "Alta", 3000),
		rec("Magdalena", "Playa", "Alta", 500),
	}
	rows, err := Aggregate(records, DashboardKeys...)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	got := Reconcile(rows, models.FilterSelection{Temporada: "Alta"}, []string{"Playa", "Selva"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	playa := got[0]
	// Mean of the three underlying records, not of the two department means
	if playa.Visitantes != 1500 {
		t.Errorf("Playa visitantes = %v, want 1500", playa.Visitantes)
	}
	if playa.Count != 3 {
		t.Errorf("Playa count = %d, want 3", playa.Count)
	}
	if playa.Departamento != models.AllValues || playa.Temporada != "Alta" {
		t.Errorf("Playa carries %s/%s, want %s/Alta", playa.Departamento, playa.Temporada, models.AllValues)
	}

	selva := got[1]
	if selva.Departamento != models.AllValues || !selva.Filled {
		t.Errorf("Selva row = %+v, want filled with %s", selva, models.AllValues)
	}
}

func TestReconcileDuplicateUniverseValues(t *testing.T) {
	got := Reconcile(nil, models.FilterSelection{Departamento: "Bolívar", Temporada: "Alta"}, []string{"Playa", "Playa", "Selva"})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 distinct destinos", len(got))
	}
}

func TestReconcileIdempotent(t *testing.T) {
	filter := models.FilterSelection{Departamento: "Antioquia", Temporada: "Alta"}

	run := func() []byte {
		rows, err := Aggregate(sampleRecords(), DashboardKeys...)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		b, err := json.Marshal(Reconcile(rows, filter, Distinct(rows, models.FieldDestino)))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	first, second := run(), run()
	if string(first) != string(second) {
		t.Errorf("outputs differ:\n%s\n%s", first, second)
	}
}
