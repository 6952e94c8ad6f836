package dataset

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

const header = "Departamento,Destino,Temporada,Visitantes,Latitud,Longitud\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "turismo.csv", "\ufeff"+header+
		"Bolívar,Playa,Alta,1200,10.39,-75.51\n"+
		"Antioquia,Montaña,Media, 800 ,,\n"+
		"Amazonas,Selva,Baja,300,NaN,NaN\n")

	ds, err := Load(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}

	got := ds.Records()
	want := []models.Record{
		{Departamento: "Bolívar", Destino: "Playa", Temporada: "Alta", Visitantes: 1200, Latitud: 10.39, Longitud: -75.51, HasGeo: true},
		{Departamento: "Antioquia", Destino: "Montaña", Temporada: "Media", Visitantes: 800},
		{Departamento: "Amazonas", Destino: "Selva", Temporada: "Baja", Visitantes: 300},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if ds.Source() != path {
		t.Errorf("Source() = %q, want %q", ds.Source(), path)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	ds := New("mem", []models.Record{{Departamento: "Bolívar", Visitantes: 1}})
	r := ds.Records()
	r[0].Visitantes = 99
	if ds.Records()[0].Visitantes != 1 {
		t.Error("mutating Records() result changed the dataset")
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		row    int
		column string
	}{
		{"missing column", "Departamento,Destino,Temporada,Latitud,Longitud\nBolívar,Playa,Alta,1,2\n", 0, "Visitantes"},
		{"non-numeric visitantes", header + "Bolívar,Playa,Alta,1200,10,-75\nBolívar,Playa,Baja,mucho,10,-75\n", 2, "Visitantes"},
		{"negative visitantes", header + "Bolívar,Playa,Alta,-5,10,-75\n", 1, "Visitantes"},
		{"missing visitantes", header + "Bolívar,Playa,Alta,NA,10,-75\n", 1, "Visitantes"},
		{"bad latitude", header + "Bolívar,Playa,Alta,5,norte,-75\n", 1, "Latitud"},
		{"latitude out of range", header + "Bolívar,Playa,Alta,5,95,-75\n", 1, "Latitud"},
		{"empty temporada", header + "Bolívar,Playa,,5,10,-75\n", 1, "Temporada"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.csv", tt.body)
			ds, err := Load(context.Background(), path, Options{})
			if ds != nil {
				t.Errorf("Load() returned a dataset alongside an error")
			}
			var fe *DataFormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Load() error = %v, want *DataFormatError", err)
			}
			if fe.Row != tt.row || fe.Column != tt.column {
				t.Errorf("error at row %d column %q, want row %d column %q", fe.Row, fe.Column, tt.row, tt.column)
			}
		})
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := writeFile(t, "turismo.json", "[]")
	if _, err := Load(context.Background(), path, Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Datos"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"Departamento", "Destino", "Temporada", "Visitantes", "Latitud", "Longitud"},
		{"Bolívar", "Playa", "Alta", 1200, 10.39, -75.51},
		{"Amazonas", "Selva", "Baja", 300},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "turismo.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(context.Background(), path, Options{Sheet: sheet})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := ds.Records()
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if !got[0].HasGeo || got[0].Latitud != 10.39 || got[0].Visitantes != 1200 {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].HasGeo || got[1].Visitantes != 300 {
		t.Errorf("record 1 = %+v", got[1])
	}

	if _, err := Load(context.Background(), path, Options{Sheet: "Nope"}); err == nil {
		t.Error("Load() with unknown sheet succeeded")
	}
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turismo.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	stmts := []string{
		`CREATE TABLE turismo_nacional (Departamento TEXT, Destino TEXT, Temporada TEXT, Visitantes REAL, Latitud REAL, Longitud REAL)`,
		`INSERT INTO turismo_nacional VALUES ('Bolívar', 'Playa', 'Alta', 1200, 10.39, -75.51)`,
		`INSERT INTO turismo_nacional VALUES ('Amazonas', 'Selva', 'Baja', 300, NULL, NULL)`,
		`CREATE TABLE otra (Departamento TEXT)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	db.Close()

	ds, err := Load(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := ds.Records()
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Visitantes != 1200 || got[0].Longitud != -75.51 || !got[0].HasGeo {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].HasGeo {
		t.Errorf("record 1 HasGeo = true, want false")
	}

	var fe *DataFormatError
	if _, err := Load(context.Background(), path, Options{Table: "otra"}); !errors.As(err, &fe) || fe.Column != "Destino" {
		t.Errorf("Load(otra) error = %v, want missing Destino column", err)
	}
	if _, err := Load(context.Background(), path, Options{Table: "x; DROP TABLE y"}); !errors.As(err, &fe) {
		t.Errorf("Load() with bad table name error = %v, want *DataFormatError", err)
	}
}
