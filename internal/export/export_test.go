package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

func dashboardRows() []models.ReconciledRow {
	return []models.ReconciledRow{
		{AggregateRow: models.AggregateRow{Departamento: "Bolívar", Destino: "Playa", Temporada: "Alta", Visitantes: 1200.5, Count: 2}},
		{AggregateRow: models.AggregateRow{Departamento: "Bolívar", Destino: "Selva", Temporada: "Alta"}, Filled: true},
	}
}

func mapRows() []models.AggregateRow {
	return []models.AggregateRow{
		{Departamento: "Antioquia", Destino: "Montaña", Temporada: "Alta", Latitud: 6.25, Longitud: -75.56, HasGeo: true, Visitantes: 800, Count: 1},
		{Departamento: "Amazonas", Destino: "Montaña", Temporada: "Alta", Visitantes: 100, Count: 1},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{" XLSX ", FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  string
	}{
		{
			name:  "dashboard",
			table: DashboardTable(dashboardRows()),
			want: "Departamento,Destino,Temporada,Visitantes\n" +
				"Bolívar,Playa,Alta,1200.5\n" +
				"Bolívar,Selva,Alta,0\n",
		},
		{
			name:  "map",
			table: MapTable(mapRows()),
			want: "Departamento,Destino,Temporada,Visitantes,Latitud,Longitud\n" +
				"Antioquia,Montaña,Alta,800,6.25,-75.56\n" +
				"Amazonas,Montaña,Alta,100,,\n",
		},
		{
			name:  "empty",
			table: MapTable(nil),
			want:  "Departamento,Destino,Temporada,Visitantes,Latitud,Longitud\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.table, FormatCSV); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, MapTable(mapRows()), FormatXLSX); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Mapa")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][5] != "Longitud" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Antioquia" || rows[1][3] != "800" || rows[1][4] != "6.25" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if len(rows[2]) != 4 {
		t.Errorf("row without coordinates = %v, want 4 cells", rows[2])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, MapTable(nil), Format("pdf")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write() error = %v, want ErrUnknownFormat", err)
	}
}
