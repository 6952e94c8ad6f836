package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE turismo (Visitantes REAL, Departamento TEXT, Destino TEXT, Temporada TEXT, Latitud REAL, Longitud REAL)`,
		`INSERT INTO turismo VALUES (1500, 'Magdalena', 'Playa', 'Alta', 11.24, -74.2)`,
		`INSERT INTO turismo VALUES (NULL, 'Meta', 'Selva', 'Baja', NULL, NULL)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	return db
}

func TestNewRecordRepositoryRejectsBadNames(t *testing.T) {
	db := openTestDB(t)
	for _, name := range []string{"", "1abc", `t"; DROP TABLE turismo; --`, "a b"} {
		if _, err := NewRecordRepository(db, name); !errors.Is(err, ErrInvalidTable) {
			t.Errorf("NewRecordRepository(%q) error = %v, want ErrInvalidTable", name, err)
		}
	}
}

func TestColumns(t *testing.T) {
	repo, err := NewRecordRepository(openTestDB(t), "turismo")
	if err != nil {
		t.Fatal(err)
	}
	cols, err := repo.Columns(context.Background())
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	if len(cols) != 6 || cols[0] != "Visitantes" {
		t.Errorf("Columns() = %v", cols)
	}

	missing, _ := NewRecordRepository(openTestDB(t), "nada")
	if _, err := missing.Columns(context.Background()); err == nil {
		t.Error("Columns() on a missing table succeeded")
	}
}

func TestLoadAll(t *testing.T) {
	repo, err := NewRecordRepository(openTestDB(t), "turismo")
	if err != nil {
		t.Fatal(err)
	}
	rows, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	tests := []struct {
		row   int
		field models.Field
		want  string
	}{
		{0, models.FieldDepartamento, "Magdalena"},
		{0, models.FieldVisitantes, "1500.0"},
		{0, models.FieldLatitud, "11.24"},
		{1, models.FieldVisitantes, ""},
		{1, models.FieldLongitud, ""},
	}
	for _, tt := range tests {
		if got := rows[tt.row].Value(tt.field); got != tt.want {
			t.Errorf("row %d %s = %q, want %q", tt.row, tt.field, got, tt.want)
		}
	}
}
