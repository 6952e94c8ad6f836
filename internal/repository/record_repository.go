package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// ErrInvalidTable is returned when a table name is not a plain identifier.
var ErrInvalidTable = errors.New("invalid table name")

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RecordRow is one raw row of the tourism table. Every column is read as
// text so the caller can report parse failures per row and column.
type RecordRow struct {
	Departamento sql.NullString
	Destino      sql.NullString
	Temporada    sql.NullString
	Visitantes   sql.NullString
	Latitud      sql.NullString
	Longitud     sql.NullString
}

// Value returns the raw text of a field, "" when NULL.
func (r RecordRow) Value(f models.Field) string {
	var v sql.NullString
	switch f {
	case models.FieldDepartamento:
		v = r.Departamento
	case models.FieldDestino:
		v = r.Destino
	case models.FieldTemporada:
		v = r.Temporada
	case models.FieldVisitantes:
		v = r.Visitantes
	case models.FieldLatitud:
		v = r.Latitud
	case models.FieldLongitud:
		v = r.Longitud
	}
	if !v.Valid {
		return ""
	}
	return v.String
}

// RecordRepository reads tourism records from a SQLite table
type RecordRepository struct {
	db    *sql.DB
	table string
}

// NewRecordRepository creates a repository bound to one table
func NewRecordRepository(db *sql.DB, table string) (*RecordRepository, error) {
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return &RecordRepository{db: db, table: table}, nil
}

// Columns lists the column names of the table in declaration order.
func (r *RecordRepository) Columns(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info("%s")`, r.table))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", r.table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("table %s does not exist", r.table)
	}
	return names, nil
}

// LoadAll returns every row of the table in rowid order.
func (r *RecordRepository) LoadAll(ctx context.Context) ([]RecordRow, error) {
	cols := make([]string, len(models.RequiredFields))
	for i, f := range models.RequiredFields {
		cols[i] = fmt.Sprintf(`CAST("%s" AS TEXT)`, f)
	}
	query := fmt.Sprintf(`SELECT %s FROM "%s" ORDER BY rowid`, strings.Join(cols, ", "), r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var row RecordRow
		if err := rows.Scan(
			&row.Departamento, &row.Destino, &row.Temporada,
			&row.Visitantes, &row.Latitud, &row.Longitud,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(out)+1, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.table, err)
	}
	return out, nil
}
