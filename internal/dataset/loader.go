package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// Options selects the sheet or table inside a workbook or database.
type Options struct {
	Sheet string // XLSX sheet, default first sheet
	Table string // SQLite table, default DefaultTable
}

// Load reads the dataset at path, choosing the loader by file extension.
// Any malformed row fails the whole load.
func Load(ctx context.Context, path string, opts Options) (*Dataset, error) {
	var (
		records []models.Record
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = loadCSV(path)
	case ".xlsx":
		records, err = loadXLSX(path, opts.Sheet)
	case ".db", ".sqlite", ".sqlite3":
		records, err = loadSQLite(ctx, path, opts.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	ds := New(path, records)
	geo := 0
	for _, r := range records {
		if r.HasGeo {
			geo++
		}
	}
	log.Printf("[Dataset] Loaded %d records (%d with coordinates) from %s", ds.Len(), geo, path)
	return ds, nil
}
