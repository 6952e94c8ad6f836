package dataset

import (
	"context"
	"fmt"

	"github.com/jengzang/turismo-backend-go/internal/database"
	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/repository"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "turismo_nacional"

func loadSQLite(ctx context.Context, path, table string) ([]models.Record, error) {
	if table == "" {
		table = DefaultTable
	}

	db, err := database.Open(database.Config{Path: path, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	repo, err := repository.NewRecordRepository(db, table)
	if err != nil {
		return nil, &DataFormatError{Source: path, Reason: "bad table name", Err: err}
	}

	cols, err := repo.Columns(ctx)
	if err != nil {
		return nil, &DataFormatError{Source: path, Reason: fmt.Sprintf("unreadable table %q", table), Err: err}
	}
	if _, err := columnIndex(path, cols); err != nil {
		return nil, err
	}

	rows, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return buildRecords(path, len(rows), func(i int) rawRow { return rows[i].Value })
}
