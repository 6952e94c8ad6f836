package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// frameOptions loads every column as text. Typing happens per row in
// parseRecord so errors can name the offending cell.
func frameOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.HasHeader(true),
	}
}

// fromFrame converts a text DataFrame into records.
func fromFrame(source string, df dataframe.DataFrame) ([]models.Record, error) {
	if df.Err != nil {
		return nil, &DataFormatError{Source: source, Reason: "unreadable table", Err: df.Err}
	}

	names := df.Names()
	idx, err := columnIndex(source, names)
	if err != nil {
		return nil, err
	}

	cols := make(map[models.Field][]string, len(idx))
	for f, i := range idx {
		cols[f] = df.Col(names[i]).Records()
	}

	return buildRecords(source, df.Nrow(), func(i int) rawRow {
		return func(f models.Field) string { return cols[f][i] }
	})
}
