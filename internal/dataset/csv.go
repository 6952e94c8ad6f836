package dataset

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

func loadCSV(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, frameOptions()...)
	return fromFrame(path, df)
}
