// Package dataset loads the tourism table once and hands out read-only views of it.
package dataset

import (
	"time"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

// Dataset is an immutable, loaded set of records. It is safe for concurrent use.
type Dataset struct {
	source   string
	records  []models.Record
	loadedAt time.Time
}

// New wraps records in a Dataset. The slice is copied.
func New(source string, records []models.Record) *Dataset {
	cp := make([]models.Record, len(records))
	copy(cp, records)
	return &Dataset{source: source, records: cp, loadedAt: time.Now()}
}

// Records returns a copy of the loaded records in source order.
func (d *Dataset) Records() []models.Record {
	cp := make([]models.Record, len(d.records))
	copy(cp, d.records)
	return cp
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
