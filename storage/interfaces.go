package storage

import "hotel-rate-monitor/models"

// RecordWriter is the interface any primary storage backend must satisfy.
// Upsert must be keyed on DocID: storing the same record twice leaves one row.
type RecordWriter interface {
	Upsert(records []*models.PriceRecord) error
	Close() error
}

// AuditWriter is the interface for the flat-file audit trail of a run.
type AuditWriter interface {
	Append(records []*models.PriceRecord) error
	Close() error
}
