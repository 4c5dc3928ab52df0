package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"hotel-rate-monitor/models"
)

// PostgresWriter persists selected price records to PostgreSQL. Records are
// upserted on doc_id, so re-observing the same (date, hotel, room, channel)
// across runs only refreshes the existing row.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS hotel_prices (
			doc_id       TEXT        PRIMARY KEY,
			collected_at TIMESTAMPTZ NOT NULL,
			hotel_name   TEXT        NOT NULL,
			room_name    TEXT        NOT NULL,
			channel      TEXT        NOT NULL,
			price        BIGINT      NOT NULL,
			target_date  DATE        NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_hotel_prices_hotel   ON hotel_prices(hotel_name);
		CREATE INDEX IF NOT EXISTS idx_hotel_prices_date    ON hotel_prices(target_date);
		CREATE INDEX IF NOT EXISTS idx_hotel_prices_channel ON hotel_prices(channel);
		CREATE INDEX IF NOT EXISTS idx_hotel_prices_price   ON hotel_prices(price);
	`)
	return err
}

// Upsert writes records in batches, replacing the stored price and timestamp
// when a doc_id already exists.
func (pw *PostgresWriter) Upsert(records []*models.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.upsertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) upsertBatch(batch []*models.PriceRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, r := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			r.DocID, r.CollectedAt, r.HotelName, r.RoomName, r.Channel, r.Price, r.TargetDate)
	}

	query := fmt.Sprintf(`
		INSERT INTO hotel_prices (doc_id, collected_at, hotel_name, room_name, channel, price, target_date)
		VALUES %s
		ON CONFLICT (doc_id) DO UPDATE SET
			collected_at = EXCLUDED.collected_at,
			price        = EXCLUDED.price
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
