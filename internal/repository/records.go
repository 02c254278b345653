package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okafor-chidi/catalog-digitizer/constants"
	"github.com/okafor-chidi/catalog-digitizer/internal/common"
	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

// CatalogRecordRepository persists assembled records keyed on
// (source_file, page). Re-running a batch over the same pages updates in
// place rather than duplicating.
type CatalogRecordRepository interface {
	Init(ctx context.Context) error
	Upsert(ctx context.Context, batchID uuid.UUID, rec *entity.CatalogRecord) error
	List(ctx context.Context) ([]entity.CatalogRecord, error)
	Count(ctx context.Context) (int, error)
}

type recordRepository struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

// NewCatalogRecordRepository builds a repository over an open connection.
// The DSN decides the placeholder dialect, nothing else differs between
// the SQLite and Postgres paths.
func NewCatalogRecordRepository(db *sql.DB, dsn string, logger *slog.Logger) CatalogRecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &recordRepository{db: db, driver: DriverFor(dsn), logger: logger}
}

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS catalog_record (
	id               TEXT PRIMARY KEY,
	batch_id         TEXT NOT NULL,
	source_file      TEXT NOT NULL,
	page             INTEGER NOT NULL,
	raw_text         TEXT NOT NULL,
	accession_number TEXT NOT NULL DEFAULT '',
	object_name      TEXT NOT NULL DEFAULT '',
	provenance       TEXT NOT NULL DEFAULT '',
	site_location    TEXT NOT NULL DEFAULT '',
	materials        TEXT NOT NULL DEFAULT '',
	dimensions       TEXT NOT NULL DEFAULT '',
	date             TEXT NOT NULL DEFAULT '',
	notes            TEXT NOT NULL DEFAULT '',
	needs_review     INTEGER NOT NULL DEFAULT 0,
	year             TEXT,
	updated_at       TEXT NOT NULL,
	UNIQUE (source_file, page)
)`

func (r *recordRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRecordsTable); err != nil {
		return common.NewAppError("DB_INIT", "create catalog_record table", err)
	}
	return nil
}

const upsertRecord = `
INSERT INTO catalog_record (
	id, batch_id, source_file, page, raw_text,
	accession_number, object_name, provenance, site_location,
	materials, dimensions, date, notes,
	needs_review, year, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (source_file, page) DO UPDATE SET
	batch_id = excluded.batch_id,
	raw_text = excluded.raw_text,
	accession_number = excluded.accession_number,
	object_name = excluded.object_name,
	provenance = excluded.provenance,
	site_location = excluded.site_location,
	materials = excluded.materials,
	dimensions = excluded.dimensions,
	date = excluded.date,
	notes = excluded.notes,
	needs_review = excluded.needs_review,
	year = excluded.year,
	updated_at = excluded.updated_at`

func (r *recordRepository) Upsert(ctx context.Context, batchID uuid.UUID, rec *entity.CatalogRecord) error {
	needsReview := 0
	if rec.NeedsReview {
		needsReview = 1
	}
	var year sql.NullString
	if rec.Year != nil {
		year = sql.NullString{String: *rec.Year, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, r.rebind(upsertRecord),
		uuid.NewString(), batchID.String(), rec.SourceFile, rec.Page, rec.RawText,
		rec.Fields[constants.FieldAccessionNumber],
		rec.Fields[constants.FieldObjectName],
		rec.Fields[constants.FieldProvenance],
		rec.Fields[constants.FieldSiteLocation],
		rec.Fields[constants.FieldMaterials],
		rec.Fields[constants.FieldDimensions],
		rec.Fields[constants.FieldDate],
		rec.Fields[constants.FieldNotes],
		needsReview, year, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return common.NewAppError("DB_UPSERT",
			fmt.Sprintf("upsert record %s p%d", rec.SourceFile, rec.Page), err)
	}
	return nil
}

const listRecords = `
SELECT source_file, page, raw_text,
	accession_number, object_name, provenance, site_location,
	materials, dimensions, date, notes,
	needs_review, year
FROM catalog_record
ORDER BY source_file, page`

func (r *recordRepository) List(ctx context.Context) ([]entity.CatalogRecord, error) {
	rows, err := r.db.QueryContext(ctx, listRecords)
	if err != nil {
		return nil, common.NewAppError("DB_LIST", "query records", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("closing rows", "error", cerr)
		}
	}()

	var records []entity.CatalogRecord
	for rows.Next() {
		var rec entity.CatalogRecord
		var fields [8]string
		var needsReview int
		var year sql.NullString
		if err := rows.Scan(
			&rec.SourceFile, &rec.Page, &rec.RawText,
			&fields[0], &fields[1], &fields[2], &fields[3],
			&fields[4], &fields[5], &fields[6], &fields[7],
			&needsReview, &year,
		); err != nil {
			return nil, common.NewAppError("DB_LIST", "scan record", err)
		}
		rec.Fields = make(map[constants.FieldName]string, len(constants.FieldNames))
		for i, name := range constants.FieldNames {
			rec.Fields[name] = fields[i]
		}
		rec.NeedsReview = needsReview != 0
		if year.Valid {
			y := year.String
			rec.Year = &y
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_LIST", "iterate records", err)
	}
	return records, nil
}

func (r *recordRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM catalog_record").Scan(&n); err != nil {
		return 0, common.NewAppError("DB_COUNT", "count records", err)
	}
	return n, nil
}

// rebind rewrites ? placeholders to $n for the postgres driver. SQLite takes
// the statements as written.
func (r *recordRepository) rebind(query string) string {
	if r.driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
