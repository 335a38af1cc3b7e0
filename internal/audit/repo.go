package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo records one row per ingestion run in Postgres. It is optional
// infrastructure: constructed with a nil pool it records nothing and
// reports no errors.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// EnsureSchema creates the ingestion_batches table if it does not exist.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return nil
	}

	const q = `
create table if not exists ingestion_batches (
	batch_id    uuid primary key,
	started_at  timestamptz not null,
	finished_at timestamptz not null,
	succeeded   int not null,
	duplicates  int not null,
	failed      int not null
);
`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// RecordBatch inserts the outcome of one ingestion run.
func (r *Repo) RecordBatch(ctx context.Context, started, finished time.Time, succeeded, duplicates, failed int) error {
	if r.db == nil {
		return nil
	}

	const q = `
insert into ingestion_batches (batch_id, started_at, finished_at, succeeded, duplicates, failed)
values ($1, $2, $3, $4, $5, $6);
`
	_, err := r.db.Exec(ctx, q, uuid.New().String(), started, finished, succeeded, duplicates, failed)
	if err != nil {
		return fmt.Errorf("record ingestion batch: %w", err)
	}
	return nil
}
