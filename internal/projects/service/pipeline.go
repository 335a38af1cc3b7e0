package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/projectstage/config-backend/internal/projects/domain"
	"github.com/projectstage/config-backend/internal/projects/parser"
	"github.com/projectstage/config-backend/internal/projects/repository"
	"github.com/projectstage/config-backend/internal/projects/staging"
)

// EntryError is the outcome of one staged entry that could not be
// ingested. Its file stays in the staging area for a later retry.
type EntryError struct {
	ID  string
	Err error
}

// BatchResult is the typed outcome of one ingestion run. Duplicates are
// entries whose id was already persisted; their staged files are removed
// because the record is proven to exist.
type BatchResult struct {
	Succeeded  []domain.Project
	Duplicates []string
	Failed     []EntryError
}

// BatchRecorder receives the outcome of each ingestion run. Recording is
// best-effort: a recorder failure never affects the batch.
type BatchRecorder interface {
	RecordBatch(ctx context.Context, started, finished time.Time, succeeded, duplicates, failed int) error
}

// Pipeline drains the staging store into the project repository. A staged
// file is removed only after the store has acknowledged the record.
type Pipeline struct {
	staging  *staging.Store
	repo     *repository.Repo
	recorder BatchRecorder
}

func NewPipeline(st *staging.Store, repo *repository.Repo, recorder BatchRecorder) *Pipeline {
	return &Pipeline{staging: st, repo: repo, recorder: recorder}
}

// Run processes every currently pending staged entry, not only the most
// recent upload. Per-entry failures are logged and collected but never
// abort the batch; the failed entry's file is left in place, giving
// at-least-once delivery.
func (p *Pipeline) Run(ctx context.Context) BatchResult {
	started := time.Now().UTC()

	var res BatchResult

	ids, err := p.staging.ListPending()
	if err != nil {
		log.Printf("[ingest] list pending: %v", err)
		return res
	}

	for _, id := range ids {
		if err := p.ingestOne(ctx, id, &res); err != nil {
			log.Printf("[ingest] entry %q: %v", id, err)
			res.Failed = append(res.Failed, EntryError{ID: id, Err: err})
		}
	}

	log.Printf("[ingest] batch done pending=%d succeeded=%d duplicates=%d failed=%d",
		len(ids), len(res.Succeeded), len(res.Duplicates), len(res.Failed))

	if p.recorder != nil && len(ids) > 0 {
		err := p.recorder.RecordBatch(ctx, started, time.Now().UTC(),
			len(res.Succeeded), len(res.Duplicates), len(res.Failed))
		if err != nil {
			log.Printf("[ingest] record batch: %v", err)
		}
	}

	return res
}

func (p *Pipeline) ingestOne(ctx context.Context, id string, res *BatchResult) error {
	raw, err := p.staging.Read(id)
	if err != nil {
		return err
	}

	desc, err := parser.Parse(raw)
	if err != nil {
		return err
	}

	created, err := p.repo.Create(ctx, desc)
	if errors.Is(err, domain.ErrConflict) {
		// A record with this id is already persisted, typically a leftover
		// staged file from a crash between commit and cleanup. Ack it.
		if rmErr := p.staging.Remove(id); rmErr != nil {
			return rmErr
		}
		res.Duplicates = append(res.Duplicates, id)
		return nil
	}
	if err != nil {
		return err
	}

	if err := p.staging.Remove(id); err != nil {
		// The record is persisted; the leftover file will be acked as a
		// duplicate on the next run.
		log.Printf("[ingest] remove staged %q: %v", id, err)
	}

	res.Succeeded = append(res.Succeeded, *created)
	return nil
}
