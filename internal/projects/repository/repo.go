package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/projectstage/config-backend/internal/projects/domain"
)

const projectKeyPrefix = "project:" // Key per project document: project:{id}

// Repo persists project records as JSON documents in Redis. The client is
// owned by the caller and opened once at bootstrap; a nil client means no
// store was configured and every operation fails with ErrUnavailable.
type Repo struct {
	client *redis.Client
}

func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client}
}

// Create inserts a new record with CreatedAt set to now. The id is an
// enforced-unique key: an existing record with the same id fails with
// ErrConflict, never overwrites.
func (r *Repo) Create(ctx context.Context, desc domain.ProjectDescriptor) (*domain.Project, error) {
	if r.client == nil {
		return nil, fmt.Errorf("create project: %w", domain.ErrUnavailable)
	}

	p := domain.Project{
		ID:        desc.ID,
		Name:      desc.Name,
		Status:    desc.Status,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(&p)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.projectKey(p.ID), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("create project %q: %w", p.ID, domain.ErrConflict)
	}

	return &p, nil
}

// FindByID is a point lookup by project id.
func (r *Repo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	if r.client == nil {
		return nil, fmt.Errorf("find project: %w", domain.ErrUnavailable)
	}

	data, err := r.client.Get(ctx, r.projectKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal project: %w", err)
	}
	return &p, nil
}

// UpdateStatus replaces the status of the record for id and returns the
// post-update record. Transition legality is the caller's concern; the
// repository only refuses values outside the status set.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Project, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Status = status

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	if err := r.client.Set(ctx, r.projectKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}

	return p, nil
}

func (r *Repo) projectKey(id string) string {
	return projectKeyPrefix + id
}
