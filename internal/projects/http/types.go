package http

import (
	"github.com/projectstage/config-backend/internal/projects/repository"
	"github.com/projectstage/config-backend/internal/projects/service"
	"github.com/projectstage/config-backend/internal/projects/staging"
)

// Handler bundles the dependencies for the project config endpoints.
type Handler struct {
	staging  *staging.Store
	repo     *repository.Repo
	pipeline *service.Pipeline
	statuses *service.StateMachine
}

func New(st *staging.Store, repo *repository.Repo, pipeline *service.Pipeline, statuses *service.StateMachine) *Handler {
	return &Handler{
		staging:  st,
		repo:     repo,
		pipeline: pipeline,
		statuses: statuses,
	}
}
