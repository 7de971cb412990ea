package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/muckraker/internal/core"
)

type ProjectsRepo struct {
	db *sql.DB
}

func NewProjectsRepo(db *sql.DB) *ProjectsRepo {
	return &ProjectsRepo{db: db}
}

func (r *ProjectsRepo) Get(ctx context.Context, projectID string) (core.ProjectMetadata, error) {
	var meta core.ProjectMetadata
	var goals string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, research_goals FROM projects WHERE id = ?`,
		projectID,
	).Scan(&meta.ID, &meta.Name, &meta.Description, &goals)
	if err == sql.ErrNoRows {
		return core.ProjectMetadata{}, fmt.Errorf("%w: %s", core.ErrProjectNotFound, projectID)
	}
	if err != nil {
		return core.ProjectMetadata{}, fmt.Errorf("get project: %w", err)
	}

	if goals != "" {
		if err := json.Unmarshal([]byte(goals), &meta.ResearchGoals); err != nil {
			return core.ProjectMetadata{}, fmt.Errorf("unmarshal research goals: %w", err)
		}
	}
	return meta, nil
}

func (r *ProjectsRepo) Upsert(ctx context.Context, meta core.ProjectMetadata) error {
	goals, err := json.Marshal(meta.ResearchGoals)
	if err != nil {
		return fmt.Errorf("marshal research goals: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, research_goals)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id)
		 DO UPDATE SET name = excluded.name, description = excluded.description,
		               research_goals = excluded.research_goals`,
		meta.ID, meta.Name, meta.Description, string(goals),
	)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	return nil
}
