package repository

import (
	"context"
	"database/sql"

	"homehub/internal/models"
	"homehub/internal/store"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SceneRepo persists the lighting scene list wholesale: the full list is
// read at startup and rewritten after every mutation.
type SceneRepo interface {
	Load() ([]models.LightingScene, error)
	Save(scenes []models.LightingScene) error
}

// SnapshotRepo persists the entire store as one schema-versioned blob.
// Load reports ok=false when no usable snapshot exists (missing row,
// version mismatch, unreadable payload) so callers can fall back to
// sample data.
type SnapshotRepo interface {
	Load(ctx context.Context) (store.State, bool, error)
	Save(ctx context.Context, st store.State) error
}

type Repository struct {
	Scenes    SceneRepo
	Snapshots SnapshotRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB, scenesPath string) *Repository {
	return &Repository{
		Scenes:    NewSceneFile(scenesPath),
		Snapshots: NewSnapshotSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
