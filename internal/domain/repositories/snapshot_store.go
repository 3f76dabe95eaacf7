package repositories

import (
	"context"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

// SnapshotStore persists project indexes as JSON snapshots. Implementations:
// local filesystem and MinIO object storage.
type SnapshotStore interface {
	// Load reads the snapshot for a project. Returns
	// usecase errors.ErrSnapshotNotFound when no snapshot exists yet.
	Load(ctx context.Context, projectName string) (*entities.ProjectIndex, error)
	// Save writes the snapshot atomically, replacing any previous one.
	Save(ctx context.Context, index *entities.ProjectIndex) error
	// Exists reports whether a snapshot exists for the project.
	Exists(ctx context.Context, projectName string) (bool, error)
	// ListProjects returns names of all projects with a persisted snapshot.
	ListProjects(ctx context.Context) ([]string, error)
}
