package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
	"github.com/jordansepetys/AibaTS/pkg/config"
)

const indexObjectPrefix = "indexes/"

// MinIOSnapshotStore persists project indexes as objects in a MinIO bucket,
// one object per project under indexes/<project>.json.
type MinIOSnapshotStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOSnapshotStore creates a MinIO-backed snapshot store
func NewMinIOSnapshotStore(cfg *config.StorageConfig) (*MinIOSnapshotStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinIOSnapshotStore{
		client: client,
		bucket: cfg.BucketName,
	}

	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return store, nil
}

// ensureBucket creates the bucket when it does not exist yet
func (m *MinIOSnapshotStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (m *MinIOSnapshotStore) objectName(projectName string) string {
	return indexObjectPrefix + projectName + ".json"
}

// Load reads a project's snapshot object
func (m *MinIOSnapshotStore) Load(ctx context.Context, projectName string) (*entities.ProjectIndex, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.objectName(projectName), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get index object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, ucerrors.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read index object: %w", err)
	}

	var index entities.ProjectIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode index snapshot: %w", err)
	}
	return &index, nil
}

// Save uploads the snapshot, replacing any previous object
func (m *MinIOSnapshotStore) Save(ctx context.Context, index *entities.ProjectIndex) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index snapshot: %w", err)
	}

	_, err = m.client.PutObject(ctx, m.bucket, m.objectName(index.ProjectName),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload index snapshot: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot object exists for the project
func (m *MinIOSnapshotStore) Exists(ctx context.Context, projectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, m.objectName(projectName), minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListProjects returns all projects with a snapshot object
func (m *MinIOSnapshotStore) ListProjects(ctx context.Context) ([]string, error) {
	projects := []string{}
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: indexObjectPrefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list index objects: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, indexObjectPrefix)
		name = strings.TrimSuffix(name, ".json")
		if name != "" {
			projects = append(projects, name)
		}
	}
	return projects, nil
}
