package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	"github.com/jordansepetys/AibaTS/internal/domain/repositories"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

const indexFileName = "meetings_index.json"

// FileSnapshotStore persists project indexes as JSON files under
// <projectsDir>/<project>/meetings_index.json.
type FileSnapshotStore struct {
	projectsDir string
}

// NewFileSnapshotStore creates a filesystem-backed snapshot store
func NewFileSnapshotStore(projectsDir string) *FileSnapshotStore {
	return &FileSnapshotStore{projectsDir: projectsDir}
}

// IndexPath returns the snapshot path for a project.
func (s *FileSnapshotStore) IndexPath(projectName string) string {
	return filepath.Join(s.projectsDir, projectName, indexFileName)
}

// Load reads a project's snapshot from disk
func (s *FileSnapshotStore) Load(_ context.Context, projectName string) (*entities.ProjectIndex, error) {
	data, err := os.ReadFile(s.IndexPath(projectName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ucerrors.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read index snapshot: %w", err)
	}

	var index entities.ProjectIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode index snapshot: %w", err)
	}
	return &index, nil
}

// Save writes the snapshot atomically: temp file in the same directory, then
// rename over the previous snapshot.
func (s *FileSnapshotStore) Save(_ context.Context, index *entities.ProjectIndex) error {
	dir := filepath.Join(s.projectsDir, index.ProjectName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, indexFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, indexFileName)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot exists for the project
func (s *FileSnapshotStore) Exists(_ context.Context, projectName string) (bool, error) {
	_, err := os.Stat(s.IndexPath(projectName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListProjects returns all projects with a persisted snapshot
func (s *FileSnapshotStore) ListProjects(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.projectsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	projects := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.projectsDir, entry.Name(), indexFileName)); err == nil {
			projects = append(projects, entry.Name())
		}
	}
	return projects, nil
}

// ArtifactScanner reads meeting artifacts from the local data directory laid
// out as <dataDir>/json_notes/meeting_*_notes.json plus
// <dataDir>/transcripts/meeting_*.txt.
type ArtifactScanner struct {
	notesDir       string
	transcriptsDir string
}

// NewArtifactScanner creates a scanner over the artifact directories
func NewArtifactScanner(notesDir, transcriptsDir string) *ArtifactScanner {
	return &ArtifactScanner{notesDir: notesDir, transcriptsDir: transcriptsDir}
}

// Scan lists all meeting artifact pairs found on disk
func (a *ArtifactScanner) Scan(_ context.Context) ([]repositories.ArtifactPair, error) {
	matches, err := filepath.Glob(filepath.Join(a.notesDir, "meeting_*_notes.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes directory: %w", err)
	}

	pairs := make([]repositories.ArtifactPair, 0, len(matches))
	for _, notesPath := range matches {
		info, err := os.Stat(notesPath)
		if err != nil {
			continue
		}

		meetingID := strings.TrimSuffix(filepath.Base(notesPath), ".json")
		pair := repositories.ArtifactPair{
			MeetingID: meetingID,
			NotesPath: notesPath,
			ModTime:   info.ModTime(),
		}

		if tp := a.transcriptPathFor(meetingID); tp != "" {
			pair.TranscriptPath = tp
			if ti, err := os.Stat(tp); err == nil && ti.ModTime().After(pair.ModTime) {
				pair.ModTime = ti.ModTime()
			}
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ReadNotes returns the raw bytes of a structured-notes file
func (a *ArtifactScanner) ReadNotes(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}
	return data, nil
}

// ReadTranscript returns the transcript text, empty when absent
func (a *ArtifactScanner) ReadTranscript(_ context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// transcriptPathFor maps meeting_<ts>_notes to transcripts/meeting_<ts>.txt
func (a *ArtifactScanner) transcriptPathFor(meetingID string) string {
	baseID := strings.TrimSuffix(meetingID, "_notes")
	path := filepath.Join(a.transcriptsDir, baseID+".txt")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
