package indexer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	"github.com/jordansepetys/AibaTS/internal/domain/repositories"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/cache"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

// Service builds and maintains per-project meeting indexes
type Service interface {
	// Build scans all meeting artifacts and builds the project index.
	// force=false updates incrementally: only artifacts newer than the
	// index or without an existing record are reprocessed. force=true
	// rebuilds from empty. Per-artifact failures are recorded in the
	// report and never abort the build.
	Build(ctx context.Context, projectName string, force bool) (*BuildReport, error)
	// UpdateSingle upserts one meeting into the index. Returns false and
	// a nil error on artifact read/parse failure, leaving the persisted
	// index unchanged; a non-nil error means persistence failed.
	UpdateSingle(ctx context.Context, projectName, meetingID, notesPath, transcriptPath string) (bool, error)
	// ListProjects returns every project with a persisted index.
	ListProjects(ctx context.Context) ([]string, error)
}

// BuildFailure records one skipped meeting during a build.
type BuildFailure struct {
	MeetingID string `json:"meeting_id"`
	Reason    string `json:"reason"`
}

// BuildReport is the fold outcome of one build: the resulting index plus the
// per-artifact successes and failures.
type BuildReport struct {
	RunID     uuid.UUID              `json:"run_id"`
	Index     *entities.ProjectIndex `json:"-"`
	Processed int                    `json:"processed"`
	Skipped   int                    `json:"skipped"`
	Failures  []BuildFailure         `json:"failures"`
}

type builderService struct {
	artifacts   repositories.ArtifactSource
	store       repositories.SnapshotStore
	cacheStore  cache.Store
	maxKeywords int
	logger      *zap.Logger
}

// NewService constructs the index builder
func NewService(
	artifacts repositories.ArtifactSource,
	store repositories.SnapshotStore,
	cacheStore cache.Store,
	maxKeywords int,
	logger *zap.Logger,
) Service {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &builderService{
		artifacts:   artifacts,
		store:       store,
		cacheStore:  cacheStore,
		maxKeywords: maxKeywords,
		logger:      logger,
	}
}

func (b *builderService) Build(ctx context.Context, projectName string, force bool) (*BuildReport, error) {
	report := &BuildReport{RunID: uuid.New(), Failures: []BuildFailure{}}

	b.logger.Info("index.build.start",
		zap.String("run_id", report.RunID.String()),
		zap.String("project", projectName),
		zap.Bool("force", force),
	)

	var index *entities.ProjectIndex
	if !force {
		existing, err := b.store.Load(ctx, projectName)
		switch {
		case err == nil:
			index = existing
		case errors.Is(err, ucerrors.ErrSnapshotNotFound):
			// First build for this project.
		default:
			b.logger.Warn("index.build.load_existing_failed",
				zap.String("project", projectName), zap.Error(err))
		}
	}
	if index == nil {
		index = entities.NewProjectIndex(projectName)
	}
	cutoff := index.UpdatedTime()

	pairs, err := b.artifacts.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan artifacts: %w", err)
	}
	b.logger.Info("index.build.scanned",
		zap.String("run_id", report.RunID.String()),
		zap.Int("artifacts", len(pairs)),
	)

	for _, pair := range pairs {
		if !force && index.Find(pair.MeetingID) != nil && !pair.ModTime.After(cutoff) {
			report.Skipped++
			continue
		}

		record, err := b.buildRecord(ctx, projectName, pair)
		if err != nil {
			// Partial-failure tolerant: one bad artifact never aborts
			// the whole index.
			report.Failures = append(report.Failures, BuildFailure{
				MeetingID: pair.MeetingID,
				Reason:    err.Error(),
			})
			b.logger.Warn("index.build.artifact_failed",
				zap.String("run_id", report.RunID.String()),
				zap.String("meeting_id", pair.MeetingID),
				zap.Error(err),
			)
			continue
		}

		index.Upsert(*record)
		report.Processed++
	}

	index.Touch()
	report.Index = index

	if err := b.persist(ctx, index); err != nil {
		// The in-memory index stays usable; the caller must know the
		// snapshot is stale.
		return report, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}

	b.logger.Info("index.build.done",
		zap.String("run_id", report.RunID.String()),
		zap.String("project", projectName),
		zap.Int("processed", report.Processed),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failures)),
		zap.Int("total_meetings", index.TotalMeetings),
	)
	return report, nil
}

func (b *builderService) UpdateSingle(ctx context.Context, projectName, meetingID, notesPath, transcriptPath string) (bool, error) {
	index, err := b.store.Load(ctx, projectName)
	if err != nil {
		if !errors.Is(err, ucerrors.ErrSnapshotNotFound) {
			b.logger.Warn("index.update.load_failed",
				zap.String("project", projectName), zap.Error(err))
		}
		index = entities.NewProjectIndex(projectName)
	}

	pair := repositories.ArtifactPair{
		MeetingID:      meetingID,
		NotesPath:      notesPath,
		TranscriptPath: transcriptPath,
	}
	record, err := b.buildRecord(ctx, projectName, pair)
	if err != nil {
		b.logger.Warn("index.update.artifact_failed",
			zap.String("meeting_id", meetingID), zap.Error(err))
		return false, nil
	}

	index.Upsert(*record)
	index.Touch()

	if err := b.persist(ctx, index); err != nil {
		return false, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}

	b.logger.Info("index.update.done",
		zap.String("project", projectName),
		zap.String("meeting_id", meetingID),
		zap.Int("total_meetings", index.TotalMeetings),
	)
	return true, nil
}

func (b *builderService) ListProjects(ctx context.Context) ([]string, error) {
	return b.store.ListProjects(ctx)
}

// buildRecord normalizes one artifact pair into a meeting record.
func (b *builderService) buildRecord(ctx context.Context, projectName string, pair repositories.ArtifactPair) (*entities.MeetingRecord, error) {
	data, err := b.artifacts.ReadNotes(ctx, pair.NotesPath)
	if err != nil {
		return nil, err
	}
	notes, err := ParseNotes(data)
	if err != nil {
		return nil, err
	}
	notes.Normalize()

	transcript, err := b.artifacts.ReadTranscript(ctx, pair.TranscriptPath)
	if err != nil {
		return nil, err
	}

	timestamp := timestampFromID(pair.MeetingID)

	keywordText := strings.Join([]string{
		transcript,
		strings.Join(notes.Decisions, " "),
		strings.Join(notes.ActionItems, " "),
		strings.Join(notes.Risks, " "),
		strings.Join(notes.OpenQuestions, " "),
	}, " ")

	record := &entities.MeetingRecord{
		MeetingID:          pair.MeetingID,
		Timestamp:          timestamp,
		Date:               entities.DateFromTimestamp(timestamp),
		MeetingName:        meetingName(pair.MeetingID, timestamp),
		ProjectName:        projectName,
		Decisions:          notes.Decisions,
		ActionItems:        notes.ActionItems,
		Risks:              notes.Risks,
		OpenQuestions:      notes.OpenQuestions,
		FullTranscript:     transcript,
		JSONFilePath:       pair.NotesPath,
		TranscriptFilePath: pair.TranscriptPath,
		WordCount:          entities.CountWords(transcript),
		Keywords:           ExtractKeywords(keywordText, b.maxKeywords),
	}
	record.Normalize()

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// persist saves the snapshot with retries and invalidates the cached copy.
func (b *builderService) persist(ctx context.Context, index *entities.ProjectIndex) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = 3 * time.Second

	save := func() error {
		return b.store.Save(ctx, index)
	}
	if err := backoff.Retry(save, backoff.WithContext(bo, ctx)); err != nil {
		b.logger.Error("index.persist.failed",
			zap.String("project", index.ProjectName), zap.Error(err))
		return err
	}

	if b.cacheStore != nil {
		b.cacheStore.Delete(ctx, cache.IndexKey(index.ProjectName))
	}
	return nil
}

// timestampFromID extracts the epoch timestamp embedded in IDs shaped like
// meeting_<unix>_notes. Zero when the ID carries none.
func timestampFromID(meetingID string) int64 {
	s := strings.TrimPrefix(meetingID, "meeting_")
	s = strings.TrimSuffix(s, "_notes")
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts < 0 {
		return 0
	}
	return ts
}

// meetingName synthesizes a display name from the embedded timestamp.
func meetingName(meetingID string, timestamp int64) string {
	if timestamp > 0 {
		return "Meeting " + time.Unix(timestamp, 0).Format("2006-01-02 15:04")
	}
	return "Meeting " + meetingID
}
