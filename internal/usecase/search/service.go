package search

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	"github.com/jordansepetys/AibaTS/internal/domain/repositories"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/cache"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
	"github.com/jordansepetys/AibaTS/internal/usecase/query"
)

// Service answers free-form questions against a project's meeting index
type Service interface {
	// Ask parses the question, scores the project's records and returns
	// the ranked, excerpted answer. An empty result list is a valid
	// answer, not an error.
	Ask(ctx context.Context, projectName, question string, maxResults int) (*Answer, error)
	// GetMeeting returns one record from the project index.
	GetMeeting(ctx context.Context, projectName, meetingID string) (*entities.MeetingRecord, error)
	// GetIndex returns the loaded project index.
	GetIndex(ctx context.Context, projectName string) (*entities.ProjectIndex, error)
}

// Answer is the full outcome of one question.
type Answer struct {
	Query        *entities.Query
	Results      []AnswerResult
	TotalMatches int
}

// AnswerResult pairs a ranked record with its per-field excerpts.
type AnswerResult struct {
	Record        *entities.MeetingRecord
	Score         float64
	MatchedFields []string
	Excerpts      map[string]string
}

type searchService struct {
	store      repositories.SnapshotStore
	cacheStore cache.Store
	cacheTTL   time.Duration
	parser     *query.Parser
	engine     *Engine
	defaultMax int
	logger     *zap.Logger
}

// NewService constructs the question-answering service
func NewService(
	store repositories.SnapshotStore,
	cacheStore cache.Store,
	cacheTTL time.Duration,
	parser *query.Parser,
	engine *Engine,
	defaultMax int,
	logger *zap.Logger,
) Service {
	if defaultMax <= 0 {
		defaultMax = 10
	}
	return &searchService{
		store:      store,
		cacheStore: cacheStore,
		cacheTTL:   cacheTTL,
		parser:     parser,
		engine:     engine,
		defaultMax: defaultMax,
		logger:     logger,
	}
}

func (s *searchService) Ask(ctx context.Context, projectName, question string, maxResults int) (*Answer, error) {
	q, err := s.parser.Parse(question)
	if err != nil {
		return nil, err
	}

	index, err := s.loadIndex(ctx, projectName)
	if err != nil {
		return nil, err
	}

	if maxResults <= 0 {
		maxResults = s.defaultMax
	}

	result, err := s.engine.Search(index, q, maxResults)
	if err != nil {
		s.logger.Error("search.fault",
			zap.String("project", projectName),
			zap.String("question", question),
			zap.Error(err),
		)
		return nil, err
	}

	answer := &Answer{
		Query:        q,
		Results:      make([]AnswerResult, 0, len(result.Results)),
		TotalMatches: result.TotalMatches,
	}
	for i := range result.Results {
		r := &result.Results[i]
		answer.Results = append(answer.Results, AnswerResult{
			Record:        r.Record,
			Score:         r.Score,
			MatchedFields: r.MatchedFields,
			Excerpts:      ExtractExcerpts(r, q),
		})
	}

	s.logger.Info("search.answered",
		zap.String("project", projectName),
		zap.String("intent", string(q.Intent)),
		zap.Strings("keywords", q.Keywords),
		zap.Int("total_matches", answer.TotalMatches),
		zap.Int("returned", len(answer.Results)),
	)
	return answer, nil
}

func (s *searchService) GetMeeting(ctx context.Context, projectName, meetingID string) (*entities.MeetingRecord, error) {
	index, err := s.loadIndex(ctx, projectName)
	if err != nil {
		return nil, err
	}
	record := index.Find(meetingID)
	if record == nil {
		return nil, ucerrors.ErrMeetingNotFound
	}
	return record, nil
}

func (s *searchService) GetIndex(ctx context.Context, projectName string) (*entities.ProjectIndex, error) {
	return s.loadIndex(ctx, projectName)
}

// loadIndex fetches the project index, preferring the snapshot cache. Cache
// content is the serialized snapshot, invalidated by the builder on every
// mutation.
func (s *searchService) loadIndex(ctx context.Context, projectName string) (*entities.ProjectIndex, error) {
	key := cache.IndexKey(projectName)

	if s.cacheStore != nil {
		if cached, ok := s.cacheStore.Get(ctx, key); ok {
			var index entities.ProjectIndex
			if err := json.Unmarshal([]byte(cached), &index); err == nil {
				return &index, nil
			}
			// Corrupt cache entry; fall through to the store.
			s.cacheStore.Delete(ctx, key)
		}
	}

	index, err := s.store.Load(ctx, projectName)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		if data, err := json.Marshal(index); err == nil {
			s.cacheStore.Set(ctx, key, string(data), s.cacheTTL)
		}
	}
	return index, nil
}
