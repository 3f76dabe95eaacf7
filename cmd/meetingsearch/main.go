// Package main provides the meetingsearch CLI entry point.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jordansepetys/AibaTS/internal/domain/repositories"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/cache"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/storage"
	"github.com/jordansepetys/AibaTS/internal/usecase/indexer"
	"github.com/jordansepetys/AibaTS/internal/usecase/query"
	"github.com/jordansepetys/AibaTS/internal/usecase/search"
	"github.com/jordansepetys/AibaTS/pkg/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meetingsearch",
	Short: "Index and query per-project meeting records",
	Long: `meetingsearch indexes meeting notes and transcripts per project and
answers natural-language questions about them.

Indexes are JSON snapshots on disk, built from the notes and transcript
files the recording pipeline drops into the data directory. All commands
output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// container bundles the wired services a command needs.
type container struct {
	cfg           *config.Config
	indexService  indexer.Service
	searchService search.Service
}

// mustWire loads configuration and builds the services, exiting on failure.
// The CLI always uses the in-process cache and logs warnings and up only.
func mustWire() *container {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitError, "loading configuration: %v", err)
	}

	logger, err := zap.NewProduction(zap.IncreaseLevel(zapcore.WarnLevel))
	if err != nil {
		exitWithError(ExitError, "initializing logger: %v", err)
	}

	var snapshotStore repositories.SnapshotStore
	if cfg.Storage.Type == "minio" {
		snapshotStore, err = storage.NewMinIOSnapshotStore(&cfg.Storage)
		if err != nil {
			exitWithError(ExitError, "connecting to MinIO: %v", err)
		}
	} else {
		projectsDir := filepath.Join(cfg.Data.Dir, cfg.Index.ProjectsDir)
		snapshotStore = storage.NewFileSnapshotStore(projectsDir)
	}

	scanner := storage.NewArtifactScanner(
		filepath.Join(cfg.Data.Dir, cfg.Data.NotesDir),
		filepath.Join(cfg.Data.Dir, cfg.Data.TranscriptsDir),
	)

	rules, err := query.LoadRules(cfg.Index.RulesPath)
	if err != nil {
		exitWithError(ExitError, "loading query rules: %v", err)
	}

	cacheStore := cache.NewMemoryStore()
	return &container{
		cfg:          cfg,
		indexService: indexer.NewService(scanner, snapshotStore, cacheStore, cfg.Index.MaxKeywords, logger),
		searchService: search.NewService(
			snapshotStore, cacheStore, cfg.Cache.TTL,
			query.NewParser(rules), search.NewEngine(search.DefaultWeights()),
			cfg.Index.DefaultMaxResults, logger,
		),
	}
}
