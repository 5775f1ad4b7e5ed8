package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"golang.org/x/sync/singleflight"
)

// Config holds the tunables of the service layer.
type Config struct {
	// ReducedConfidence is reported for matches found only after stripping
	// quantities, units and trailing notes from the ingredient text.
	ReducedConfidence float64
	// DefaultGoal is used when a nutrition request names no goal.
	DefaultGoal string
	// NearDuplicateDistance is the edit distance under which two pack names
	// are reported as possible duplicates. Zero disables the check.
	NearDuplicateDistance int
	// BackfillPageSize is the page size of alias backfills started without
	// an explicit one.
	BackfillPageSize int
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ReducedConfidence:     0.8,
		DefaultGoal:           GoalGeneral,
		NearDuplicateDistance: 1,
		BackfillPageSize:      200,
	}
}

// Service holds all dependencies for the nutrition service layer.
type Service struct {
	q     db.Querier
	sqlDB *sql.DB
	cache ResultCache
	cfg   Config

	flightMu   sync.Mutex
	flights    map[string]*recomputeFlight
	lastFlight map[string]chan struct{}
	recompute  singleflight.Group
}

// New creates a new Service. sqlDB may be nil, in which case multi-step
// writes run directly against q without a surrounding transaction.
func New(q db.Querier, sqlDB *sql.DB, cfg Config) *Service {
	if cfg.ReducedConfidence <= 0 || cfg.ReducedConfidence > 1 {
		cfg.ReducedConfidence = DefaultConfig().ReducedConfidence
	}
	if cfg.DefaultGoal == "" {
		cfg.DefaultGoal = GoalGeneral
	}
	if cfg.NearDuplicateDistance < 0 {
		cfg.NearDuplicateDistance = 0
	}
	if cfg.BackfillPageSize <= 0 {
		cfg.BackfillPageSize = DefaultConfig().BackfillPageSize
	}
	if cfg.BackfillPageSize > MaxBackfillPageSize {
		cfg.BackfillPageSize = MaxBackfillPageSize
	}
	return &Service{
		q:          q,
		sqlDB:      sqlDB,
		cfg:        cfg,
		flights:    map[string]*recomputeFlight{},
		lastFlight: map[string]chan struct{}{},
	}
}

// WithCache attaches a nutrition result cache.
func (s *Service) WithCache(c ResultCache) *Service {
	s.cache = c
	return s
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Queries exposes the underlying db.Querier for direct use by handlers that
// don't require service-layer logic.
func (s *Service) Queries() db.Querier {
	return s.q
}

// withTx runs fn inside a transaction when a *sql.DB is available. Every
// write issued by fn is idempotent, so the non-transactional path is safe to
// retry as a whole.
func (s *Service) withTx(ctx context.Context, fn func(q db.Querier) error) error {
	if s.sqlDB == nil {
		return fn(s.q)
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(db.New(tx)); err != nil {
		return err
	}
	return tx.Commit()
}
