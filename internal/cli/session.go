package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/internal/logging"
	"github.com/mesh-intelligence/lootboard/internal/validation"
	"github.com/mesh-intelligence/lootboard/pkg/storage"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// session is one command's view of the board: attached storage, the
// gateway over it, and the loaded board.
type session struct {
	settings  settings
	logger    *zap.Logger
	store     types.Storage
	gateway   *board.Gateway
	board     *board.Board
	validator *validation.Validator
}

// openSession resolves configuration, attaches storage, and loads the
// board. The caller must defer close.
func openSession(f *rootFlags) (*session, error) {
	s, err := resolveSettings(f)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(s.LogLevel)
	if err != nil {
		return nil, usageError{err}
	}

	store, err := storage.Open(s.storageConfig())
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("attached storage",
		zap.String("backend", s.Backend),
		zap.String("data_dir", s.DataDir))

	gw := board.NewGateway(store, logger)
	b, err := gw.Load()
	if err != nil {
		store.Detach()
		logger.Sync()
		return nil, fmt.Errorf("load board: %w", err)
	}

	return &session{
		settings:  s,
		logger:    logger,
		store:     store,
		gateway:   gw,
		board:     b,
		validator: validation.New(),
	}, nil
}

// close detaches storage and flushes the logger.
func (s *session) close() {
	if err := s.store.Detach(); err != nil {
		s.logger.Warn("detach storage", zap.Error(err))
	}
	s.logger.Sync()
}
