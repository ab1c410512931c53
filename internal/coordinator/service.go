package coordinator

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/hexmutator/internal/corrid"
	"github.com/danmuck/hexmutator/internal/ipc"
	"github.com/danmuck/hexmutator/internal/library"
	"github.com/danmuck/hexmutator/internal/observability"
	"github.com/danmuck/hexmutator/internal/oracle"
	"github.com/danmuck/hexmutator/internal/seedstore"
)

// Option customizes a Service at construction.
type Option func(*Service)

// WithOpener replaces the SysV channel opener, e.g. with an in-memory channel.
func WithOpener(open ipc.Opener) Option {
	return func(s *Service) { s.open = open }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithStore supplies pre-built shared state instead of a library-seeded store.
func WithStore(store *seedstore.Store) Option {
	return func(s *Service) { s.store = store }
}

func WithAllocator(ids *corrid.Allocator) Option {
	return func(s *Service) { s.ids = ids }
}

// Stats is the /stats snapshot.
type Stats struct {
	Target    string          `json:"target"`
	Running   bool            `json:"running"`
	Rounds    uint64          `json:"rounds"`
	SeedsSent uint64          `json:"seeds_sent"`
	Requests  uint64          `json:"requests"`
	NextID    uint32          `json:"next_id"`
	IDMode    corrid.Mode     `json:"id_mode"`
	Store     seedstore.Stats `json:"store"`
}

// Service runs the coordinator and generation loops as one supervised unit.
type Service struct {
	cfg      Config
	logger   zerolog.Logger
	oracle   oracle.Oracle
	store    *seedstore.Store
	ids      *corrid.Allocator
	open     ipc.Opener
	fallback string

	mu      sync.Mutex
	ch      ipc.Channel
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	errc    chan error
	running atomic.Bool

	rounds    atomic.Uint64
	seedsSent atomic.Uint64
	requests  atomic.Uint64
}

// NewService builds a coordinator around orc. Unless WithStore is given, the
// local pool is primed with the built-in seed for cfg.Target.
func NewService(cfg Config, orc oracle.Oracle, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if orc == nil {
		return nil, ErrOracleRequired
	}
	mode, _ := corrid.ParseMode(string(cfg.IDMode))
	cfg.Channel = cfg.Channel.WithDefaults()
	if isEcho(orc) && cfg.RoundInterval <= 0 {
		cfg.RoundInterval = DefaultEchoInterval
	}

	s := &Service{
		cfg:    cfg,
		logger: log.Logger,
		oracle: orc,
		errc:   make(chan error, 3),
	}
	for _, opt := range opts {
		opt(s)
	}

	if seed, err := library.Seed(cfg.Target); err == nil {
		s.fallback = seed
	} else if s.store == nil {
		return nil, err
	}
	if s.store == nil {
		s.store = seedstore.New(cfg.Store, s.fallback)
	}
	if s.ids == nil {
		s.ids = corrid.NewAllocator(cfg.IDStep, mode)
	}
	if s.open == nil {
		chCfg := cfg.Channel
		s.open = func() (ipc.Channel, error) {
			q, err := ipc.OpenSysV(chCfg)
			if err != nil {
				return nil, err
			}
			return q, nil
		}
	}
	s.logger = s.logger.With().Str("target", cfg.Target).Logger()
	return s, nil
}

// Run blocks until SIGINT/SIGTERM or a fatal loop error.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		return err
	}
	defer s.Stop()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("coordinator.Service.Run shutdown")
		return nil
	case err := <-s.errc:
		return err
	}
}

// Start opens the channel (retrying with backoff) and launches both loops.
// A channel that stays unavailable is returned as a startup error.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return ErrAlreadyStarted
	}

	ch, err := ipc.OpenWithRetry(ctx, s.open, s.cfg.Channel.OpenAttempts, s.cfg.Channel.Backoff, s.logger)
	if err != nil {
		return fmt.Errorf("coordinator: open channel key=%d: %w", s.cfg.Channel.Key, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.ch = ch
	s.cancel = cancel
	s.running.Store(true)

	s.spawn(func() error { return s.receiveLoop(runCtx, ch) })
	s.spawn(func() error { return s.generationLoop(runCtx) })
	if s.cfg.AdminListenAddr != "" {
		handler := observability.NewAdminHandler(s.logger, s.cfg.Target, func() any { return s.Stats() })
		addr := s.cfg.AdminListenAddr
		s.spawn(func() error { return observability.ServeAdmin(runCtx, addr, handler, s.logger) })
	}

	s.logger.Info().
		Int("channel_key", s.cfg.Channel.Key).
		Str("id_mode", string(s.ids.Mode())).
		Int("pool_seeds", s.store.Pool.Len()).
		Msg("coordinator.Service.Start ready")
	return nil
}

// Stop cancels both loops, closes the channel to unblock a pending receive,
// and waits for the loops to exit. It is safe to call more than once.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return nil
	}
	s.cancel()
	var closeErr error
	if s.ch != nil {
		closeErr = s.ch.Close()
	}
	s.wg.Wait()
	s.running.Store(false)
	s.logger.Info().
		Uint64("rounds", s.rounds.Load()).
		Uint64("seeds_sent", s.seedsSent.Load()).
		Msg("coordinator.Service.Stop stopped")
	return closeErr
}

// Err delivers fatal loop errors (e.g. the channel removed underneath us).
func (s *Service) Err() <-chan error {
	return s.errc
}

func (s *Service) Store() *seedstore.Store {
	return s.store
}

func (s *Service) Stats() Stats {
	return Stats{
		Target:    s.cfg.Target,
		Running:   s.running.Load(),
		Rounds:    s.rounds.Load(),
		SeedsSent: s.seedsSent.Load(),
		Requests:  s.requests.Load(),
		NextID:    uint32(s.ids.Peek()),
		IDMode:    s.ids.Mode(),
		Store:     s.store.Stats(),
	}
}

func (s *Service) spawn(fn func() error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := fn(); err != nil {
			select {
			case s.errc <- err:
			default:
				s.logger.Error().Err(err).Msg("coordinator.Service dropped loop error")
			}
		}
	}()
}

// sleepCtx waits d or until ctx is done; it reports whether the full wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// isEcho reports whether orc answers instantly and so needs pacing.
func isEcho(orc oracle.Oracle) bool {
	switch orc.(type) {
	case oracle.Echo, *oracle.Echo:
		return true
	}
	return false
}

func isShutdown(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
