package coordinator

import (
	"context"
	"math/rand"
	"time"

	"github.com/danmuck/hexmutator/internal/ipc"
	"github.com/danmuck/hexmutator/internal/observability"
	"github.com/danmuck/hexmutator/internal/oracle"
	"github.com/danmuck/hexmutator/internal/protocol"
	"github.com/danmuck/hexmutator/internal/seedcodec"
	"github.com/danmuck/hexmutator/internal/seedstore"
)

// RoundReport summarizes one generation round.
type RoundReport struct {
	Source     string
	FromFuzzer bool
	Outputs    int
	Queued     int
	Empty      int
	IDs        []protocol.CorrelationID
	Duration   time.Duration
}

func (s *Service) generationLoop(ctx context.Context) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	failures := 0
	for ctx.Err() == nil {
		_, err := s.RunRound(ctx)
		if err == nil {
			failures = 0
			if !sleepCtx(ctx, s.cfg.RoundInterval) {
				return nil
			}
			continue
		}
		if isShutdown(ctx, err) {
			return nil
		}
		failures++
		delay := ipc.NextBackoffDelay(s.cfg.OracleBackoff, failures, rng)
		s.logger.Warn().
			Err(err).
			Int("failures", failures).
			Dur("retry_in", delay).
			Msg("coordinator.Service.generationLoop oracle failed")
		if !sleepCtx(ctx, delay) {
			return nil
		}
	}
	return nil
}

// RunRound performs one select, prompt, generate, canonicalize and enqueue pass.
func (s *Service) RunRound(ctx context.Context) (RoundReport, error) {
	start := time.Now()
	seed, fromFuzzer := s.selectSeed()
	report := RoundReport{Source: seed, FromFuzzer: fromFuzzer}

	outputs, err := s.generate(ctx, seedcodec.BuildPrompt(s.cfg.Target, seed))
	if err != nil {
		observability.RecordOracleError()
		return report, err
	}
	report.Outputs = len(outputs)

	ids := s.ids.NextBatch(len(outputs))
	items := make([]seedstore.PendingSeed, 0, len(outputs))
	now := time.Now()
	for i, text := range outputs {
		canonical := seedcodec.Canonicalize(text, s.cfg.Target)
		switch {
		case canonical != "":
			observability.RecordGenerated("queued")
		case s.cfg.DropEmptySeeds:
			report.Empty++
			observability.RecordGenerated("dropped_empty")
			continue
		default:
			report.Empty++
			observability.RecordGenerated("empty")
		}
		s.store.IDs.Record(canonical, ids[i])
		items = append(items, seedstore.PendingSeed{
			Seed:       canonical,
			ID:         ids[i],
			FromFuzzer: fromFuzzer,
			QueuedAt:   now,
		})
		report.IDs = append(report.IDs, ids[i])
	}
	if dropped := s.store.Outbound.Push(items...); dropped > 0 {
		s.logger.Warn().Int("dropped", dropped).Msg("coordinator.Service.RunRound outbound queue full")
	}
	report.Queued = len(items)
	report.Duration = time.Since(start)

	s.rounds.Add(1)
	observability.RecordRound(fromFuzzer, report.Duration)
	observability.RecordStoreSize("fuzzer", s.store.Fuzzer.Len())
	observability.RecordStoreSize("pool", s.store.Pool.Len())
	observability.RecordStoreSize("outbound", s.store.Outbound.Len())

	source := "pool"
	if fromFuzzer {
		source = "fuzzer"
	}
	s.logger.Debug().
		Str("source", source).
		Int("outputs", report.Outputs).
		Int("queued", report.Queued).
		Int("empty", report.Empty).
		Dur("took", report.Duration).
		Msg("coordinator.Service.RunRound generated")
	return report, nil
}

// selectSeed prefers a pending fuzzer seed, which also joins the local pool.
func (s *Service) selectSeed() (string, bool) {
	if seed, ok := s.store.Fuzzer.TakeOne(); ok {
		s.store.Pool.Offer(seed)
		return seed, true
	}
	if seed, ok := s.store.Pool.PickRandom(); ok {
		return seed, false
	}
	return s.fallback, false
}

func (s *Service) generate(ctx context.Context, prompt string) ([]string, error) {
	if r, ok := s.oracle.(oracle.Releaser); ok {
		defer r.Release()
	}
	return s.oracle.Generate(ctx, prompt)
}
