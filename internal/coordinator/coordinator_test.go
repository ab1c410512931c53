package coordinator

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danmuck/hexmutator/internal/corrid"
	"github.com/danmuck/hexmutator/internal/ipc"
	"github.com/danmuck/hexmutator/internal/library"
	"github.com/danmuck/hexmutator/internal/oracle"
	"github.com/danmuck/hexmutator/internal/protocol"
	"github.com/danmuck/hexmutator/internal/seedcodec"
	"github.com/danmuck/hexmutator/internal/seedstore"
	"github.com/danmuck/hexmutator/internal/testutil/testlog"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Target = "libpng"
	cfg.Channel.OpenAttempts = 2
	cfg.Channel.Backoff = ipc.BackoffConfig{InitialDelay: time.Millisecond, Multiplier: 1}
	cfg.OracleBackoff = ipc.BackoffConfig{InitialDelay: time.Millisecond, Multiplier: 1}
	return cfg
}

func newTestService(t *testing.T, cfg Config, orc oracle.Oracle, pool ...string) *Service {
	t.Helper()
	store := seedstore.NewWithPool(cfg.Store, seedstore.NewLocalSeedPoolWithRand(cfg.Store.LocalPoolCapacity, rand.New(rand.NewSource(1)), pool...))
	ids := corrid.NewAllocatorWithOffset(100, cfg.IDStep, cfg.IDMode)
	svc, err := NewService(cfg, orc, WithStore(store), WithAllocator(ids))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func staticOracle(outputs ...string) oracle.Oracle {
	return oracle.Func(func(ctx context.Context, prompt string) ([]string, error) {
		return append([]string(nil), outputs...), nil
	})
}

func TestNewServiceValidates(t *testing.T) {
	testlog.Start(t)
	cfg := testConfig()
	cfg.Target = " "
	if _, err := NewService(cfg, staticOracle()); !errors.Is(err, ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired, got %v", err)
	}

	cfg = testConfig()
	if _, err := NewService(cfg, nil); !errors.Is(err, ErrOracleRequired) {
		t.Fatalf("expected ErrOracleRequired, got %v", err)
	}

	cfg.IDMode = "sometimes"
	if _, err := NewService(cfg, staticOracle()); !errors.Is(err, corrid.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}

	cfg = testConfig()
	cfg.Target = "nosuchformat"
	if _, err := NewService(cfg, staticOracle()); !errors.Is(err, library.ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestNewServicePrimesPoolFromLibrary(t *testing.T) {
	testlog.Start(t)
	svc, err := NewService(testConfig(), staticOracle())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	want, _ := library.Seed("libpng")
	got := svc.Store().Pool.Snapshot()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("pool not primed with library seed: %v", got)
	}
}

func TestRequestThenRoundUsesFuzzerSeed(t *testing.T) {
	testlog.Start(t)
	var prompts []string
	orc := oracle.Func(func(ctx context.Context, prompt string) ([]string, error) {
		prompts = append(prompts, prompt)
		return []string{"### Output: 0x01 0x02"}, nil
	})
	svc := newTestService(t, testConfig(), orc, "4a3f")

	svc.HandleRequest(protocol.Message{
		Type:    protocol.TypeRequest,
		Payload: append([]byte{0, 0, 0, 0}, "deadbeef"...),
	})
	if svc.Store().Fuzzer.Len() != 1 || !svc.Store().Fuzzer.Contains("deadbeef") {
		t.Fatalf("fuzzer cache should hold exactly deadbeef")
	}

	report, err := svc.RunRound(context.Background())
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if report.Source != "deadbeef" || !report.FromFuzzer {
		t.Fatalf("unexpected source: %+v", report)
	}
	if len(prompts) != 1 || prompts[0] != seedcodec.BuildPrompt("libpng", "deadbeef") {
		t.Fatalf("unexpected prompt: %q", prompts)
	}
	pool := svc.Store().Pool.Snapshot()
	if len(pool) != 2 || pool[0] != "4a3f" || pool[1] != "deadbeef" {
		t.Fatalf("unexpected pool: %v", pool)
	}
	if svc.Store().Fuzzer.Len() != 0 {
		t.Fatalf("fuzzer seed should have been taken")
	}

	item, ok := svc.Store().Outbound.Pop()
	if !ok || item.Seed != "0102" || !item.FromFuzzer {
		t.Fatalf("unexpected queued seed: %+v ok=%v", item, ok)
	}
	if id, ok := svc.Store().IDs.Lookup("0102"); !ok || id != item.ID {
		t.Fatalf("id map got=%d ok=%v want=%d", id, ok, item.ID)
	}
}

func TestRoundFallsBackToPool(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle("0a"), "4a3f")
	report, err := svc.RunRound(context.Background())
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if report.Source != "4a3f" || report.FromFuzzer {
		t.Fatalf("unexpected source: %+v", report)
	}
	if svc.Stats().Rounds != 1 {
		t.Fatalf("round not counted")
	}
}

func TestHandleRequestDropsMalformed(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle(), "4a3f")
	cases := [][]byte{
		nil,
		{0, 0, 0},
		append([]byte{0, 0, 0, 0}, "not hex"...),
	}
	for _, payload := range cases {
		svc.HandleRequest(protocol.Message{Type: protocol.TypeRequest, Payload: payload})
	}
	if n := svc.Store().Fuzzer.Len(); n != 0 {
		t.Fatalf("malformed requests were cached: %d", n)
	}
	if svc.Stats().Requests != uint64(len(cases)) {
		t.Fatalf("requests not counted: %d", svc.Stats().Requests)
	}
}

func TestHandleRequestTruncatesLongSeed(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle(), "4a3f")
	svc.HandleRequest(protocol.EncodeRequest(strings.Repeat("ab", 1100)))

	seed, ok := svc.Store().Fuzzer.TakeOne()
	if !ok {
		t.Fatalf("long seed was dropped")
	}
	if len(seed) != protocol.MaxSeedChars || seed != strings.Repeat("ab", protocol.MaxSeedChars/2) {
		t.Fatalf("unexpected truncation: len=%d", len(seed))
	}
}

func TestDefaultConfigIsPacedAndBounded(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultConfig()
	orc, err := oracle.New(cfg.Oracle)
	if err != nil {
		t.Fatalf("new oracle: %v", err)
	}
	if _, ok := orc.(oracle.Echo); ok {
		t.Fatalf("default oracle must not be the echo oracle")
	}
	if cfg.Store.OutboundLimit <= 0 {
		t.Fatalf("default outbound queue must be bounded")
	}

	cfg.Oracle.Provider = oracle.ProviderEcho
	orc, err = oracle.New(cfg.Oracle)
	if err != nil {
		t.Fatalf("new echo oracle: %v", err)
	}
	svc := newTestService(t, cfg, orc, "4a3f")
	if svc.cfg.RoundInterval != DefaultEchoInterval {
		t.Fatalf("echo oracle should be paced, got %v", svc.cfg.RoundInterval)
	}

	cfg.RoundInterval = 3 * time.Second
	svc = newTestService(t, cfg, orc, "4a3f")
	if svc.cfg.RoundInterval != 3*time.Second {
		t.Fatalf("explicit interval overridden: %v", svc.cfg.RoundInterval)
	}
}

func TestEchoServiceStaysBoundedWithoutFuzzer(t *testing.T) {
	testlog.Start(t)
	cfg := testConfig()
	cfg.Oracle.Provider = oracle.ProviderEcho
	orc, err := oracle.New(cfg.Oracle)
	if err != nil {
		t.Fatalf("new oracle: %v", err)
	}
	ch := ipc.NewMemChannel(0)
	store := seedstore.New(cfg.Store, "4a3f")
	svc, err := NewService(cfg, orc, WithStore(store), WithOpener(func() (ipc.Channel, error) { return ch, nil }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := svc.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if rounds := svc.Stats().Rounds; rounds > 2 {
		t.Fatalf("echo oracle not paced: %d rounds", rounds)
	}
	if n := store.Outbound.Len(); n > cfg.Store.OutboundLimit {
		t.Fatalf("outbound queue exceeded its limit: %d", n)
	}
}

func TestFlushSendsInQueueOrder(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle(), "4a3f")
	svc.Store().Outbound.Push(
		seedstore.PendingSeed{Seed: "s1", ID: 11},
		seedstore.PendingSeed{Seed: "s2", ID: 12},
		seedstore.PendingSeed{Seed: "s3", ID: 13},
	)

	ch := ipc.NewMemChannel(0)
	sent, err := svc.Flush(ch)
	if err != nil || sent != 3 {
		t.Fatalf("flush sent=%d err=%v", sent, err)
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		msg, ok := ch.TryReceive(protocol.TypeSeed)
		if !ok {
			t.Fatalf("missing seed message %d", i)
		}
		got, err := protocol.DecodeSeed(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Seed != want || got.ID != protocol.CorrelationID(11+i) {
			t.Fatalf("message %d got=%+v want seed=%s", i, got, want)
		}
	}
	if svc.Store().Outbound.Len() != 0 {
		t.Fatalf("queue should be drained")
	}
	if svc.Stats().SeedsSent != 3 {
		t.Fatalf("seeds sent=%d", svc.Stats().SeedsSent)
	}
}

func TestFlushRequeuesUnsent(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle(), "4a3f")
	svc.Store().Outbound.Push(
		seedstore.PendingSeed{Seed: "s1", ID: 1},
		seedstore.PendingSeed{Seed: "s2", ID: 2},
		seedstore.PendingSeed{Seed: "s3", ID: 3},
	)

	ch := ipc.NewMemChannel(0)
	calls := 0
	ch.SetSendHook(func(protocol.Message) error {
		calls++
		if calls == 2 {
			return ipc.ErrWouldBlock
		}
		return nil
	})
	sent, err := svc.Flush(ch)
	if !errors.Is(err, ipc.ErrWouldBlock) || sent != 1 {
		t.Fatalf("flush sent=%d err=%v", sent, err)
	}
	if n := svc.Store().Outbound.Len(); n != 2 {
		t.Fatalf("expected 2 requeued seeds, got %d", n)
	}

	ch.SetSendHook(nil)
	if sent, err := svc.Flush(ch); err != nil || sent != 2 {
		t.Fatalf("second flush sent=%d err=%v", sent, err)
	}
	for _, want := range []string{"s1", "s2", "s3"} {
		msg, _ := ch.TryReceive(protocol.TypeSeed)
		got, err := protocol.DecodeSeed(msg)
		if err != nil || got.Seed != want {
			t.Fatalf("got=%+v err=%v want=%s", got, err, want)
		}
	}
}

func TestRoundIDModes(t *testing.T) {
	testlog.Start(t)
	outputs := []string{"0a", "0b", "0c"}

	cfg := testConfig()
	svc := newTestService(t, cfg, staticOracle(outputs...), "4a3f")
	first, _ := svc.RunRound(context.Background())
	second, _ := svc.RunRound(context.Background())
	wantFirst := []protocol.CorrelationID{101, 102, 103}
	for i, id := range first.IDs {
		if id != wantFirst[i] {
			t.Fatalf("unique ids got=%v want=%v", first.IDs, wantFirst)
		}
	}
	if second.IDs[0] != 109 {
		t.Fatalf("next round should start at 109, got %v", second.IDs)
	}

	cfg.IDMode = corrid.ModeRound
	svc = newTestService(t, cfg, staticOracle(outputs...), "4a3f")
	report, _ := svc.RunRound(context.Background())
	for _, id := range report.IDs {
		if id != 101 {
			t.Fatalf("round ids should all be 101, got %v", report.IDs)
		}
	}
}

func TestEmptySeedPolicy(t *testing.T) {
	testlog.Start(t)
	outputs := []string{"no hex here at all", "### Output: 0x0a"}

	svc := newTestService(t, testConfig(), staticOracle(outputs...), "4a3f")
	report, err := svc.RunRound(context.Background())
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if report.Empty != 1 || report.Queued != 2 {
		t.Fatalf("empty seeds should be queued by default: %+v", report)
	}
	if item, _ := svc.Store().Outbound.Pop(); item.Seed != "" {
		t.Fatalf("first queued seed should be empty, got %q", item.Seed)
	}

	cfg := testConfig()
	cfg.DropEmptySeeds = true
	svc = newTestService(t, cfg, staticOracle(outputs...), "4a3f")
	report, _ = svc.RunRound(context.Background())
	if report.Empty != 1 || report.Queued != 1 {
		t.Fatalf("empty seed should be dropped: %+v", report)
	}
	if item, _ := svc.Store().Outbound.Pop(); item.Seed != "0a" {
		t.Fatalf("unexpected seed %q", item.Seed)
	}
}

type releasingOracle struct {
	released atomic.Int32
}

func (o *releasingOracle) Generate(ctx context.Context, prompt string) ([]string, error) {
	return nil, errors.New("oracle down")
}

func (o *releasingOracle) Release() {
	o.released.Add(1)
}

func TestRoundOracleErrorReleases(t *testing.T) {
	testlog.Start(t)
	orc := &releasingOracle{}
	svc := newTestService(t, testConfig(), orc, "4a3f")
	if _, err := svc.RunRound(context.Background()); err == nil {
		t.Fatalf("expected oracle error")
	}
	if orc.released.Load() != 1 {
		t.Fatalf("oracle resources not released")
	}
	if svc.Stats().Rounds != 0 || svc.Store().Outbound.Len() != 0 {
		t.Fatalf("failed round must not queue seeds")
	}
}

func TestStartFailsWhenChannelUnavailable(t *testing.T) {
	testlog.Start(t)
	cfg := testConfig()
	store := seedstore.New(cfg.Store, "4a3f")
	opens := 0
	svc, err := NewService(cfg, staticOracle(), WithStore(store), WithOpener(func() (ipc.Channel, error) {
		opens++
		return nil, ipc.ErrChannelUnavailable
	}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Start(context.Background()); !errors.Is(err, ipc.ErrChannelUnavailable) {
		t.Fatalf("expected ErrChannelUnavailable, got %v", err)
	}
	if opens != cfg.Channel.OpenAttempts {
		t.Fatalf("opens=%d want=%d", opens, cfg.Channel.OpenAttempts)
	}
	if svc.Stats().Running {
		t.Fatalf("service should not be running")
	}
}

func TestServiceExchangesSeedsWithFuzzer(t *testing.T) {
	testlog.Start(t)
	var (
		mu      sync.Mutex
		prompts []string
	)
	orc := oracle.Func(func(ctx context.Context, prompt string) ([]string, error) {
		mu.Lock()
		prompts = append(prompts, prompt)
		mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Millisecond):
		}
		return []string{"### Output: 0x01 0x02"}, nil
	})

	cfg := testConfig()
	cfg.Store.OutboundLimit = 64
	ch := ipc.NewMemChannel(0)
	store := seedstore.New(cfg.Store, "4a3f")
	svc, err := NewService(cfg, orc, WithStore(store), WithOpener(func() (ipc.Channel, error) { return ch, nil }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}

	var got protocol.SeedMessage
	deadline := time.Now().Add(3 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatalf("no seed received from coordinator")
		}
		if _, err := ch.Send(protocol.EncodeRequest("deadbeef")); err != nil {
			t.Fatalf("fuzzer send: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if msg, ok := ch.TryReceive(protocol.TypeSeed); ok {
			got, err = protocol.DecodeSeed(msg)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			break
		}
	}
	if got.Seed != "0102" {
		t.Fatalf("unexpected seed %q", got.Seed)
	}

	done := make(chan error, 1)
	go func() { done <- svc.Stop() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("stop did not unblock the loops")
	}
	if svc.Stats().Running {
		t.Fatalf("service still running after stop")
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(prompts) == 0 {
		t.Fatalf("oracle never called")
	}
	select {
	case err := <-svc.Err():
		t.Fatalf("unexpected loop error: %v", err)
	default:
	}
}

func TestReceiveLoopReportsClosedChannel(t *testing.T) {
	testlog.Start(t)
	svc := newTestService(t, testConfig(), staticOracle(), "4a3f")
	ch := ipc.NewMemChannel(0)
	_ = ch.Close()
	err := svc.receiveLoop(context.Background(), ch)
	if !errors.Is(err, ipc.ErrChannelClosed) {
		t.Fatalf("expected ErrChannelClosed, got %v", err)
	}
}
