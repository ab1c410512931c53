package coordinator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/danmuck/hexmutator/internal/ipc"
	"github.com/danmuck/hexmutator/internal/observability"
	"github.com/danmuck/hexmutator/internal/protocol"
	"github.com/danmuck/hexmutator/internal/seedstore"
)

// receiveLoop alternates between waiting for a REQUEST and flushing the
// outbound queue. Only REQUEST messages are ever read from the channel.
func (s *Service) receiveLoop(ctx context.Context, ch ipc.Channel) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	attempt := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		msg, err := ch.Receive(protocol.TypeRequest)
		if err != nil {
			if isShutdown(ctx, err) {
				return nil
			}
			if errors.Is(err, ipc.ErrChannelClosed) {
				return err
			}
			attempt++
			delay := ipc.NextBackoffDelay(s.cfg.Channel.Backoff, attempt, rng)
			s.logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("coordinator.Service.receiveLoop receive failed")
			if !sleepCtx(ctx, delay) {
				return nil
			}
			continue
		}
		attempt = 0

		s.HandleRequest(msg)
		if _, err := s.Flush(ch); err != nil {
			if isShutdown(ctx, err) {
				return nil
			}
			if errors.Is(err, ipc.ErrChannelClosed) {
				return err
			}
		}
	}
}

// HandleRequest offers the seed carried by a REQUEST into the fuzzer cache.
// Empty and malformed payloads are dropped.
func (s *Service) HandleRequest(msg protocol.Message) {
	s.requests.Add(1)
	if len(msg.Payload) == 0 {
		observability.RecordFuzzerRequest("empty")
		return
	}
	seed, err := protocol.DecodeRequest(msg)
	if err != nil {
		observability.RecordFuzzerRequest("malformed")
		s.logger.Debug().
			Err(err).
			Int("payload_len", len(msg.Payload)).
			Msg("coordinator.Service.HandleRequest dropped seed")
		return
	}
	if s.store.Fuzzer.Contains(seed) {
		observability.RecordFuzzerRequest("duplicate")
		return
	}
	if reset := s.store.Fuzzer.Offer(seed); reset {
		s.logger.Debug().Msg("coordinator.Service.HandleRequest fuzzer cache reset")
	}
	observability.RecordFuzzerRequest("accepted")
	observability.RecordStoreSize("fuzzer", s.store.Fuzzer.Len())
}

// Flush drains the outbound queue into SEED messages in FIFO order. Seeds
// that could not be sent are put back at the front for the next pass.
func (s *Service) Flush(ch ipc.Channel) (int, error) {
	items := s.drainOutbound()
	if len(items) == 0 {
		return 0, nil
	}

	msgs := make([]protocol.Message, 0, len(items))
	batch := make([]seedstore.PendingSeed, 0, len(items))
	for _, item := range items {
		msg, err := protocol.EncodeSeed(item.ID, item.Seed)
		if err != nil {
			s.logger.Error().Err(err).Uint32("id", uint32(item.ID)).Msg("coordinator.Service.Flush unencodable seed")
			continue
		}
		msgs = append(msgs, msg)
		batch = append(batch, item)
	}

	sent, err := ch.Send(msgs...)
	if sent > 0 {
		s.seedsSent.Add(uint64(sent))
		observability.RecordSeedsSent(sent)
	}
	if err != nil {
		s.store.Outbound.Requeue(batch[sent:]...)
		observability.RecordSendFailure(sendFailureReason(err))
		s.logger.Warn().
			Err(err).
			Int("sent", sent).
			Int("requeued", len(batch)-sent).
			Msg("coordinator.Service.Flush send failed")
	}
	observability.RecordStoreSize("outbound", s.store.Outbound.Len())
	return sent, err
}

func (s *Service) drainOutbound() []seedstore.PendingSeed {
	var out []seedstore.PendingSeed
	for {
		item, ok := s.store.Outbound.Pop()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

func sendFailureReason(err error) string {
	switch {
	case errors.Is(err, ipc.ErrWouldBlock):
		return "would_block"
	case errors.Is(err, ipc.ErrChannelClosed):
		return "closed"
	default:
		return "transport"
	}
}
