package coordinator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/hexmutator/internal/corrid"
	"github.com/danmuck/hexmutator/internal/ipc"
	"github.com/danmuck/hexmutator/internal/oracle"
	"github.com/danmuck/hexmutator/internal/seedstore"
)

var (
	ErrTargetRequired = errors.New("coordinator: fuzzing target required")
	ErrOracleRequired = errors.New("coordinator: oracle required")
	ErrAlreadyStarted = errors.New("coordinator: service already started")
)

// DefaultEchoInterval paces the echo oracle when no RoundInterval is set.
const DefaultEchoInterval = time.Second

// Config configures one coordinator process serving one fuzzer.
// RoundInterval pauses the generation loop between successful rounds.
type Config struct {
	Target          string
	Channel         ipc.Config
	Store           seedstore.Config
	IDStep          int
	IDMode          corrid.Mode
	DropEmptySeeds  bool
	RoundInterval   time.Duration
	Oracle          oracle.Config
	OracleBackoff   ipc.BackoffConfig
	AdminListenAddr string
}

func DefaultConfig() Config {
	return Config{
		Target:         "libpng",
		Channel:        ipc.DefaultConfig(),
		Store:          seedstore.DefaultConfig(),
		IDStep:         corrid.DefaultStep,
		IDMode:         corrid.ModeUnique,
		DropEmptySeeds: false,
		Oracle:         oracle.DefaultConfig(),
		OracleBackoff: ipc.BackoffConfig{
			InitialDelay: 500 * time.Millisecond,
			Multiplier:   2.0,
			MaxDelay:     30 * time.Second,
			Jitter:       true,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return ErrTargetRequired
	}
	if _, err := corrid.ParseMode(string(c.IDMode)); err != nil {
		return fmt.Errorf("coordinator: %w", err)
	}
	return nil
}
