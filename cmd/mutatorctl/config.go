package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/hexmutator/internal/coordinator"
	"github.com/danmuck/hexmutator/internal/corrid"
	"github.com/danmuck/hexmutator/internal/oracle"
)

type fileConfig struct {
	FuzzingTarget        string  `toml:"fuzzing_target"`
	ChannelKey           int     `toml:"channel_key"`
	ChannelExclusive     bool    `toml:"channel_exclusive"`
	ChannelRemoveOnClose bool    `toml:"channel_remove_on_close"`
	ChannelOpenAttempts  int     `toml:"channel_open_attempts"`
	FuzzerCacheCapacity  int     `toml:"fuzzer_cache_capacity"`
	LocalPoolCapacity    int     `toml:"local_pool_capacity"`
	IDStep               int     `toml:"id_step"`
	IDMode               string  `toml:"id_mode"`
	IDMapCapacity        int     `toml:"id_map_capacity"`
	OutboundLimit        int     `toml:"outbound_limit"`
	DropEmptySeeds       bool    `toml:"drop_empty_seeds"`
	RoundInterval        string  `toml:"round_interval"`
	OracleProvider       string  `toml:"oracle_provider"`
	OracleURL            string  `toml:"oracle_url"`
	OracleModel          string  `toml:"oracle_model"`
	OracleAPIKeyEnv      string  `toml:"oracle_api_key_env"`
	OracleBatch          int     `toml:"oracle_batch"`
	OracleMaxTokens      int     `toml:"oracle_max_tokens"`
	OracleTemperature    float64 `toml:"oracle_temperature"`
	OracleTopP           float64 `toml:"oracle_top_p"`
	OracleTopK           int     `toml:"oracle_top_k"`
	OracleTimeout        string  `toml:"oracle_timeout"`
	AdminListenAddr      string  `toml:"admin_listen_addr"`
	BackoffInitial       string  `toml:"backoff_initial"`
	BackoffMax           string  `toml:"backoff_max"`
}

func loadConfig(path string) (coordinator.Config, error) {
	cfg := coordinator.DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return coordinator.Config{}, fmt.Errorf("load mutator config: %w", err)
	}

	if meta.IsDefined("fuzzing_target") {
		cfg.Target = strings.TrimSpace(raw.FuzzingTarget)
	}

	if meta.IsDefined("channel_key") {
		cfg.Channel.Key = raw.ChannelKey
	}
	if meta.IsDefined("channel_exclusive") {
		cfg.Channel.Exclusive = raw.ChannelExclusive
	}
	if meta.IsDefined("channel_remove_on_close") {
		cfg.Channel.RemoveOnClose = raw.ChannelRemoveOnClose
	}
	if meta.IsDefined("channel_open_attempts") {
		cfg.Channel.OpenAttempts = raw.ChannelOpenAttempts
	}

	if meta.IsDefined("fuzzer_cache_capacity") {
		cfg.Store.FuzzerCacheCapacity = raw.FuzzerCacheCapacity
	}
	if meta.IsDefined("local_pool_capacity") {
		cfg.Store.LocalPoolCapacity = raw.LocalPoolCapacity
	}
	if meta.IsDefined("id_map_capacity") {
		cfg.Store.IDMapCapacity = raw.IDMapCapacity
	}
	if meta.IsDefined("outbound_limit") {
		cfg.Store.OutboundLimit = raw.OutboundLimit
	}

	if meta.IsDefined("id_step") {
		cfg.IDStep = raw.IDStep
	}
	if meta.IsDefined("id_mode") {
		mode, err := corrid.ParseMode(raw.IDMode)
		if err != nil {
			return coordinator.Config{}, fmt.Errorf("parse id_mode: %w", err)
		}
		cfg.IDMode = mode
	}
	if meta.IsDefined("drop_empty_seeds") {
		cfg.DropEmptySeeds = raw.DropEmptySeeds
	}
	if meta.IsDefined("round_interval") {
		d, err := parseDuration("round_interval", raw.RoundInterval)
		if err != nil {
			return coordinator.Config{}, err
		}
		cfg.RoundInterval = d
	}

	if meta.IsDefined("oracle_provider") {
		cfg.Oracle.Provider = oracle.Provider(strings.ToLower(strings.TrimSpace(raw.OracleProvider)))
	}
	if meta.IsDefined("oracle_url") {
		cfg.Oracle.BaseURL = strings.TrimSpace(raw.OracleURL)
	}
	if meta.IsDefined("oracle_model") {
		cfg.Oracle.Model = strings.TrimSpace(raw.OracleModel)
	}
	if meta.IsDefined("oracle_api_key_env") {
		if name := strings.TrimSpace(raw.OracleAPIKeyEnv); name != "" {
			cfg.Oracle.APIKey = os.Getenv(name)
		}
	}
	if meta.IsDefined("oracle_batch") {
		cfg.Oracle.Batch = raw.OracleBatch
	}
	if meta.IsDefined("oracle_max_tokens") {
		cfg.Oracle.MaxTokens = raw.OracleMaxTokens
	}
	if meta.IsDefined("oracle_temperature") {
		cfg.Oracle.Temperature = raw.OracleTemperature
	}
	if meta.IsDefined("oracle_top_p") {
		cfg.Oracle.TopP = raw.OracleTopP
	}
	if meta.IsDefined("oracle_top_k") {
		cfg.Oracle.TopK = raw.OracleTopK
	}
	if meta.IsDefined("oracle_timeout") {
		d, err := parseDuration("oracle_timeout", raw.OracleTimeout)
		if err != nil {
			return coordinator.Config{}, err
		}
		cfg.Oracle.Timeout = d
	}

	if meta.IsDefined("admin_listen_addr") {
		cfg.AdminListenAddr = strings.TrimSpace(raw.AdminListenAddr)
	}

	if meta.IsDefined("backoff_initial") {
		d, err := parseDuration("backoff_initial", raw.BackoffInitial)
		if err != nil {
			return coordinator.Config{}, err
		}
		cfg.Channel.Backoff.InitialDelay = d
		cfg.OracleBackoff.InitialDelay = d
	}
	if meta.IsDefined("backoff_max") {
		d, err := parseDuration("backoff_max", raw.BackoffMax)
		if err != nil {
			return coordinator.Config{}, err
		}
		cfg.Channel.Backoff.MaxDelay = d
		cfg.OracleBackoff.MaxDelay = d
	}

	return cfg, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
