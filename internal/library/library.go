// Package library ships one example seed per supported fuzzing target. The
// examples prime the local seed pool before the fuzzer has supplied anything.
package library

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/danmuck/hexmutator/internal/seedcodec"
)

var ErrUnknownTarget = errors.New("library: unknown fuzzing target")

var (
	loadOnce sync.Once
	seeds    map[string]string
)

func load() {
	loadOnce.Do(func() {
		seeds = make(map[string]string, len(promptSeeds))
		for target, text := range promptSeeds {
			seeds[target] = seedcodec.Canonicalize(text, target)
		}
	})
}

// Seed returns the canonical example seed for target.
func Seed(target string) (string, error) {
	load()
	key := strings.ToLower(strings.TrimSpace(target))
	seed, ok := seeds[key]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownTarget, target, strings.Join(Targets(), ", "))
	}
	return seed, nil
}

// Targets lists supported targets in sorted order.
func Targets() []string {
	out := make([]string, 0, len(promptSeeds))
	for target := range promptSeeds {
		out = append(out, target)
	}
	sort.Strings(out)
	return out
}
