package idgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// maxAttempts bounds the collision retry loop.
	maxAttempts = 100
	// retryDelay is slept between attempts so the next time sample
	// lands on a different millisecond.
	retryDelay = time.Millisecond
	// suffixRange is the span of the 3-digit suffix.
	suffixRange = 1000
)

// ExistsFunc reports whether a candidate id is already taken, typically by
// probing the product or order table. An error aborts generation.
type ExistsFunc func(id string) (bool, error)

// Options supplies the generator's sources of time and randomness. Any nil
// field falls back to the system clock, time.Sleep and math/rand, so the
// zero value is usable in production and tests can pin every source.
type Options struct {
	Now   func() time.Time
	Sleep func(time.Duration)
	Rand  func(n int) int
}

// Generator mints human-facing ids of the form "CODE-NNN": a 3-letter
// category code and a 3-digit suffix taken from the low-order digits of
// the current time. Ids are best-effort unique, not guaranteed: the
// bounded retry loop probes a store for collisions and degrades to a
// random suffix when every attempt is taken. At the scale of a single
// retail database this is an accepted residual risk.
type Generator struct {
	table *CodeTable
	now   func() time.Time
	sleep func(time.Duration)
	rand  func(n int) int
}

func NewGenerator(table *CodeTable, opts Options) *Generator {
	if table == nil {
		table = DefaultCodeTable()
	}
	g := &Generator{
		table: table,
		now:   opts.Now,
		sleep: opts.Sleep,
		rand:  opts.Rand,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.sleep == nil {
		g.sleep = time.Sleep
	}
	if g.rand == nil {
		g.rand = rand.Intn
	}
	return g
}

// Table returns the code table backing this generator.
func (g *Generator) Table() *CodeTable {
	return g.table
}

// Generate returns a "CODE-NNN" id for the category without any collision
// check. The suffix is the current time in milliseconds modulo 1000.
func (g *Generator) Generate(category string) string {
	return format(g.table.Resolve(category), g.suffix())
}

// Unique returns a "CODE-NNN" id that the exists probe does not report as
// taken, retrying with fresh time samples up to 100 times. When every
// attempt collides it falls back to a random suffix in [1, 999] without a
// further probe. A probe error aborts generation.
func (g *Generator) Unique(category string, exists ExistsFunc) (string, error) {
	code := g.table.Resolve(category)
	if exists == nil {
		return format(code, g.suffix()), nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := format(code, g.suffix())
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("could not check id %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		g.sleep(retryDelay)
	}

	return format(code, g.rand(suffixRange-1)+1), nil
}

// NumericSuffix extracts the 3-digit suffix of a generated id, for callers
// that key records on the number rather than the full string.
func NumericSuffix(id string) (int, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0, fmt.Errorf("id %q has no suffix", id)
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, fmt.Errorf("id %q has a non-numeric suffix", id)
	}
	return n, nil
}

func (g *Generator) suffix() int {
	return int(g.now().UnixMilli() % suffixRange)
}

func format(code string, suffix int) string {
	return fmt.Sprintf("%s-%03d", code, suffix)
}
