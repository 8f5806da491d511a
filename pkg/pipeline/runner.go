package pipeline

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/kateryna-senchenko/textencryptor/pkg/cache"
	"github.com/kateryna-senchenko/textencryptor/pkg/cipher"
	"github.com/kateryna-senchenko/textencryptor/pkg/observability"
)

// cacheKeyType labels cache events emitted by the runner.
const cacheKeyType = "cipher"

// Runner executes encryption requests against a cache.
//
// The Runner holds no per-request state, so one Runner may serve many
// goroutines as long as its Cache is concurrency-safe.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Encrypt validates opts, serves the ciphertext from cache when possible and
// otherwise computes and caches it. Cache failures are logged, never returned.
func (r *Runner) Encrypt(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	normalized := cipher.Normalize(*opts.Text)
	length := utf8.RuneCountInString(normalized)
	key := r.Keyer.CipherKey(normalized)
	hooks := observability.Cache()

	if !opts.Refresh && length > 0 {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "err", err)
		case hit && !plausibleCiphertext(data, length):
			hooks.OnCacheMiss(ctx, cacheKeyType)
			r.Logger.Warn("discarding invalid cache entry", "length", length, "bytes", len(data))
		case hit:
			hooks.OnCacheHit(ctx, cacheKeyType)
			rows, cols := cipher.Dimensions(length)
			result := &Result{
				Ciphertext: string(data),
				Rows:       rows,
				Columns:    cols,
				Length:     length,
				CacheHit:   true,
				Duration:   time.Since(start),
			}
			r.Logger.Debug("served from cache", "length", length, "duration", result.Duration)
			return result, nil
		default:
			hooks.OnCacheMiss(ctx, cacheKeyType)
		}
	}

	out, err := cipher.EncryptContext(ctx, normalized)
	if err != nil {
		r.Logger.Debug("rejected input", "err", err)
		return nil, err
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = cache.TTLCipher
	}
	if err := r.Cache.Set(ctx, key, []byte(out), ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, cacheKeyType, len(out))
	}

	rows, cols := cipher.Dimensions(length)
	result := &Result{
		Ciphertext: out,
		Rows:       rows,
		Columns:    cols,
		Length:     length,
		Duration:   time.Since(start),
	}
	r.Logger.Info("encrypted text",
		"length", result.Length,
		"rows", result.Rows,
		"columns", result.Columns,
		"duration", result.Duration)
	return result, nil
}

// plausibleCiphertext reports whether data has the shape of a ciphertext for a
// normalized text of length runes: one space-separated group per column, each
// as tall as that column of the grid.
func plausibleCiphertext(data []byte, length int) bool {
	if !utf8.Valid(data) {
		return false
	}
	_, cols := cipher.Dimensions(length)
	groups := strings.Split(string(data), " ")
	if len(groups) != cols {
		return false
	}
	for c, g := range groups {
		if utf8.RuneCountInString(g) != (length-c+cols-1)/cols {
			return false
		}
	}
	return true
}
