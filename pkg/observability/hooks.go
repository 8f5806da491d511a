// Package observability provides hooks for metrics, tracing, and logging.
//
// The cipher and its collaborators never log directly. Instead they emit
// events through the hook interfaces defined here, and the application
// decides at startup what (if anything) receives them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main (or the CLI), never by libraries, so library
// packages stay free of any particular logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCipherHooks(&myCipherHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Cipher().OnEncryptStart(ctx, length)
//	// ... build grid, read columns ...
//	observability.Cipher().OnEncryptComplete(ctx, length, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Cipher Hooks
// =============================================================================

// CipherHooks receives events from the grid cipher.
type CipherHooks interface {
	// OnEncryptStart is called once the input has been normalized.
	// length is the number of non-whitespace characters.
	OnEncryptStart(ctx context.Context, length int)

	// OnGridBuilt is called after the grid has been sized and filled.
	OnGridBuilt(ctx context.Context, rows, columns, length int)

	// OnEncryptComplete is called when encryption finishes, successfully or not.
	OnEncryptComplete(ctx context.Context, length int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCipherHooks is a no-op implementation of CipherHooks.
type NoopCipherHooks struct{}

func (NoopCipherHooks) OnEncryptStart(context.Context, int)                          {}
func (NoopCipherHooks) OnGridBuilt(context.Context, int, int, int)                   {}
func (NoopCipherHooks) OnEncryptComplete(context.Context, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	cipherHooks CipherHooks = NoopCipherHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetCipherHooks registers custom cipher hooks.
// This should be called once at application startup before any encryption.
func SetCipherHooks(h CipherHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cipherHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Cipher returns the registered cipher hooks.
func Cipher() CipherHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cipherHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cipherHooks = NoopCipherHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
