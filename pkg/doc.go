// Package pkg provides the libraries behind squarecode, a square code text
// encryptor.
//
// # Overview
//
// Text is stripped of whitespace, written row by row into the smallest
// near-square grid that holds it, and read back column by column:
//
//	"chill out" → chillout → c h i
//	                          l l o
//	                          u t ·  → "clu hlt io"
//
// The pkg directory is organized as:
//
//  1. [cipher] - Normalization, grid construction and column reading
//  2. [pipeline] - Cached encryption runs (normalize → lookup → encrypt → store)
//  3. [cache] - Result caches backed by files, Redis, or nothing
//  4. [errors] - Coded errors shared by the CLI and HTTP API
//  5. [observability] - Hooks for cipher, cache and HTTP events
//  6. [buildinfo] - Version information injected at build time
//
// # Usage
//
//	out, err := cipher.Encrypt("if man was meant to stay on the ground")
//
// Callers that want caching go through the pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Encrypt(ctx, pipeline.Options{Text: &text})
//
// [cipher]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/cipher
// [pipeline]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/cache
// [errors]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/errors
// [observability]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/kateryna-senchenko/textencryptor/pkg/buildinfo
package pkg
