package cache

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// closedAddr returns a loopback address with nothing listening on it.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: closedAddr(t)})
	if err == nil {
		c.Close()
		t.Fatal("NewRedisCache() should fail without a server")
	}
	if c != nil {
		t.Error("NewRedisCache() should return a nil cache on failure")
	}
	if !apperrors.Is(err, apperrors.ErrCodeCacheUnavailable) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeCacheUnavailable)
	}
}

func TestRedisLogger(t *testing.T) {
	var buf bytes.Buffer
	l := redisLogger{logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})}

	l.Printf(context.Background(), "redis: connection pool: failed to dial after %d attempts: %v", 1, "refused")

	out := buf.String()
	if !strings.Contains(out, "connection pool: failed to dial after 1 attempts: refused") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "redis: connection pool") {
		t.Errorf("package prefix should be trimmed: %q", out)
	}
}

func TestRedisLoggerQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := redisLogger{logger: log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})}

	l.Printf(context.Background(), "redis: dial failed")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
}
