// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// mockBuilder fails its first `failures` builds.
type mockBuilder struct {
	mu       sync.Mutex
	calls    int
	failures int
	delay    time.Duration
	built    chan struct{}
}

func newMockBuilder(failures int) *mockBuilder {
	return &mockBuilder{failures: failures, built: make(chan struct{}, 16)}
}

func (m *mockBuilder) Build(ctx context.Context) error {
	m.mu.Lock()
	m.calls++
	n := m.calls
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}
	if n <= m.failures {
		return errors.New("catalog is empty")
	}
	m.built <- struct{}{}
	return nil
}

func (m *mockBuilder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockBuilder) waitBuilt(t *testing.T) {
	t.Helper()
	select {
	case <-m.built:
	case <-time.After(2 * time.Second):
		t.Fatal("no successful build within 2s")
	}
}

func runService(t *testing.T, svc *IndexService) (cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	t.Cleanup(cancel)
	return cancel, errCh
}

func TestIndexService_BuildOnStartup(t *testing.T) {
	builder := newMockBuilder(0)
	svc := NewIndexService(builder, IndexServiceConfig{BuildOnStartup: true}, zerolog.Nop())

	cancel, done := runService(t, svc)
	builder.waitBuilt(t)
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if got := builder.Calls(); got != 1 {
		t.Errorf("Build() called %d times, want 1", got)
	}
	if svc.String() != "index-service" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestIndexService_NoStartupBuild(t *testing.T) {
	builder := newMockBuilder(0)
	svc := NewIndexService(builder, IndexServiceConfig{}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if got := builder.Calls(); got != 0 {
		t.Errorf("Build() called %d times, want 0", got)
	}
}

func TestIndexService_Trigger(t *testing.T) {
	builder := newMockBuilder(0)
	svc := NewIndexService(builder, IndexServiceConfig{BuildOnStartup: true}, zerolog.Nop())

	runService(t, svc)
	builder.waitBuilt(t)

	if !svc.Trigger() {
		t.Fatal("Trigger() = false on an idle service")
	}
	builder.waitBuilt(t)

	if got := builder.Calls(); got != 2 {
		t.Errorf("Build() called %d times, want 2", got)
	}
}

func TestIndexService_TriggerCoalesces(t *testing.T) {
	svc := NewIndexService(newMockBuilder(0), IndexServiceConfig{}, zerolog.Nop())

	// not serving, so the first request stays pending
	if !svc.Trigger() {
		t.Error("first Trigger() = false, want true")
	}
	if svc.Trigger() {
		t.Error("second Trigger() = true, want false while one is pending")
	}
}

func TestIndexService_Refresh(t *testing.T) {
	builder := newMockBuilder(0)
	svc := NewIndexService(builder, IndexServiceConfig{RefreshInterval: 20 * time.Millisecond}, zerolog.Nop())

	runService(t, svc)
	builder.waitBuilt(t)
	builder.waitBuilt(t)
}

func TestIndexService_RetriesUntilFirstSnapshot(t *testing.T) {
	builder := newMockBuilder(2)
	svc := NewIndexService(builder, IndexServiceConfig{
		BuildOnStartup: true,
		RetryInterval:  10 * time.Millisecond,
	}, zerolog.Nop())

	runService(t, svc)
	builder.waitBuilt(t)

	if got := builder.Calls(); got != 3 {
		t.Errorf("Build() called %d times, want 3", got)
	}
}

func TestIndexService_NoRetryOnceBuilt(t *testing.T) {
	builder := newMockBuilder(0)
	svc := NewIndexService(builder, IndexServiceConfig{
		BuildOnStartup: true,
		RetryInterval:  10 * time.Millisecond,
	}, zerolog.Nop())

	runService(t, svc)
	builder.waitBuilt(t)

	builder.mu.Lock()
	builder.failures = 10
	builder.mu.Unlock()

	svc.Trigger()
	time.Sleep(80 * time.Millisecond)

	// startup + trigger; a failed rebuild keeps the old snapshot and is not retried
	if got := builder.Calls(); got != 2 {
		t.Errorf("Build() called %d times, want 2", got)
	}
}

func TestIndexService_CancelDuringBuild(t *testing.T) {
	builder := newMockBuilder(0)
	builder.delay = time.Second
	svc := NewIndexService(builder, IndexServiceConfig{BuildOnStartup: true}, zerolog.Nop())

	cancel, done := runService(t, svc)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Serve did not return promptly after cancel")
	}
}

type countingCache struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return 1
}

func TestCacheJanitorService(t *testing.T) {
	cache := &countingCache{}
	svc := NewCacheJanitorService(cache, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.calls < 2 {
		t.Errorf("CleanupExpired called %d times, want >= 2", cache.calls)
	}
	if got := NewCacheJanitorService(cache, 0, zerolog.Nop()).interval; got != 5*time.Minute {
		t.Errorf("default interval = %v, want 5m", got)
	}
}
