package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubIndexer struct {
	failures int
	calls    int
}

func (s *stubIndexer) EnsureIndexes(context.Context) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("index build failed")
	}
	return nil
}

func fastBackoff() BackoffConfig {
	return BackoffConfig{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
}

func TestEnsureIndexes_RetriesUntilPingSucceeds(t *testing.T) {
	pings := 0
	ping := func(context.Context) error {
		pings++
		if pings < 3 {
			return errors.New("server selection timeout")
		}
		return nil
	}
	users := &stubIndexer{}

	if err := EnsureIndexes(context.Background(), ping, zerolog.Nop(), fastBackoff(), users); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pings != 3 {
		t.Fatalf("expected 3 pings, got %d", pings)
	}
	if users.calls != 1 {
		t.Fatalf("expected index build once deployment is up, got %d calls", users.calls)
	}
}

func TestEnsureIndexes_RetriesOnlyFailedIndexers(t *testing.T) {
	ok := func(context.Context) error { return nil }
	users := &stubIndexer{failures: 2}
	tasks := &stubIndexer{}

	if err := EnsureIndexes(context.Background(), ok, zerolog.Nop(), fastBackoff(), users, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.calls != 3 {
		t.Fatalf("expected users indexer to run 3 times, got %d", users.calls)
	}
	if tasks.calls != 1 {
		t.Fatalf("expected tasks indexer to run once, got %d", tasks.calls)
	}
}

func TestEnsureIndexes_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	down := func(context.Context) error {
		cancel()
		return errors.New("no reachable servers")
	}
	users := &stubIndexer{}

	err := EnsureIndexes(ctx, down, zerolog.Nop(), BackoffConfig{BaseDelay: time.Hour}, users)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if users.calls != 0 {
		t.Fatalf("expected no index build while deployment is down, got %d", users.calls)
	}
}

func TestBackoffConfig_Next(t *testing.T) {
	b := BackoffConfig{BaseDelay: time.Second, MaxDelay: 3 * time.Second}

	var got []time.Duration
	var d time.Duration
	for i := 0; i < 4; i++ {
		d = b.next(d)
		got = append(got, d)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
