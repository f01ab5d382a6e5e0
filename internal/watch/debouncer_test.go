package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebouncerValidation(t *testing.T) {
	fire := func(string) {}

	_, err := NewDebouncer(DebouncerConfig{QuietWindow: 0, MaxDelay: time.Second}, fire)
	assert.Error(t, err)

	_, err = NewDebouncer(DebouncerConfig{QuietWindow: time.Second, MaxDelay: 0}, fire)
	assert.Error(t, err)

	_, err = NewDebouncer(DebouncerConfig{QuietWindow: time.Second, MaxDelay: time.Second}, nil)
	assert.Error(t, err)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	fired := make(chan string, 8)
	d, err := NewDebouncer(DebouncerConfig{
		QuietWindow: 30 * time.Millisecond,
		MaxDelay:    time.Second,
	}, func(reason string) { fired <- reason })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Run(ctx) }()

	// A burst of requests within the quiet window fires exactly once.
	d.Request("write a.md")
	d.Request("write b.md")
	d.Request("write c.md")

	select {
	case reason := <-fired:
		assert.Contains(t, reason, "write c.md")
		assert.Contains(t, reason, "+2 more")
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}

	select {
	case reason := <-fired:
		t.Fatalf("unexpected second fire: %s", reason)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerMaxDelayCapsPostponement(t *testing.T) {
	fired := make(chan string, 8)
	d, err := NewDebouncer(DebouncerConfig{
		QuietWindow: 50 * time.Millisecond,
		MaxDelay:    150 * time.Millisecond,
	}, func(reason string) { fired <- reason })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Run(ctx) }()

	// Keep the tree noisy: requests arrive faster than the quiet window, so
	// only the max delay can force the build out.
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				d.Request("noise")
			}
		}
	}()
	defer close(stop)

	select {
	case <-fired:
		// Fired despite continuous noise.
	case <-time.After(time.Second):
		t.Fatal("max delay did not force a build")
	}
}

func TestDebouncerStopsOnContextCancel(t *testing.T) {
	d, err := NewDebouncer(DebouncerConfig{
		QuietWindow: time.Second,
		MaxDelay:    time.Second,
	}, func(string) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
