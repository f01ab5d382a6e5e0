package watch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DebouncerConfig controls how change bursts are coalesced.
type DebouncerConfig struct {
	// QuietWindow is how long the docs tree must stay quiet before a
	// pending rebuild fires.
	QuietWindow time.Duration
	// MaxDelay caps how long a rebuild can be postponed by a steady stream
	// of changes.
	MaxDelay time.Duration
}

// Debouncer coalesces bursts of change notifications into single rebuilds:
// quiet window debounce with a max delay so a rebuild cannot be postponed
// indefinitely. It is safe to run as a single goroutine.
type Debouncer struct {
	cfg      DebouncerConfig
	requests chan string
	fire     func(reason string)
}

// NewDebouncer creates a debouncer that invokes fire from its Run goroutine.
func NewDebouncer(cfg DebouncerConfig, fire func(reason string)) (*Debouncer, error) {
	if cfg.QuietWindow <= 0 {
		return nil, errors.New("quiet window must be > 0")
	}
	if cfg.MaxDelay <= 0 {
		return nil, errors.New("max delay must be > 0")
	}
	if fire == nil {
		return nil, errors.New("fire callback is required")
	}
	return &Debouncer{cfg: cfg, requests: make(chan string, 64), fire: fire}, nil
}

// Request records a rebuild request. Non-blocking; when the buffer is full
// the request is dropped, which is safe because a rebuild is already pending.
func (d *Debouncer) Request(reason string) {
	select {
	case d.requests <- reason:
	default:
	}
}

// Run processes requests until the context is cancelled.
func (d *Debouncer) Run(ctx context.Context) error {
	quiet := time.NewTimer(time.Hour)
	stopTimer(quiet)
	deadline := time.NewTimer(time.Hour)
	stopTimer(deadline)
	defer quiet.Stop()
	defer deadline.Stop()

	pending := false
	requestCount := 0
	var lastReason string

	firePending := func() {
		stopTimer(quiet)
		stopTimer(deadline)
		reason := lastReason
		if requestCount > 1 {
			reason = fmt.Sprintf("%s (+%d more)", reason, requestCount-1)
		}
		pending = false
		requestCount = 0
		d.fire(reason)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case reason := <-d.requests:
			lastReason = reason
			requestCount++
			if !pending {
				pending = true
				resetTimer(deadline, d.cfg.MaxDelay)
			}
			resetTimer(quiet, d.cfg.QuietWindow)
		case <-quiet.C:
			if pending {
				firePending()
			}
		case <-deadline.C:
			if pending {
				firePending()
			}
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	stopTimer(t)
	t.Reset(d)
}
