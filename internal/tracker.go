package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

const DefaultRefreshInterval = 30 * time.Second

// DisplayFunc receives the freshly fetched record together with its derived
// display state.
type DisplayFunc func(model.OrderRecord, model.DisplayState)

// ErrorFunc receives the user-facing message for a failed lookup. The
// previous result has already been cleared when it runs.
type ErrorFunc func(message string)

// Tracker owns the most-recently-displayed order on behalf of the
// presentation layer. The record is replaced, never mutated; a lookup issued
// while another is pending supersedes it, and the superseded result is
// discarded even if it arrives later.
type Tracker struct {
	fetcher IFetcher
	logger  *zap.SugaredLogger

	display DisplayFunc
	fail    ErrorFunc

	gen uint64

	mu      sync.Mutex
	current *model.OrderRecord
}

func NewTracker(fetcher IFetcher, display DisplayFunc, fail ErrorFunc, logger *zap.SugaredLogger) *Tracker {
	return &Tracker{fetcher: fetcher, logger: logger, display: display, fail: fail}
}

// Track fetches ref and pushes the outcome to the display or error callback.
// A Track call issued while another is in flight wins: the older call's
// result is dropped on arrival.
func (t *Tracker) Track(ctx context.Context, ref string) {
	gen := atomic.AddUint64(&t.gen, 1)

	order, err := t.fetcher.FetchOrder(ctx, ref)

	if atomic.LoadUint64(&t.gen) != gen {
		t.logger.Debugf("Track %s: superseded, result discarded", ref)
		return
	}

	if err != nil {
		t.mu.Lock()
		t.current = nil
		t.mu.Unlock()
		t.fail(UserMessage(err))
		return
	}

	t.mu.Lock()
	o := order
	t.current = &o
	t.mu.Unlock()

	t.display(order, ResolveStatus(order.Status))
}

// Current returns the most recently displayed record, if any.
func (t *Tracker) Current() (model.OrderRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return model.OrderRecord{}, false
	}
	return *t.current, true
}

// Watch re-fetches the current order on a fixed interval until the status
// becomes terminal or ctx is cancelled. Ticks with no current order are
// skipped.
func (t *Tracker) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			order, ok := t.Current()
			if !ok {
				continue
			}
			if IsTerminalStatus(order.Status) {
				t.logger.Infof("Watch %s: status %q is terminal, stopping", order.OrderRef, order.Status)
				return
			}
			t.Track(ctx, order.OrderRef)
		}
	}
}
