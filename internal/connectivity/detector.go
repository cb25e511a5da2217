package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/models"
)

const (
	// defaultProbeInterval is used when the configured interval is zero or
	// negative.
	defaultProbeInterval = 5 * time.Second

	// offlineThreshold is the number of consecutive failed probes required to
	// flip the state to offline. Going back online takes a single success.
	offlineThreshold = 2
)

type detector struct {
	probe    ProbeFunc
	interval time.Duration
	logger   *logger.Logger

	mu               sync.Mutex
	online           bool
	lastTransitionAt time.Time
	failures         int
	subscribers      map[int]chan models.ConnectivitySnapshot
	nextSubscriberID int

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDetector creates a Detector that runs probe every interval once started.
// The detector starts in the offline state; the first successful probe flips
// it online.
func NewDetector(probe ProbeFunc, interval time.Duration, logger *logger.Logger) Detector {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &detector{
		probe:       probe,
		interval:    interval,
		logger:      logger,
		subscribers: map[int]chan models.ConnectivitySnapshot{},
	}
}

func (d *detector) Start(ctx context.Context) {
	d.Stop()

	d.runMu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	d.runMu.Unlock()

	go func() {
		defer d.wg.Done()
		t := time.NewTicker(d.interval)
		defer t.Stop()

		// Probe once up front so callers get a real state without waiting a
		// full interval.
		d.ProbeNow(loopCtx)

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				d.ProbeNow(loopCtx)
			}
		}
	}()
}

func (d *detector) Stop() {
	d.runMu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}

func (d *detector) IsOnline() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.online
}

func (d *detector) Snapshot() models.ConnectivitySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.ConnectivitySnapshot{
		IsOnline:         d.online,
		LastTransitionAt: d.lastTransitionAt,
	}
}

func (d *detector) ProbeNow(ctx context.Context) bool {
	err := d.probe(ctx)

	d.mu.Lock()

	var transitioned bool
	if err == nil {
		d.failures = 0
		if !d.online {
			d.online = true
			d.lastTransitionAt = time.Now()
			transitioned = true
		}
	} else {
		d.failures++
		if d.online && d.failures >= offlineThreshold {
			d.online = false
			d.lastTransitionAt = time.Now()
			transitioned = true
		}
	}

	snapshot := models.ConnectivitySnapshot{
		IsOnline:         d.online,
		LastTransitionAt: d.lastTransitionAt,
	}
	online := d.online
	d.mu.Unlock()

	if transitioned {
		d.logger.Info().
			Str("func", "detector.ProbeNow").
			Bool("online", snapshot.IsOnline).
			Msg("connectivity state changed")
		d.notify(snapshot)
	}

	return online
}

func (d *detector) Subscribe() (<-chan models.ConnectivitySnapshot, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextSubscriberID
	d.nextSubscriberID++

	ch := make(chan models.ConnectivitySnapshot, 1)
	d.subscribers[id] = ch

	unsubscribe := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if sub, ok := d.subscribers[id]; ok {
			delete(d.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

func (d *detector) notify(snapshot models.ConnectivitySnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ch := range d.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Subscriber still holds an unread transition. Replace it so the
			// channel always carries the latest state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
