package connectivity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastanera/possync/internal/logger"
)

// scriptedProbe replays a fixed sequence of probe results, repeating the last
// one once the script is exhausted.
type scriptedProbe struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (p *scriptedProbe) probe(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.calls
	if i >= len(p.results) {
		i = len(p.results) - 1
	}
	p.calls++
	return p.results[i]
}

func newTestDetector(results ...error) (Detector, *scriptedProbe) {
	probe := &scriptedProbe{results: results}
	return NewDetector(probe.probe, time.Hour, logger.Nop()), probe
}

func TestDetector_StartsOffline(t *testing.T) {
	d, _ := newTestDetector(assert.AnError)

	assert.False(t, d.IsOnline())
	assert.True(t, d.Snapshot().LastTransitionAt.IsZero())
}

func TestDetector_SingleSuccessGoesOnline(t *testing.T) {
	d, _ := newTestDetector(nil)

	online := d.ProbeNow(context.Background())

	assert.True(t, online)
	assert.True(t, d.IsOnline())
	assert.False(t, d.Snapshot().LastTransitionAt.IsZero())
}

func TestDetector_SingleFailureDoesNotGoOffline(t *testing.T) {
	d, _ := newTestDetector(nil, assert.AnError, nil)

	d.ProbeNow(context.Background())
	assert.True(t, d.IsOnline())

	// One blip is damped.
	d.ProbeNow(context.Background())
	assert.True(t, d.IsOnline())

	d.ProbeNow(context.Background())
	assert.True(t, d.IsOnline())
}

func TestDetector_ConsecutiveFailuresGoOffline(t *testing.T) {
	d, _ := newTestDetector(nil, assert.AnError, assert.AnError)

	d.ProbeNow(context.Background())
	require.True(t, d.IsOnline())

	d.ProbeNow(context.Background())
	d.ProbeNow(context.Background())

	assert.False(t, d.IsOnline())
}

func TestDetector_SuccessResetsFailureStreak(t *testing.T) {
	d, _ := newTestDetector(nil, assert.AnError, nil, assert.AnError, assert.AnError)

	for i := 0; i < 3; i++ {
		d.ProbeNow(context.Background())
	}
	require.True(t, d.IsOnline())

	// Two fresh failures after the reset flip it offline.
	d.ProbeNow(context.Background())
	d.ProbeNow(context.Background())
	assert.False(t, d.IsOnline())
}

func TestDetector_SubscribeReceivesTransitions(t *testing.T) {
	d, _ := newTestDetector(nil, assert.AnError, assert.AnError)

	ch, unsubscribe := d.Subscribe()
	defer unsubscribe()

	d.ProbeNow(context.Background())

	select {
	case snapshot := <-ch:
		assert.True(t, snapshot.IsOnline)
	case <-time.After(time.Second):
		t.Fatal("expected online transition")
	}

	d.ProbeNow(context.Background())
	d.ProbeNow(context.Background())

	select {
	case snapshot := <-ch:
		assert.False(t, snapshot.IsOnline)
	case <-time.After(time.Second):
		t.Fatal("expected offline transition")
	}
}

func TestDetector_SlowSubscriberKeepsLatestState(t *testing.T) {
	d, _ := newTestDetector(nil, assert.AnError, assert.AnError)

	ch, unsubscribe := d.Subscribe()
	defer unsubscribe()

	// Online then offline without the subscriber draining in between: only
	// the latest transition should be waiting.
	d.ProbeNow(context.Background())
	d.ProbeNow(context.Background())
	d.ProbeNow(context.Background())

	snapshot := <-ch
	assert.False(t, snapshot.IsOnline)

	select {
	case <-ch:
		t.Fatal("expected a single buffered transition")
	default:
	}
}

func TestDetector_UnsubscribeClosesChannel(t *testing.T) {
	d, _ := newTestDetector(nil)

	ch, unsubscribe := d.Subscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Double unsubscribe is a no-op.
	unsubscribe()

	// Transitions after unsubscribe must not panic on the closed channel.
	d.ProbeNow(context.Background())
}

func TestDetector_StartProbesImmediately(t *testing.T) {
	probe := &scriptedProbe{results: []error{nil}}
	d := NewDetector(probe.probe, time.Hour, logger.Nop())

	ch, unsubscribe := d.Subscribe()
	defer unsubscribe()

	d.Start(context.Background())
	defer d.Stop()

	select {
	case snapshot := <-ch:
		assert.True(t, snapshot.IsOnline)
	case <-time.After(time.Second):
		t.Fatal("expected initial probe on start")
	}
}

func TestDetector_StopIsIdempotent(t *testing.T) {
	d, _ := newTestDetector(nil)

	d.Stop()
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
