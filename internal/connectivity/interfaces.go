// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

// Package connectivity tracks whether the point-of-sale backend is reachable.
//
// A [Detector] probes the backend on a fixed interval and publishes
// online/offline transitions to subscribers. Transitions are damped: a single
// failed probe does not flip the state to offline, so short network blips do
// not trigger spurious sync cycles.
package connectivity

import (
	"context"

	"github.com/dcastanera/possync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// ProbeFunc performs a single reachability check. A nil return means the
// backend answered.
type ProbeFunc func(ctx context.Context) error

// Detector reports backend reachability and notifies subscribers on
// transitions.
type Detector interface {
	// Start launches the background probe loop. It stops any previously
	// running loop first. The loop exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context)

	// Stop cancels the probe loop and blocks until it has fully exited.
	// Safe to call when the detector is not running.
	Stop()

	// IsOnline reports the current damped connectivity state.
	IsOnline() bool

	// Snapshot returns the current state together with the time of the last
	// transition.
	Snapshot() models.ConnectivitySnapshot

	// ProbeNow runs one probe immediately, outside the ticker schedule, and
	// applies its result to the damped state. Returns the state after the
	// probe.
	ProbeNow(ctx context.Context) bool

	// Subscribe registers a channel that receives a snapshot on every
	// online/offline transition. The returned function unsubscribes and
	// closes the channel. Slow subscribers miss intermediate transitions
	// rather than blocking the probe loop.
	Subscribe() (<-chan models.ConnectivitySnapshot, func())
}
