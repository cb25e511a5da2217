package tui

import "github.com/dcastanera/possync/models"

type tickMsg struct{}

type stateMsg struct {
	state models.SessionState
}

type syncDoneMsg struct {
	result models.TriggerResult
}

type purgeDoneMsg struct {
	purged int64
	err    error
}
