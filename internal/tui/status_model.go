package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dcastanera/possync/internal/service"
	"github.com/dcastanera/possync/models"
)

// pollInterval is how often the dashboard re-reads the coordinator state.
const pollInterval = 500 * time.Millisecond

type statusModel struct {
	ctx         context.Context
	coordinator service.Coordinator
	syncService service.SyncService

	spinner    spinner.Model
	state      models.SessionState
	lastResult *models.TriggerResult
	lastPurged int64
	notice     string
}

func newStatusModel(ctx context.Context, coordinator service.Coordinator, syncService service.SyncService) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:         ctx,
		coordinator: coordinator,
		syncService: syncService,
		spinner:     s,
		state:       coordinator.State(),
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.sync):
			return m, m.triggerSync()
		case key.Matches(msg, keys.fullSync):
			return m, m.forceFullSync()
		case key.Matches(msg, keys.purge):
			return m, m.purgeSynced()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.readState(), m.tick())

	case stateMsg:
		m.state = msg.state
		return m, nil

	case syncDoneMsg:
		result := msg.result
		m.lastResult = &result
		if result.Success && result.Sync != nil {
			m.notice = fmt.Sprintf("synced %d sale(s)", result.Sync.SyncedCount)
		} else if result.Reason != "" {
			m.notice = "sync skipped: " + result.Reason
		}
		return m, m.readState()

	case purgeDoneMsg:
		if msg.err != nil {
			m.notice = "purge failed: " + msg.err.Error()
		} else {
			m.lastPurged = msg.purged
			m.notice = fmt.Sprintf("purged %d synced sale(s)", msg.purged)
		}
		return m, m.readState()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m statusModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("OFFLINE SYNC"))
	b.WriteString("\n\n")

	if m.state.IsOnline {
		b.WriteString("Server:  " + onlineStyle.Render("online"))
	} else {
		b.WriteString("Server:  " + offStyle.Render("offline"))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Queue:   %d pending sale(s)\n", m.state.PendingCount))

	switch {
	case m.state.IsSyncing:
		b.WriteString("Sync:    " + m.spinner.View() + " uploading queued sales...\n")
	case m.state.LastSyncTime != nil:
		b.WriteString("Sync:    last run " + m.state.LastSyncTime.Format("15:04:05") + "\n")
	default:
		b.WriteString("Sync:    never\n")
	}

	if m.state.IsLoadingCatalog {
		b.WriteString("Catalog: " + m.spinner.View() + " " + renderProgress(m.state.CatalogProgress) + "\n")
	}

	if m.state.LastError != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.state.LastError) + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s: sync now │ f: full sync │ p: purge synced │ q: quit"))

	return appStyle.Render(b.String())
}

func renderProgress(p models.CatalogProgress) string {
	if p.Total <= 0 {
		return "downloading products..."
	}
	return fmt.Sprintf("downloading products %d/%d", p.Current, p.Total)
}

func (m statusModel) tick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m statusModel) readState() tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: m.coordinator.State()}
	}
}

func (m statusModel) triggerSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{result: m.coordinator.TriggerSync(m.ctx)}
	}
}

func (m statusModel) forceFullSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{result: m.coordinator.ForceFullSync(m.ctx)}
	}
}

func (m statusModel) purgeSynced() tea.Cmd {
	return func() tea.Msg {
		purged, err := m.syncService.PurgeSynced(m.ctx)
		return purgeDoneMsg{purged: purged, err: err}
	}
}
