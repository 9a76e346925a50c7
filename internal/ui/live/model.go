package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultTick = 200 * time.Millisecond

// Options configures the live evaluation view.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model is the Bubble Tea model for a running evaluation: a header with
// run identity, status counts, the per-sample table and a last-event
// footer. Elapsed times advance on a timer even between sample events.
type Model struct {
	state    State
	table    table.Model
	events   <-chan Event
	interval time.Duration
	now      time.Time
	noColor  bool
}

// NewModel builds the view over an event stream.
func NewModel(events <-chan Event, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = defaultTick
	}
	sampleTable := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	sampleTable.SetStyles(tableStyles(opts.NoColor))
	return Model{
		table:    sampleTable,
		events:   events,
		interval: interval,
		now:      time.Now(),
		noColor:  opts.NoColor,
	}
}

// eventMsg delivers one run event to the Bubble Tea loop.
type eventMsg struct{ event Event }

// tickMsg advances the clock used for elapsed columns.
type tickMsg time.Time

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.nextEvent(), m.nextTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case eventMsg:
		m.consume(typed.event)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor))
		return m, m.nextEvent()
	case tickMsg:
		m.now = time.Time(typed)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor))
		return m, m.nextTick()
	}
	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.now, m.noColor),
		renderSummary(m.state, m.noColor),
		renderDatasetLine(m.state, m.noColor),
		m.table.View(),
		renderFooter(m.state, m.noColor),
	)
}

// consume folds one run event into the view state.
func (m *Model) consume(event Event) {
	switch event.Kind {
	case EventRunStart:
		m.state.RunID = event.RunID
		m.state.Model = event.Model
		m.state.DatasetPath = event.DatasetPath
		m.state.Total = event.Total
		if m.state.StartedAt.IsZero() {
			m.state.StartedAt = time.Now()
		}
	case EventSample:
		m.state = Reduce(m.state, event.Sample)
	case EventRunEnd:
		m.state.Finished = true
	}
}

// nextEvent blocks on the event channel; a closed channel quits the UI.
func (m Model) nextEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, open := <-events
		if !open {
			return tea.Quit()
		}
		return eventMsg{event: event}
	}
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
