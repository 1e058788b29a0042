package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xdgmimer/internal/config"
	"xdgmimer/internal/controller"
	"xdgmimer/internal/domain"
	"xdgmimer/internal/eventbus"
	"xdgmimer/internal/ui/views"
)

// Model represents the UI state. All association data lives in the
// controller; the model only owns cursors, the text input and chrome.
type Model struct {
	bus  eventbus.EventBus
	ctrl *controller.Controller

	searchInput textinput.Model
	keys        KeyMap
	help        help.Model
	renderer    *views.Renderer
	pager       *SourcePager

	width  int
	height int

	cursor        int // candidate list cursor
	handlerCursor int // handler panel cursor

	sourcePaths    []string
	showCommandLog bool
	lastCommand    string
	statusMessage  string

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, ctrl *controller.Controller, cfg *config.Config, sourcePaths []string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search the mime type..."
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		bus:            bus,
		ctrl:           ctrl,
		searchInput:    ti,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		renderer:       views.NewRenderer(),
		pager:          NewSourcePager(),
		sourcePaths:    sourcePaths,
		showCommandLog: cfg.UISettings.ShowCommandLog,
	}

	// Bus dispatch is synchronous, so this fires inside the same
	// Update call that triggered the gateway command.
	bus.Subscribe(eventbus.EventCommandExecuted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CommandExecutedEvent); ok {
			outcome := "ok"
			if !event.Success {
				outcome = "failed"
			}
			m.lastCommand = fmt.Sprintf("%s %s %s: %s (%dms)",
				event.Tool, event.Verb, event.MimeType, outcome, event.Duration)
		}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.statusMessage = ""
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Sources) {
			if err := m.pager.ShowSources(m.sourcePaths); err != nil {
				log.Printf("Source pager failed: %v", err)
				m.statusMessage = fmt.Sprintf("Pager failed: %v", err)
			}
			return m, nil
		}

		if m.ctrl.Mode() == domain.ModeSearching {
			return m.updateSearching(msg)
		}
		return m.updateHandlerPanel(msg)
	}

	return m, nil
}

// updateSearching handles keys while the search entry is focused.
func (m *Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.View().Candidates)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		index := m.cursor
		if len(m.ctrl.View().Candidates) == 0 {
			index = domain.InvalidIndex
		}
		m.ctrl.Handle(domain.ItemSelectedEvent{Index: index})
		m.handlerCursor = 0
		m.searchInput.Blur()
		return m, nil
	}

	// Everything else is typed into the search entry; a changed value
	// becomes a new query immediately.
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if value := m.searchInput.Value(); value != before {
		m.ctrl.Handle(domain.SearchQueryChangedEvent{Query: value})
		m.cursor = 0
	}

	return m, cmd
}

// updateHandlerPanel handles keys while a mime type is selected.
func (m *Model) updateHandlerPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snapshot := m.ctrl.View()

	switch {
	case key.Matches(msg, m.keys.Up) || msg.String() == "k":
		if m.handlerCursor > 0 {
			m.handlerCursor--
		}

	case key.Matches(msg, m.keys.Down) || msg.String() == "j":
		if m.handlerCursor < len(snapshot.Handlers)-1 {
			m.handlerCursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.handlerCursor >= 0 && m.handlerCursor < len(snapshot.Handlers) {
			m.ctrl.Handle(domain.DefaultRequestedEvent{
				Handler: snapshot.Handlers[m.handlerCursor].ID,
			})
		}

	case key.Matches(msg, m.keys.Back):
		// Re-issuing the current query returns to Searching mode with
		// the candidate list recomputed.
		m.ctrl.Handle(domain.SearchQueryChangedEvent{Query: m.searchInput.Value()})
		m.cursor = 0
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case msg.String() == "q":
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	status := m.statusMessage
	if status == "" && m.showCommandLog {
		status = m.lastCommand
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Snapshot:      m.ctrl.View(),
		SearchInput:   m.searchInput.View(),
		Cursor:        m.cursor,
		HandlerCursor: m.handlerCursor,
		SourceCount:   len(m.sourcePaths),
		StatusMessage: status,
		HelpView:      m.help.View(m.keys),
	})
}
