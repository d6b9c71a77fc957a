package deck

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gathering/internal/app/gesture"
	"gathering/internal/app/registry"
	"gathering/internal/app/ui/content"
	"gathering/internal/config"
)

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.frames = make(map[string]string)
		m.ui.ready = true

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.animate(m.handleMouse(msg))

	case tickMsg:
		m.bar.Update()

		if m.slide.Running() || m.bar.Animating() {
			return m, tickCmd()
		}

		m.ui.ticking = false

		return m, nil

	case ReloadMsg:
		m.applyReload(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("Failed to copy event details")
			m.ui.status = "Copy failed: " + msg.err.Error()
		} else {
			m.ui.status = "Event details copied"
		}

		return m, nil
	}

	return m, m.form.Update(msg)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.onForm() {
		if cmd, handled := m.form.HandleKey(msg); handled {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySummary()
	}

	return m, nil
}

// handleMouse routes mouse events to the gesture interpreters and clickable zones
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x := float64(msg.X)

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.wheel.Scroll(m.notch)
		return nil
	case tea.MouseButtonWheelUp:
		m.wheel.Scroll(-m.notch)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

		m.pointer = pointer{down: true, startX: msg.X}
		m.swipe.TouchStart(x)

	case tea.MouseActionMotion:
		if !m.pointer.down {
			return nil
		}

		if abs(msg.X-m.pointer.startX) > tapSlop {
			m.pointer.moved = true
		}

		m.swipe.TouchMove(x)

	case tea.MouseActionRelease:
		if !m.pointer.down {
			return nil
		}

		tap := !m.pointer.moved
		m.pointer = pointer{}

		if decision := m.swipe.TouchEnd(); decision != gesture.None || !tap {
			return nil
		}

		return m.click(msg)
	}

	return nil
}

// click treats a tap as a button press on the nav bar or the form
func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if m.bar.HandleClick(msg) {
		return nil
	}

	if m.onForm() {
		cmd, _ := m.form.HandleClick(msg)
		return cmd
	}

	return nil
}

// animate starts the tick loop when a section change left an animation running
func (m *Model) animate(cmd tea.Cmd) tea.Cmd {
	if m.ui.ticking || !(m.slide.Running() || m.bar.Animating()) {
		return cmd
	}

	m.ui.ticking = true

	return tea.Batch(cmd, tickCmd())
}

func (m *Model) copySummary() tea.Cmd {
	summary := m.content.Summary()
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{err: copyFn(summary)}
	}
}

// applyReload swaps in new event details and section text; the section list itself is fixed for the session
func (m *Model) applyReload(msg ReloadMsg) {
	if msg.Err != nil {
		m.ui.status = "Reload failed: " + msg.Err.Error()
		return
	}

	cfg := msg.Config

	m.content.SetEvent(cfg.Event)
	m.form.SetOptions(cfg.Event.PickupTimes)
	m.host = cfg.Event.Host
	m.ui.frames = make(map[string]string)

	if !sameSections(m.sections, cfg.Sections) {
		m.log.Warn().Msg("Section list changed, restart the deck to apply it")
		m.ui.status = "Sections changed, restart to apply"

		return
	}

	for i, section := range cfg.Sections {
		m.sections[i].Title = section.Title
		m.sections[i].Body = section.Body
	}

	m.log.Info().Int("events", msg.Events).Msg("Invitation reloaded")
	m.ui.status = "Invitation reloaded"
}

// sameSections reports whether the configured sections keep the ids, labels and order of the session
func sameSections(current []registry.SectionDescriptor, next []config.Section) bool {
	if len(current) != len(next) {
		return false
	}

	for i := range current {
		if current[i].ID != next[i].ID || current[i].Label != next[i].Label {
			return false
		}
	}

	return true
}

func (m *Model) onForm() bool {
	return m.nav.Section().ID == content.SectionForm
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
