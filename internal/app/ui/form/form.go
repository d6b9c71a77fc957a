package form

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gathering/internal/app/errors"
	"gathering/internal/app/reply"
	"gathering/internal/app/ui/components"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// Status is the submission state of the form
type Status int

const (
	Idle Status = iota
	Sending
	Sent
	Failed
)

const (
	messageHeight   = 4
	messageMaxChars = 500
	noSelection     = -1
)

const (
	zoneOption  = "option-"
	zoneMessage = "message"
	zoneSubmit  = "submit"
)

// submittedMsg reports the outcome of one submission
type submittedMsg struct {
	err error
}

// Model is the reply form shown on the last section
type Model struct {
	ctx       context.Context
	options   []string
	selected  int
	message   textarea.Model
	spinner   spinner.Model
	status    Status
	err       error
	keys      components.KeyMap
	submitter reply.Submitter
	zones     *zone.Manager
	prefix    string
	log       logger.Logger
}

// New creates an empty form offering the configured pickup times
func New(ctx context.Context, event config.Event, submitter reply.Submitter, zones *zone.Manager, log logger.Logger) *Model {
	ta := textarea.New()
	ta.Placeholder = "Anything you want to tell the couple"
	ta.ShowLineNumbers = false
	ta.CharLimit = messageMaxChars
	ta.SetHeight(messageHeight)

	return &Model{
		ctx:       ctx,
		options:   event.PickupTimes,
		selected:  noSelection,
		message:   ta,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(components.SendingStyle)),
		keys:      components.DefaultKeyMap(),
		submitter: submitter,
		zones:     zones,
		prefix:    zones.NewPrefix(),
		log:       log.WithComponent("REPLY"),
	}
}

// Status returns the submission state
func (m *Model) Status() Status {
	return m.status
}

// Err returns the error of the last failed submission
func (m *Model) Err() error {
	return m.err
}

// Selected returns the chosen pickup time, if any
func (m *Model) Selected() (string, bool) {
	if m.selected == noSelection {
		return "", false
	}

	return m.options[m.selected], true
}

// Select chooses the pickup time at index; out of range indexes are ignored
func (m *Model) Select(index int) {
	if index < 0 || index >= len(m.options) {
		return
	}

	m.selected = index
}

// SetOptions replaces the pickup times, keeping the current choice when it is still offered
func (m *Model) SetOptions(options []string) {
	previous, ok := m.Selected()

	m.options = options
	m.selected = noSelection

	if !ok {
		return
	}

	for i, option := range options {
		if option == previous {
			m.selected = i
			return
		}
	}
}

// Focused reports whether the message field captures key presses
func (m *Model) Focused() bool {
	return m.message.Focused()
}

// Focus moves key input into the message field
func (m *Model) Focus() tea.Cmd {
	return m.message.Focus()
}

// Blur releases key input from the message field
func (m *Model) Blur() {
	m.message.Blur()
}

// Message returns the current message text
func (m *Model) Message() string {
	return m.message.Value()
}

// SetMessage replaces the message text
func (m *Model) SetMessage(text string) {
	m.message.SetValue(text)
}

// HandleClick dispatches a click on one of the form zones
func (m *Model) HandleClick(msg tea.MouseMsg) (tea.Cmd, bool) {
	for i := range m.options {
		if m.inZone(zoneOption+strconv.Itoa(i), msg) {
			m.Select(i)
			return nil, true
		}
	}

	switch {
	case m.inZone(zoneMessage, msg):
		return m.Focus(), true
	case m.inZone(zoneSubmit, msg):
		m.Blur()
		return m.Submit(), true
	}

	return nil, false
}

// HandleKey feeds key presses to the message field while it is focused
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.Focused() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Blur):
		m.Blur()
		return nil, true
	case key.Matches(msg, m.keys.Submit):
		m.Blur()
		return m.Submit(), true
	}

	var cmd tea.Cmd

	m.message, cmd = m.message.Update(msg)

	return cmd, true
}

// Submit sends the reply in the background; it is a no-op while a submission is in flight
func (m *Model) Submit() tea.Cmd {
	if m.status == Sending {
		return nil
	}

	pickup, ok := m.Selected()
	if !ok {
		m.status = Failed
		m.err = errors.ErrPickupTimeRequired

		return nil
	}

	payload := reply.Payload{
		reply.FieldPickupTime: pickup,
		reply.FieldMessage:    m.message.Value(),
	}

	m.status = Sending
	m.err = nil
	m.log.Debug().Msgf("Submitting reply for pickup %s", pickup)

	return tea.Batch(m.spinner.Tick, m.send(payload))
}

func (m *Model) send(payload reply.Payload) tea.Cmd {
	ctx := m.ctx
	submitter := m.submitter

	return func() tea.Msg {
		return submittedMsg{err: submitter.Submit(ctx, payload)}
	}
}

// Update handles submission results and the sending spinner
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case submittedMsg:
		if msg.err != nil {
			m.status = Failed
			m.err = msg.err
			m.log.Warn().Err(msg.err).Msg("Reply failed")

			return nil
		}

		m.status = Sent
		m.err = nil
		m.selected = noSelection
		m.message.Reset()

		return nil

	case spinner.TickMsg:
		if m.status != Sending {
			return nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return cmd
	}

	return nil
}

// View renders the form within width cells
func (m *Model) View(width int) string {
	inner := min(width-components.ContentPadding*2, components.MaxContentWidth)
	if inner <= 0 {
		return ""
	}

	m.message.SetWidth(inner)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Reply"),
		"",
		components.MutedStyle.Render("Pickup time"),
		m.renderOptions(inner),
		"",
		components.MutedStyle.Render("Message"),
		m.zones.Mark(m.prefix+zoneMessage, m.message.View()),
		"",
		m.renderSubmit(),
		m.renderStatus(),
	)
}

func (m *Model) renderOptions(width int) string {
	var (
		rows []string
		row  []string
	)

	rowWidth := 0

	for i, option := range m.options {
		style := components.OptionStyle
		if i == m.selected {
			style = components.OptionSelectedStyle
		}

		chip := m.zones.Mark(m.prefix+zoneOption+strconv.Itoa(i), style.Render(option))
		chipWidth := lipgloss.Width(chip)

		if rowWidth > 0 && rowWidth+chipWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}

		row = append(row, chip)
		rowWidth += chipWidth
	}

	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderSubmit() string {
	if m.status == Sending {
		return components.ButtonDisabledStyle.Render("Sending…")
	}

	return m.zones.Mark(m.prefix+zoneSubmit, components.ButtonStyle.Render("Send reply"))
}

func (m *Model) renderStatus() string {
	switch m.status {
	case Sending:
		return m.spinner.View() + components.SendingStyle.Render(" sending your reply")
	case Sent:
		return components.SuccessStyle.Render("Thank you! Your reply was sent.")
	case Failed:
		return components.ErrorStyle.Render(fmt.Sprintf("Could not send: %v", m.err))
	default:
		return ""
	}
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	info := m.zones.Get(m.prefix + id)
	return info != nil && info.InBounds(msg)
}
