// Package chat is the terminal front end of the chat view.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yoockh/htmlchat/internal/chatview"
)

const Title = "gpt-4o-mini Chat"

// stateMsg carries a view state change into the program loop.
type stateMsg chatview.State

type submitDoneMsg struct{ err error }

type Model struct {
	view    *chatview.View
	state   chatview.State
	keys    KeyMap
	input   textarea.Model
	spinner spinner.Model
	width   int

	send func(tea.Msg)
}

// New builds the model. Call Attach with the running program before Run so
// reveal updates reach the loop.
func New(gen chatview.Generator, opts ...chatview.Option) *Model {
	m := &Model{
		keys:  DefaultKeyMap(),
		width: 80,
	}

	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = m.keys.Newline
	ta.Focus()
	m.input = ta

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	opts = append(opts, chatview.WithOnChange(func(s chatview.State) {
		if m.send != nil {
			m.send(stateMsg(s))
		}
	}))
	m.view = chatview.New(gen, opts...)
	return m
}

func (m *Model) Attach(p *tea.Program) { m.send = p.Send }

// Close tears the view down. Safe to call more than once.
func (m *Model) Close() { m.view.Close() }

func (m *Model) Init() tea.Cmd { return textarea.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.view.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}

	case stateMsg:
		wasAnimating := m.state.Animating
		m.state = chatview.State(msg)
		if m.state.Animating && !wasAnimating {
			return m, m.spinner.Tick
		}
		return m, nil

	case submitDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.state.Animating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit is a no-op while a reveal runs, like a disabled send button.
func (m *Model) submit() tea.Cmd {
	if m.state.Animating {
		return nil
	}
	m.view.SetPrompt(m.input.Value())
	return func() tea.Msg {
		// the call is never cancelled; a closed view drops the result
		return submitDoneMsg{err: m.view.Submit(context.Background())}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")

	if m.state.Displayed != "" {
		bubbleWidth := m.width * 7 / 10
		user := userBubble.MaxWidth(bubbleWidth).Render(m.state.Prompt)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, user))
		b.WriteString("\n")
		b.WriteString(botBubble.Width(bubbleWidth).Render(m.state.Displayed + "|"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.state.Animating {
		b.WriteString(busyStyle.Render(m.spinner.View() + " Typing..."))
	} else {
		b.WriteString(buttonStyle.Render("Send"))
	}
	b.WriteString("\n")

	if m.state.Err != "" {
		b.WriteString(errorStyle.Render(m.state.Err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter send • alt+enter new line • esc quit"))
	return b.String()
}
