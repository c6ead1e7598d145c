package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/htmlchat/internal/chatview"
)

type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return "<p>Hi</p>", nil
}

type noopTask struct{}

func (noopTask) Stop() bool { return true }

// holdScheduler never runs anything, freezing a reveal after its first character.
type holdScheduler struct{}

func (holdScheduler) AfterFunc(time.Duration, func()) chatview.Task { return noopTask{} }

func TestEnterSubmitsPrompt(t *testing.T) {
	gen := &stubGenerator{}
	m := New(gen, chatview.WithScheduler(holdScheduler{}))
	m.input.SetValue("  hello ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
	assert.Equal(t, []string{"hello"}, gen.prompts)
}

func TestEnterIgnoredWhileAnimating(t *testing.T) {
	gen := &stubGenerator{}
	m := New(gen, chatview.WithScheduler(holdScheduler{}))
	m.input.SetValue("hello")

	m.Update(stateMsg{Prompt: "hello", Displayed: "H", Animating: true})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, gen.prompts)
}

func TestAltEnterDoesNotSubmit(t *testing.T) {
	gen := &stubGenerator{}
	m := New(gen, chatview.WithScheduler(holdScheduler{}))
	m.input.SetValue("line")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})

	assert.Equal(t, "line\n", m.input.Value())
	assert.Empty(t, gen.prompts)
}

func TestQuitClosesView(t *testing.T) {
	m := New(&stubGenerator{}, chatview.WithScheduler(holdScheduler{}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m.view.SetPrompt("hi")
	assert.ErrorIs(t, m.view.Submit(context.Background()), chatview.ErrClosed)
}

func TestViewRendersState(t *testing.T) {
	m := New(&stubGenerator{}, chatview.WithScheduler(holdScheduler{}))

	out := m.View()
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Send")

	m.Update(stateMsg{Prompt: "hello", Displayed: "Hi", Animating: true})
	out = m.View()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Hi|")
	assert.Contains(t, out, "Typing...")

	m.Update(stateMsg{Err: chatview.EmptyPromptMessage})
	assert.Contains(t, m.View(), chatview.EmptyPromptMessage)
}
