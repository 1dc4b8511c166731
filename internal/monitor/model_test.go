package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	src := &fakeSource{snap: testSnapshot()}

	m := NewModel(src, Options{Layout: LayoutSplit, Interval: time.Second, ScrollCeiling: 5})
	assert.Equal(t, time.Second, m.interval)
	assert.Equal(t, LayoutSplit, m.State().Layout)
	assert.Equal(t, 5, m.State().Ceiling)

	m = NewModel(src, Options{})
	assert.Equal(t, DefaultInterval, m.interval)
	assert.Equal(t, DefaultScrollCeiling, m.State().Ceiling)
	assert.NotNil(t, m.Init())
}

func TestModelViewBeforeFirstTick(t *testing.T) {
	m := NewModel(&fakeSource{}, Options{})
	assert.Equal(t, "", m.View())
}

func TestModelTickRendersFrame(t *testing.T) {
	withColorProfile(t, termenv.Ascii)
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)

	m, cmd = update(t, m, tickMsg(time.Now()))
	require.NotNil(t, cmd, "next tick is scheduled")
	assert.False(t, isQuit(cmd))

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)
	assert.True(t, strings.HasPrefix(lines[0], "┌─ Processes"))
	assert.Contains(t, view, "python3 app.py")
	assert.Equal(t, 1, m.State().History.Len())
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.State().Page, "keys wait for the next tick")

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, m.State().Page)
}

func TestModelUnboundKeyIgnored(t *testing.T) {
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Empty(t, m.State().Pending)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, isQuit(cmd))

	m, cmd = update(t, m, tickMsg(time.Now()))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
}

func TestModelCtrlCQuitsImmediately(t *testing.T) {
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
}

func TestModelResizeToTooSmall(t *testing.T) {
	withColorProfile(t, termenv.Ascii)
	m := NewModel(&fakeSource{snap: testSnapshot()}, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 59, Height: 20})
	m, _ = update(t, m, tickMsg(time.Now()))
	assert.True(t, strings.HasPrefix(m.View(), TooSmallNotice))
}
