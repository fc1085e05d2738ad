package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/paperplane/internal/core"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm, cmd
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	require.Len(t, m.items, 2)
	assert.Equal(t, MenuItem{GameID: "paperplane", Title: "Paper Plane", Mode: "release"}, m.items[0])
	assert.Equal(t, "paperplane_follow", m.items[1].GameID)
	assert.Equal(t, "follow", m.items[1].Mode)

	view := m.View()
	assert.Contains(t, view, "P A P E R   P L A N E")
	assert.Contains(t, view, "> Paper Plane")
	assert.Contains(t, view, modeHints["release"])
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Clamped at the last item
	m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "paperplane_follow", m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func TestMenuThrowLogAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsThrowLog())

	m = NewMenuModel(core.DefaultConfig())
	m, _ = sendMenu(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m, _ = sendMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cfg := m.Config()
	assert.Equal(t, 100, cfg.ScreenW)
	assert.Equal(t, 30, cfg.ScreenH)
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	store := newTestStore(t)
	m := NewSessionModel(store, core.DefaultConfig(), nil)

	// Menu -> game
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	assert.NotNil(t, cmd, "game starts its tick loop")
	assert.True(t, m.gameModel.inSession)
	assert.Contains(t, m.View(), "Current Score")

	// Game -> menu, the game's ticks die out in the menu
	staleTick := m.gameModel.tick()
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.screen)
	m, cmd = sendSession(t, m, staleTick)
	assert.Nil(t, cmd)

	// Menu -> throw log -> menu
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenThrowLog, m.screen)
	assert.Contains(t, m.View(), "THROW LOG")
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.screen)

	// Quit
	m, cmd = sendSession(t, m, runeKey("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}
