package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m := NewGameModel(paperplane.New(), store, core.DefaultConfig(), nil)
	require.NotNil(t, m.Init())
	return m
}

// send feeds one message through Update and returns the resulting model.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func (m GameModel) tick() TickMsg {
	return TickMsg{Loop: m.loop}
}

// The plane rests at (100, 500) in a 1512x782 world; on an 80x24 screen
// cell (6, 16) falls inside its 64px box.
const planeCellX, planeCellY = 6, 16

func TestGameModelRecordsThrows(t *testing.T) {
	store := newTestStore(t)
	m := newTestGameModel(t, store)

	m, _ = send(t, m, tea.MouseMsg{X: planeCellX, Y: planeCellY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: planeCellX, Y: planeCellY, Action: tea.MouseActionRelease})
	m, cmd := send(t, m, m.tick())
	assert.NotNil(t, cmd, "tick chain continues")

	throws, err := store.RecentThrows("paperplane", 10)
	require.NoError(t, err)
	require.Len(t, throws, 1)
	assert.Equal(t, core.OutcomeSettled, throws[0].Outcome)
	assert.Equal(t, "release", throws[0].Mode)
	assert.Empty(t, m.inputFrame.Pointer, "input cleared after the tick")
}

func TestGameModelWithoutStore(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = send(t, m, tea.MouseMsg{X: planeCellX, Y: planeCellY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: planeCellX, Y: planeCellY, Action: tea.MouseActionRelease})
	assert.NotPanics(t, func() { send(t, m, m.tick()) })

	// No store, no throw log
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.ThrowLogOpen())
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newTestGameModel(t, nil)

	_, cmd := send(t, m, TickMsg{Loop: m.loop + 1000})
	assert.Nil(t, cmd, "a foreign tick must not start a second chain")
}

func TestGameModelBlurEndsDrag(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = send(t, m, tea.MouseMsg{X: planeCellX, Y: planeCellY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.BlurMsg{})

	require.Len(t, m.inputFrame.Pointer, 2)
	leave := m.inputFrame.Pointer[1]
	assert.Equal(t, core.PointerLeave, leave.Kind)
	assert.Equal(t, planeCellX, leave.X)
	assert.Equal(t, planeCellY, leave.Y)
}

func TestGameModelBack(t *testing.T) {
	t.Run("standalone quits", func(t *testing.T) {
		m := newTestGameModel(t, nil)
		m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, m.BackToMenu())
		assert.NotNil(t, cmd)
	})

	t.Run("session keeps running", func(t *testing.T) {
		m := newTestGameModel(t, nil)
		m.inSession = true
		m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, m.BackToMenu())
		assert.Nil(t, cmd)
	})

	t.Run("closes settings first", func(t *testing.T) {
		m := newTestGameModel(t, nil)
		m, _ = send(t, m, runeKey("s"))
		m, _ = send(t, m, m.tick())
		require.True(t, m.State().Paused)

		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.BackToMenu())
		m, _ = send(t, m, m.tick())
		assert.False(t, m.State().Paused)
	})
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t, nil)
	m, cmd := send(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestGameModelThrowLog(t *testing.T) {
	store := newTestStore(t)
	m := newTestGameModel(t, store)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.ThrowLogOpen())
	assert.Contains(t, m.View(), "THROW LOG - Paper Plane")

	// Ticks keep the chain alive without stepping the game
	_, cmd := send(t, m, m.tick())
	assert.NotNil(t, cmd)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ThrowLogOpen())
	assert.False(t, m.BackToMenu(), "closing the log returns to the game")
	assert.Contains(t, m.View(), "Current Score")
}

func TestGameModelResize(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
	assert.Contains(t, m.View(), "Paper Plane")
}

func TestGameModeOfVariants(t *testing.T) {
	assert.Equal(t, "release", gameMode(paperplane.New()))
	assert.Equal(t, "follow", gameMode(paperplane.NewFollow()))
}
