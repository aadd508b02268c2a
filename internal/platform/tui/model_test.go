package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const testOwner = "local:tester"

// nearlyOver is a campaign save whose board is terminal after a move left.
const nearlyOver = `{"version":1,"mode":"campaign","level":1,"score":100,"moves":5,` +
	`"grid":[[0,16,32,8],[2,4,64,16],[4,2,4,2],[2,4,2,4]]}`

func testServices(t *testing.T) (Services, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return Services{Scores: store, Saves: store, Owner: testOwner}, store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// send feeds msg to the model and returns the updated model.
func send(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

// play presses each key followed by a tick.
func play(t *testing.T, m tea.Model, keys string) tea.Model {
	t.Helper()
	for _, r := range keys {
		m = send(t, m, runeKey(r))
		m = send(t, m, TickMsg{})
	}
	return m
}

func TestGameModelSavesOnQuitAndResumes(t *testing.T) {
	svc, store := testServices(t)

	game := t2048.New()
	m := NewGameModel(game, svc, testRuntime(), false)
	m.Init()

	var model tea.Model = m
	model = play(t, model, "awdsaw")
	want := game.Snapshot()

	model = send(t, model, runeKey('q'))
	assert.True(t, model.(GameModel).IsQuitting())

	saved, err := store.LoadGame(context.Background(), testOwner, t2048.IDCampaign)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.State)

	resumed := t2048.New()
	r := NewGameModel(resumed, svc, testRuntime(), true)
	r.Init()

	got := resumed.Snapshot()
	assert.Equal(t, want.Board, got.Board)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Moves, got.Moves)
}

func TestGameModelBackToMenuSaves(t *testing.T) {
	svc, store := testServices(t)

	m := NewGameModel(t2048.NewEndless(), svc, testRuntime(), false)
	m.Init()

	model := play(t, m, "ad")
	model = send(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	gm := model.(GameModel)
	assert.True(t, gm.BackToMenu())
	assert.False(t, gm.IsQuitting())
	assert.Empty(t, gm.View())

	_, err := store.LoadGame(context.Background(), testOwner, t2048.IDEndless)
	assert.NoError(t, err)
}

func TestGameModelRecordsFinishedGame(t *testing.T) {
	svc, store := testServices(t)
	ctx := context.Background()
	require.NoError(t, store.SaveGame(ctx, testOwner, t2048.IDCampaign, []byte(nearlyOver)))

	m := NewGameModel(t2048.New(), svc, testRuntime(), true)
	m.Init()

	model := play(t, m, "a")
	require.True(t, model.(GameModel).gameState.GameOver)

	scores, err := store.TopScores(t2048.IDCampaign, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 100, scores[0].Score)
	assert.Equal(t, 64, scores[0].MaxTile)
	assert.Equal(t, testOwner, scores[0].Player)

	_, err = store.LoadGame(ctx, testOwner, t2048.IDCampaign)
	assert.True(t, errors.Is(err, storage.ErrNoSavedGame), "finished game should drop its save")

	// More ticks must not record the same game twice
	model = send(t, model, TickMsg{})
	send(t, model, TickMsg{})
	scores, err = store.TopScores(t2048.IDCampaign, 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	svc, store := testServices(t)
	require.NoError(t, store.SaveGame(context.Background(), testOwner, t2048.IDCampaign, []byte(nearlyOver)))

	game := t2048.New()
	m := NewGameModel(game, svc, testRuntime(), true)
	m.Init()

	model := play(t, m, "ar")
	assert.False(t, model.(GameModel).gameState.GameOver)
	assert.Equal(t, 0, game.Snapshot().Score)
	assert.Equal(t, t2048.StatePlaying, game.Snapshot().State)
}

func TestGameModelDropsCorruptSave(t *testing.T) {
	svc, store := testServices(t)
	ctx := context.Background()
	require.NoError(t, store.SaveGame(ctx, testOwner, t2048.IDCampaign, []byte("not json")))

	game := t2048.New()
	m := NewGameModel(game, svc, testRuntime(), true)
	m.Init()

	assert.Equal(t, 0, game.Snapshot().Moves)
	_, err := store.LoadGame(ctx, testOwner, t2048.IDCampaign)
	assert.True(t, errors.Is(err, storage.ErrNoSavedGame))
}

func TestGameModelWithoutStores(t *testing.T) {
	m := NewGameModel(t2048.New(), Services{}, testRuntime(), true)
	m.Init()

	model := play(t, m, "wasd")
	model = send(t, model, runeKey('q'))
	assert.True(t, model.(GameModel).IsQuitting())
}

func TestGameModelResize(t *testing.T) {
	game := t2048.New()
	m := NewGameModel(game, Services{}, testRuntime(), false)
	m.Init()

	model := play(t, m, "a")
	before := game.Snapshot().Board

	model = send(t, model, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, model.View(), "Window too small")

	model = send(t, model, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, before, game.Snapshot().Board)
	assert.True(t, strings.Contains(model.View(), "Score:"))
}
