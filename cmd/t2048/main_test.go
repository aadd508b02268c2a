package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		wantErr    bool
	}{
		{in: "4x4", rows: 4, cols: 4},
		{in: "5X6", rows: 5, cols: 6},
		{in: " 3x8 ", rows: 3, cols: 8},
		{in: "1x2", rows: 1, cols: 2},
		{in: "4", wantErr: true},
		{in: "x4", wantErr: true},
		{in: "4x", wantErr: true},
		{in: "0x4", wantErr: true},
		{in: "13x4", wantErr: true},
		{in: "axb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rows, cols, err := parseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, rows)
			assert.Equal(t, tt.cols, cols)
		})
	}
}

func TestResolveMode(t *testing.T) {
	for in, want := range map[string]string{
		"":             t2048.IDCampaign,
		"campaign":     t2048.IDCampaign,
		"Campaign":     t2048.IDCampaign,
		"2048":         t2048.IDCampaign,
		"endless":      t2048.IDEndless,
		"2048_endless": t2048.IDEndless,
	} {
		got, err := resolveMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := resolveMode("tetris")
	assert.Error(t, err)
}

func TestLocalOwner(t *testing.T) {
	t.Setenv("USER", "alice")
	assert.Equal(t, "local:alice", localOwner())

	t.Setenv("USER", "")
	assert.Equal(t, "local:player", localOwner())
}

func TestFlagOrEnv(t *testing.T) {
	t.Setenv("T2048_HTTP_ADDR", ":9999")

	cmd := serveCmd
	assert.Equal(t, ":9999", flagOrEnv(cmd, "http", "", "T2048_HTTP_ADDR"))

	require.NoError(t, cmd.Flags().Set("http", ":7000"))
	t.Cleanup(func() {
		cmd.Flags().Lookup("http").Changed = false
		flagHTTPAddr = ""
	})
	assert.Equal(t, ":7000", flagOrEnv(cmd, "http", flagHTTPAddr, "T2048_HTTP_ADDR"))
}

func TestLoadGameConfigRejectsUnknownDifficulty(t *testing.T) {
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })

	flagDifficulty = "nightmare"
	assert.Error(t, loadGameConfig(nil, nil))
}

func TestLoadGameConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	old := flagDifficulty
	t.Cleanup(func() {
		flagDifficulty = old
		require.NoError(t, loadGameConfig(nil, nil))
	})

	flagDifficulty = "easy"
	require.NoError(t, loadGameConfig(nil, nil))
	easy := t2048.CurrentConfig().Spawn.FourProbability

	flagDifficulty = "normal"
	require.NoError(t, loadGameConfig(nil, nil))
	normal := t2048.CurrentConfig().Spawn.FourProbability

	assert.InDelta(t, normal/2, easy, 1e-9)
}
